package exec

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/shell"
	"github.com/rileyhilliard/wslgit/internal/util"
)

// WSLPathConverter converts WSL paths to Windows paths with wslpath -w,
// running once per batch in the same distribution as git.
type WSLPathConverter struct {
	Launcher Launcher
	Target   distro.Target
	Env      []string
}

// WSLPathScript returns the bash script that prints one Windows path per
// input path. It stops at the first path wslpath rejects.
func WSLPathScript(paths []string) string {
	return `for p in ` + util.ShellJoin(paths) + `; do wslpath -w "$p" || exit $?; done`
}

// Convert implements output.Converter.
func (c *WSLPathConverter) Convert(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	out, code, err := c.Launcher.Capture(ctx, Invocation{
		Target:      c.Target,
		Mode:        shell.NonInteractive,
		CommandLine: WSLPathScript(paths),
		Env:         c.Env,
	})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, errors.New(errors.ErrConvert,
			fmt.Sprintf("wslpath -w exited with code %d", code),
			"Check that wslpath is available in the distribution.")
	}

	converted := ParseLines(out)
	if len(converted) != len(paths) {
		return nil, errors.New(errors.ErrConvert,
			fmt.Sprintf("wslpath -w printed %d line(s) for %d path(s)", len(converted), len(paths)),
			"A path containing a newline can't be converted.")
	}
	return converted, nil
}

// ParseLines splits command output into lines, dropping the final newline
// and any carriage returns.
func ParseLines(out []byte) []string {
	s := strings.ReplaceAll(string(out), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
