package exec

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/shell"
	"github.com/rileyhilliard/wslgit/internal/util"
)

// ProbeResult says where a command resolves in each shell mode.
type ProbeResult struct {
	Command             string
	NonInteractivePath  string // empty when not found with bash -c
	InteractivePath     string // empty when not found with bash -ic
	FoundNonInteractive bool
	FoundInteractive    bool
}

// PathDifference holds the diff between the PATH of bash -c and bash -ic.
type PathDifference struct {
	NonInteractiveOnly []string
	InteractiveOnly    []string // usually the problem: ~/.bashrc additions
	Common             []string
}

// ProbeCommand looks up cmd with "command -v" in both shell modes.
func ProbeCommand(ctx context.Context, l Launcher, target distro.Target, cmd string) (*ProbeResult, error) {
	result := &ProbeResult{Command: cmd}
	check := "command -v " + util.ShellQuote(cmd) + " 2>/dev/null"

	for _, mode := range []shell.Mode{shell.NonInteractive, shell.Interactive} {
		out, code, err := l.Capture(ctx, Invocation{Target: target, Mode: mode, CommandLine: check})
		if err != nil {
			return nil, err
		}
		found := strings.TrimSpace(string(out))
		if code != 0 || found == "" {
			continue
		}
		if mode == shell.Interactive {
			result.FoundInteractive, result.InteractivePath = true, found
		} else {
			result.FoundNonInteractive, result.NonInteractivePath = true, found
		}
	}
	return result, nil
}

// GetPATHDifference compares PATH between the two shell modes.
func GetPATHDifference(ctx context.Context, l Launcher, target distro.Target) (*PathDifference, error) {
	nonInter, err := shellPATH(ctx, l, target, shell.NonInteractive)
	if err != nil {
		return nil, fmt.Errorf("get non-interactive PATH: %w", err)
	}
	inter, err := shellPATH(ctx, l, target, shell.Interactive)
	if err != nil {
		return nil, fmt.Errorf("get interactive PATH: %w", err)
	}
	return ComparePATHs(nonInter, inter), nil
}

func shellPATH(ctx context.Context, l Launcher, target distro.Target, mode shell.Mode) ([]string, error) {
	out, code, err := l.Capture(ctx, Invocation{Target: target, Mode: mode, CommandLine: `echo "$PATH"`})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("bash returned exit code %d", code)
	}

	// interactive shells may print banners first, PATH is the last line
	lines := ParseLines(out)
	if len(lines) == 0 {
		return []string{}, nil
	}
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return []string{}, nil
	}
	return strings.Split(last, ":"), nil
}

// ComparePATHs returns the difference between two PATH lists.
func ComparePATHs(nonInter, inter []string) *PathDifference {
	nonInterSet := make(map[string]bool)
	for _, p := range nonInter {
		if p != "" {
			nonInterSet[p] = true
		}
	}
	interSet := make(map[string]bool)
	for _, p := range inter {
		if p != "" {
			interSet[p] = true
		}
	}

	diff := &PathDifference{}
	seen := make(map[string]bool)
	for _, p := range inter {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if nonInterSet[p] {
			diff.Common = append(diff.Common, p)
		} else {
			diff.InteractiveOnly = append(diff.InteractiveOnly, p)
		}
	}
	for _, p := range nonInter {
		if p != "" && !interSet[p] {
			diff.NonInteractiveOnly = append(diff.NonInteractiveOnly, p)
		}
	}
	return diff
}

// Suggestion explains how to make the probed command reachable, or returns
// "" when it already is in both modes.
func (r *ProbeResult) Suggestion() string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	switch {
	case r.FoundNonInteractive:
		return ""
	case r.FoundInteractive:
		sb.WriteString(fmt.Sprintf("'%s' is only on the PATH of interactive shells (found at %s).\n\n", r.Command, r.InteractivePath))
		sb.WriteString("This usually means ~/.bashrc extends PATH but non-interactive bash doesn't read it.\n\n")
		sb.WriteString("Fixes:\n\n")
		sb.WriteString("  1. Always use the interactive shell:\n")
		sb.WriteString("     set WSLGIT_USE_INTERACTIVE_SHELL=true\n\n")
		sb.WriteString("  2. Point wslgit at the binary:\n")
		sb.WriteString(fmt.Sprintf("     set WSLGIT_EXECUTABLE=%s\n\n", r.InteractivePath))
		sb.WriteString("  3. Or add the directory in a file named by BASH_ENV:\n")
		sb.WriteString(fmt.Sprintf("     export PATH=%s:$PATH\n", path.Dir(r.InteractivePath)))
	default:
		sb.WriteString(fmt.Sprintf("'%s' wasn't found in the distribution.\n\n", r.Command))
		sb.WriteString("Install it, for example:\n")
		sb.WriteString("  wsl.exe sudo apt install git\n")
	}
	return sb.String()
}
