package exec

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/rileyhilliard/wslgit/internal/errors"
)

const stderrTailSize = 4096

// commandNotFoundPatterns match what bash prints for a missing executable.
// They only apply to exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)bash: line \d+: (\S+): command not found`),
	regexp.MustCompile(`(?i)bash: (\S+): No such file or directory`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// IsCommandNotFound checks if the stderr of a run indicates a missing
// command. Returns the command name when it can be extracted.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != 127 {
		return "", false
	}
	for _, pattern := range commandNotFoundPatterns {
		if m := pattern.FindStringSubmatch(stderr); len(m) > 1 {
			return m[1], true
		}
	}
	return "", true
}

// HandleExecError returns a hint when git could not be found in the
// distribution, nil otherwise. The exit code is still forwarded by the
// caller; this only explains it.
func HandleExecError(executable, stderr string, exitCode int) error {
	name, notFound := IsCommandNotFound(stderr, exitCode)
	if !notFound {
		return nil
	}
	if name == "" {
		name = executable
	}

	suggestion := fmt.Sprintf(`'%s' wasn't found in the WSL distribution's PATH.

Fixes:

1. Install git in the distribution:
   wsl.exe sudo apt install git

2. Point wslgit at an explicit binary:
   set WSLGIT_EXECUTABLE=/usr/bin/git

3. If git is only on the PATH of interactive shells, use:
   set WSLGIT_USE_INTERACTIVE_SHELL=true`, name)

	return errors.New(errors.ErrExec,
		fmt.Sprintf("'%s' not found in PATH inside WSL", name),
		suggestion)
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
