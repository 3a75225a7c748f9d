package exec

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/logger"
	"github.com/rileyhilliard/wslgit/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSLLauncher_Args(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
		inv   Invocation
		want  []string
	}{
		{
			name: "default distribution",
			inv:  Invocation{Mode: shell.NonInteractive, CommandLine: "git status"},
			want: []string{"bash", "-c", "git status"},
		},
		{
			name: "named distribution interactive",
			inv:  Invocation{Target: distro.Target{Name: "Ubuntu"}, Mode: shell.Interactive, CommandLine: "git fetch"},
			want: []string{"-d", "Ubuntu", "bash", "-ic", "git fetch"},
		},
		{
			name:  "extra args first",
			extra: []string{"--user", "me"},
			inv:   Invocation{Target: distro.Target{Name: "Debian"}, CommandLine: "git log"},
			want:  []string{"--user", "me", "-d", "Debian", "bash", "-c", "git log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewWSLLauncher(tt.extra, nil)
			assert.Equal(t, tt.want, l.Args(tt.inv))
		})
	}
}

// fakeWSL returns a launcher that runs "env bash -c <cmdline>" instead of
// wsl.exe, so the command line runs in a local bash.
func fakeWSL(t *testing.T) (*WSLLauncher, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix shell")
	}
	var stdout, stderr bytes.Buffer
	l := NewWSLLauncher(nil, logger.NewBufferLogger())
	l.Executable = "env"
	l.Stdin = strings.NewReader("")
	l.Stdout = &stdout
	l.Stderr = &stderr
	return l, &stdout, &stderr
}

func TestWSLLauncher_Run(t *testing.T) {
	l, stdout, stderr := fakeWSL(t)

	code, err := l.Run(context.Background(), Invocation{CommandLine: "echo out; echo err >&2"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
	assert.Equal(t, "err\n", l.StderrTail())
}

func TestWSLLauncher_RunForwardsExitCode(t *testing.T) {
	l, _, _ := fakeWSL(t)

	code, err := l.Run(context.Background(), Invocation{CommandLine: "exit 42"})

	require.NoError(t, err)
	assert.Equal(t, 42, code)
}

func TestWSLLauncher_RunPassesStdin(t *testing.T) {
	l, stdout, _ := fakeWSL(t)
	l.Stdin = strings.NewReader("from stdin")

	code, err := l.Run(context.Background(), Invocation{CommandLine: "cat"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "from stdin", stdout.String())
}

func TestWSLLauncher_Capture(t *testing.T) {
	l, stdout, _ := fakeWSL(t)

	out, code, err := l.Capture(context.Background(), Invocation{CommandLine: "echo captured; exit 3"})

	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "captured\n", string(out))
	assert.Empty(t, stdout.String())
}

func TestWSLLauncher_Env(t *testing.T) {
	l, stdout, _ := fakeWSL(t)

	_, err := l.Run(context.Background(), Invocation{
		CommandLine: `echo "$WSLENV"`,
		Env:         []string{"PATH=/usr/bin:/bin", "WSLENV=A:B/p"},
	})

	require.NoError(t, err)
	assert.Equal(t, "A:B/p\n", stdout.String())
}

func TestWSLLauncher_Signal(t *testing.T) {
	l, _, _ := fakeWSL(t)

	code, err := l.Run(context.Background(), Invocation{CommandLine: "kill -TERM $$"})

	require.Error(t, err)
	assert.Equal(t, 143, code)
	exitCode, ok := errors.GetExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 143, exitCode)
	assert.Contains(t, err.Error(), "terminated abnormally")
}

func TestWSLLauncher_SpawnFailure(t *testing.T) {
	l, _, _ := fakeWSL(t)
	l.Executable = "/nonexistent/wsl.exe"

	code, err := l.Run(context.Background(), Invocation{CommandLine: "git status"})

	require.Error(t, err)
	assert.Equal(t, SpawnFailureCode, code)
	assert.True(t, errors.IsCode(err, errors.ErrLaunch))
	_, isExit := errors.GetExitCode(err)
	assert.False(t, isExit)
}

func TestTailBuffer(t *testing.T) {
	b := newTailBuffer(5)
	_, _ = b.Write([]byte("abc"))
	_, _ = b.Write([]byte("defg"))
	assert.Equal(t, "cdefg", b.String())
}
