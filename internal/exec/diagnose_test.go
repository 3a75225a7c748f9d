package exec

import (
	"testing"

	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name      string
		stderr    string
		exitCode  int
		wantCmd   string
		wantFound bool
	}{
		{name: "bash command not found", stderr: "bash: git: command not found", exitCode: 127, wantCmd: "git", wantFound: true},
		{name: "bash -c line prefix", stderr: "bash: line 1: git: command not found", exitCode: 127, wantCmd: "git", wantFound: true},
		{name: "absolute executable", stderr: "bash: /opt/git/bin/git: No such file or directory", exitCode: 127, wantCmd: "/opt/git/bin/git", wantFound: true},
		{name: "127 without pattern", stderr: "something else", exitCode: 127, wantFound: true},
		{name: "other exit code", stderr: "bash: git: command not found", exitCode: 1, wantFound: false},
		{name: "success", exitCode: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, found := IsCommandNotFound(tt.stderr, tt.exitCode)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantCmd, cmd)
		})
	}
}

func TestHandleExecError(t *testing.T) {
	assert.NoError(t, HandleExecError("git", "fatal: not a git repository", 128))

	err := HandleExecError("git", "bash: line 1: git: command not found\n", 127)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.Contains(t, err.Error(), "'git' not found in PATH inside WSL")
	assert.Contains(t, err.Error(), "WSLGIT_EXECUTABLE")

	err = HandleExecError("/usr/local/bin/git", "", 127)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/usr/local/bin/git")
}
