// Package shell builds the bash command line that runs git inside WSL and
// decides whether bash starts as an interactive shell.
package shell

import (
	"strings"

	"github.com/rileyhilliard/wslgit/internal/envshare"
	"github.com/rileyhilliard/wslgit/internal/gitcmd"
)

// Mode is how bash is started in the distribution.
type Mode int

const (
	// NonInteractive runs "bash -c". Fast, but ~/.bashrc is not sourced.
	NonInteractive Mode = iota
	// Interactive runs "bash -ic" so user customization (ssh-agent,
	// credential helpers, PATH) is loaded.
	Interactive
)

func (m Mode) String() string {
	if m == Interactive {
		return "interactive"
	}
	return "non-interactive"
}

// BashFlag returns the bash option that runs a command string in this mode.
func (m Mode) BashFlag() string {
	if m == Interactive {
		return "-ic"
	}
	return "-c"
}

// SmartOverride selects the interactive shell only for commands that may
// contact a remote.
const SmartOverride = "smart"

// Env holds the inputs of the mode decision.
type Env struct {
	// Override is the value of WSLGIT_USE_INTERACTIVE_SHELL, "" when unset.
	Override string
	// BashEnvSet is true when BASH_ENV is present in the environment.
	BashEnvSet bool
	// WSLEnv is the value of WSLENV.
	WSLEnv string
}

// BashEnv is the variable that configures non-interactive bash.
const BashEnv = "BASH_ENV"

// DecideMode picks the shell mode for one invocation.
func DecideMode(env Env, subcommand string) Mode {
	switch {
	case env.Override == "":
	case isFalsy(env.Override):
		return NonInteractive
	case strings.EqualFold(env.Override, SmartOverride):
		return smartMode(subcommand)
	default:
		return Interactive
	}

	// BASH_ENV shared into WSL already sets up the non-interactive shell.
	if env.BashEnvSet && envshare.Contains(env.WSLEnv, BashEnv) {
		return NonInteractive
	}

	return smartMode(subcommand)
}

func smartMode(subcommand string) Mode {
	if gitcmd.NeedsRemoteAccess(subcommand) {
		return Interactive
	}
	return NonInteractive
}

func isFalsy(v string) bool {
	return v == "0" || strings.EqualFold(v, "false")
}
