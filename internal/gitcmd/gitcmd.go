// Package gitcmd knows just enough about git's command line to find the
// subcommand and tell which subcommands need special handling.
package gitcmd

import "strings"

// globalOptionsWithValue are git options placed before the subcommand that
// take their value as the next argument.
var globalOptionsWithValue = map[string]bool{
	"-C":             true,
	"-c":             true,
	"--git-dir":      true,
	"--work-tree":    true,
	"--namespace":    true,
	"--config-env":   true,
	"--super-prefix": true,
}

// remoteAccess lists subcommands that may talk to a remote and therefore
// trigger credential helpers or SSH agents configured in the user's shell.
var remoteAccess = map[string]bool{
	"clone":     true,
	"fetch":     true,
	"pull":      true,
	"push":      true,
	"ls-remote": true,
}

// pathRevealing lists subcommands whose output can contain WSL paths.
var pathRevealing = map[string]bool{
	"rev-parse": true,
	"remote":    true,
	"init":      true,
}

// Subcommand returns git's subcommand from args (argv without the program
// name), or "" if there is none, e.g. for "git --version".
func Subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
		if globalOptionsWithValue[arg] {
			i++
		}
	}
	return ""
}

// NeedsRemoteAccess reports whether subcommand may contact a remote.
func NeedsRemoteAccess(subcommand string) bool {
	return remoteAccess[subcommand]
}

// RevealsPaths reports whether subcommand's output must be translated back.
func RevealsPaths(subcommand string) bool {
	return pathRevealing[subcommand]
}
