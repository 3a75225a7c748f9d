// Package cli implements the two wslgit command-line entry points.
//
// # The shim
//
// wslgit stands in for git.exe. ExecuteShim hands the whole argument vector
// to RunShim without any flag parsing:
//
//  1. Load the config (defaults, config file, WSLGIT_* variables)
//  2. Pick the distribution from the working directory
//  3. Translate Windows paths in the arguments and the working directory
//  4. Decide between bash -c and bash -ic, then quote the arguments
//  5. Run the command line through wsl.exe
//  6. For rev-parse, remote and init, translate WSL paths in the output back
//
// git's exit code is forwarded unchanged. wslgit's own failures are printed
// to stderr and exit with 255 (wsl.exe couldn't start) or 1.
//
// # wslgit-doctor
//
// The doctor tree explains the shim without running git:
//
//	wslgit-doctor translate -- <args>   - Show the translated command line
//	wslgit-doctor config [set|path]     - Show or change the configuration
//	wslgit-doctor check                 - Diagnose the WSL setup
//	wslgit-doctor version               - Print version information
package cli
