// Package exec runs the git command line inside a WSL distribution through
// wsl.exe and reports its exit status.
package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/logger"
	"github.com/rileyhilliard/wslgit/internal/shell"
)

// DefaultWSLExecutable is the Windows entry point into WSL.
const DefaultWSLExecutable = "wsl.exe"

// SpawnFailureCode is the exit status when wsl.exe could not be started.
// It is outside the range git itself uses.
const SpawnFailureCode = 255

// Invocation is one command line to run in a distribution.
type Invocation struct {
	Target      distro.Target
	Mode        shell.Mode
	CommandLine string
	// Env is the environment for wsl.exe. Nil inherits the current one.
	Env []string
}

// Launcher starts invocations in WSL.
type Launcher interface {
	// Run streams stdout and stderr and returns the exit code.
	Run(ctx context.Context, inv Invocation) (int, error)
	// Capture returns stdout instead of streaming it. stderr still streams.
	Capture(ctx context.Context, inv Invocation) ([]byte, int, error)
}

// WSLLauncher runs invocations with wsl.exe.
type WSLLauncher struct {
	// Executable defaults to DefaultWSLExecutable.
	Executable string
	// ExtraArgs are passed to wsl.exe before the distribution selection.
	ExtraArgs []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Log logger.Logger

	// stderr seen by the last run, for diagnostics
	stderrTail *tailBuffer
}

// NewWSLLauncher returns a launcher wired to the process stdio.
func NewWSLLauncher(extraArgs []string, log logger.Logger) *WSLLauncher {
	if log == nil {
		log = logger.Noop()
	}
	return &WSLLauncher{
		Executable: DefaultWSLExecutable,
		ExtraArgs:  extraArgs,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Log:        log,
	}
}

// Args returns the wsl.exe arguments for inv:
//
//	[extra args] [-d <dist>] bash -c|-ic <command line>
func (l *WSLLauncher) Args(inv Invocation) []string {
	args := make([]string, 0, len(l.ExtraArgs)+5)
	args = append(args, l.ExtraArgs...)
	args = append(args, inv.Target.Args()...)
	return append(args, "bash", inv.Mode.BashFlag(), inv.CommandLine)
}

// Run implements Launcher.
func (l *WSLLauncher) Run(ctx context.Context, inv Invocation) (int, error) {
	cmd := l.command(ctx, inv)
	cmd.Stdout = l.Stdout
	return l.wait(cmd, inv)
}

// Capture implements Launcher.
func (l *WSLLauncher) Capture(ctx context.Context, inv Invocation) ([]byte, int, error) {
	var stdout bytes.Buffer
	cmd := l.command(ctx, inv)
	cmd.Stdout = &stdout
	code, err := l.wait(cmd, inv)
	return stdout.Bytes(), code, err
}

// StderrTail returns the end of what the last run wrote to stderr.
func (l *WSLLauncher) StderrTail() string {
	if l.stderrTail == nil {
		return ""
	}
	return l.stderrTail.String()
}

func (l *WSLLauncher) command(ctx context.Context, inv Invocation) *exec.Cmd {
	exe := l.Executable
	if exe == "" {
		exe = DefaultWSLExecutable
	}

	args := l.Args(inv)
	l.logger().Debug("exec %s %s", exe, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin = l.Stdin
	cmd.Env = inv.Env

	l.stderrTail = newTailBuffer(stderrTailSize)
	if l.Stderr != nil {
		cmd.Stderr = io.MultiWriter(l.Stderr, l.stderrTail)
	} else {
		cmd.Stderr = l.stderrTail
	}
	return cmd
}

func (l *WSLLauncher) wait(cmd *exec.Cmd, inv Invocation) (int, error) {
	runErr := cmd.Run()
	if runErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code := 128 + int(ws.Signal())
			l.logger().Warn("%s terminated by signal %v", cmd.Path, ws.Signal())
			return code, errors.NewSignalExitError(code)
		}
		if code := exitErr.ExitCode(); code >= 0 {
			l.logger().Debug("exit code %d", code)
			return code, nil
		}
		return 1, errors.NewSignalExitError(1)
	}

	return SpawnFailureCode, errors.WrapWithCode(runErr, errors.ErrLaunch,
		"Couldn't start "+cmd.Path+" for distribution "+inv.Target.String(),
		"Make sure WSL is installed and wsl.exe is on your PATH.")
}

func (l *WSLLauncher) logger() logger.Logger {
	if l.Log == nil {
		return logger.Noop()
	}
	return l.Log
}
