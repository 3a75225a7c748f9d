package doctor

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/exec"
)

// CommandCheck looks a command up in both shell modes. A command that only
// resolves in interactive bash is a warning: wslgit uses non-interactive
// bash for most git subcommands.
type CommandCheck struct {
	Launcher exec.Launcher
	Target   distro.Target
	Command  string
	// RequireNonInteractive turns the interactive-only case into a failure,
	// for commands wslgit always runs with bash -c.
	RequireNonInteractive bool
}

func (c *CommandCheck) Name() string { return "command_" + c.Command }

func (c *CommandCheck) Category() string { return CategoryGit }

func (c *CommandCheck) Run(ctx context.Context) CheckResult {
	res, err := exec.ProbeCommand(ctx, c.Launcher, c.Target, c.Command)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Couldn't look up %s: %v", c.Command, err),
			Suggestion: "Run 'wslgit-doctor check' again with WSLGIT_DEBUG=1 for details",
		}
	}

	switch {
	case res.FoundNonInteractive:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s: %s", c.Command, res.NonInteractivePath),
		}
	case res.FoundInteractive:
		status := StatusWarn
		if c.RequireNonInteractive {
			status = StatusFail
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     status,
			Message:    fmt.Sprintf("%s only found by interactive bash", c.Command),
			Suggestion: res.Suggestion(),
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found in %s", c.Command, c.Target),
			Suggestion: res.Suggestion(),
		}
	}
}
