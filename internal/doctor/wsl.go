package doctor

import (
	"context"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/exec"
	"github.com/rileyhilliard/wslgit/internal/shell"
)

// LookPathFunc resolves an executable on the local PATH. exec.LookPath
// satisfies it.
type LookPathFunc func(file string) (string, error)

// LauncherCheck verifies that wsl.exe can be found.
type LauncherCheck struct {
	Executable string
	LookPath   LookPathFunc
}

func (c *LauncherCheck) Name() string     { return "wsl_executable" }
func (c *LauncherCheck) Category() string { return CategoryWSL }

func (c *LauncherCheck) Run(context.Context) CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = osexec.LookPath
	}

	found, err := lookPath(c.Executable)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found on PATH", c.Executable),
			Suggestion: "Install the Windows Subsystem for Linux: wsl.exe --install",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Launcher: %s", found),
	}
}

// DistributionCheck starts a non-interactive bash in the target distribution.
type DistributionCheck struct {
	Launcher exec.Launcher
	Target   distro.Target
}

func (c *DistributionCheck) Name() string     { return "distribution" }
func (c *DistributionCheck) Category() string { return CategoryWSL }

func (c *DistributionCheck) Run(ctx context.Context) CheckResult {
	out, code, err := c.Launcher.Capture(ctx, exec.Invocation{
		Target:      c.Target,
		Mode:        shell.NonInteractive,
		CommandLine: "uname -sr",
	})
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't start bash in %s: %v", c.Target, err),
			Suggestion: "Run 'wsl.exe --list --verbose' to see the installed distributions",
		}
	}
	if code != 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("bash in %s exited with code %d", c.Target, code),
			Suggestion: distributionSuggestion(c.Target),
		}
	}

	kernel := strings.TrimSpace(string(out))
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Distribution %s reachable (%s)", c.Target, kernel),
	}
}

func distributionSuggestion(target distro.Target) string {
	if target.IsDefault() {
		return "Check your default distribution with 'wsl.exe --list --verbose', or set WSLGIT_DEFAULT_DIST"
	}
	return fmt.Sprintf("Check that %q is installed: wsl.exe --list --verbose", target.Name)
}
