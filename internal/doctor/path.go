package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/exec"
)

// PathCheck compares PATH between non-interactive and interactive bash.
// Directories added by ~/.bashrc are missing when wslgit runs git with
// bash -c.
type PathCheck struct {
	Launcher exec.Launcher
	Target   distro.Target
}

// Name returns the check identifier.
func (c *PathCheck) Name() string {
	return "path"
}

// Category returns the check category.
func (c *PathCheck) Category() string {
	return CategoryPath
}

// Run executes the PATH comparison check.
func (c *PathCheck) Run(ctx context.Context) CheckResult {
	diff, err := exec.GetPATHDifference(ctx, c.Launcher, c.Target)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "PATH check: failed to compare",
			Suggestion: fmt.Sprintf("Error: %v", err),
		}
	}

	if len(diff.InteractiveOnly) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("PATH consistent: %d directories", len(diff.Common)),
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    fmt.Sprintf("PATH differs: %d dirs missing from non-interactive bash", len(diff.InteractiveOnly)),
		Suggestion: formatPathSuggestion(diff.InteractiveOnly),
	}
}

// formatPathSuggestion creates a helpful suggestion for missing PATH directories.
func formatPathSuggestion(interOnly []string) string {
	var sb strings.Builder

	sb.WriteString("These directories are in the PATH of bash -ic but not bash -c:\n")
	displayCount := len(interOnly)
	if displayCount > 5 {
		displayCount = 5
	}
	for _, dir := range interOnly[:displayCount] {
		sb.WriteString(fmt.Sprintf("  - %s\n", dir))
	}
	if len(interOnly) > 5 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(interOnly)-5))
	}

	sb.WriteString("\nIf git or its helpers live there, export them from a file named by BASH_ENV\n")
	sb.WriteString("and share it with WSLENV=BASH_ENV/up:\n\n")

	exportCount := len(interOnly)
	if exportCount > 3 {
		exportCount = 3
	}
	pathParts := make([]string, exportCount)
	for i := 0; i < exportCount; i++ {
		pathParts[i] = toHomeRelative(interOnly[i])
	}
	sb.WriteString(fmt.Sprintf("  export PATH=%s:$PATH\n", strings.Join(pathParts, ":")))
	sb.WriteString("\nOr set WSLGIT_USE_INTERACTIVE_SHELL=true.\n")

	return sb.String()
}

// toHomeRelative converts absolute paths to $HOME-relative for portability.
func toHomeRelative(path string) string {
	prefixes := []string{
		"/home/",
		"/root",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			rest := path[len(prefix):]
			if prefix == "/root" {
				return "$HOME" + rest
			}
			// Skip past username to get the rest of the path
			if idx := strings.Index(rest, "/"); idx != -1 {
				return "$HOME" + rest[idx:]
			}
			return "$HOME"
		}
	}

	return path
}
