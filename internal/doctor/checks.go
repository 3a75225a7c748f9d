// Package doctor runs diagnostic checks against the WSL setup that wslgit
// depends on.
package doctor

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/wslgit/internal/util"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
	// StatusSkip means a prerequisite check failed.
	StatusSkip
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	case StatusSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *CheckStatus) UnmarshalText(b []byte) error {
	for _, st := range []CheckStatus{StatusPass, StatusWarn, StatusFail, StatusSkip} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown check status %q", b)
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns the check's category (e.g., "CONFIG", "WSL", "PATH").
	Category() string

	// Run executes the check and returns the result.
	Run(ctx context.Context) CheckResult
}

// RunAll executes checks in order. Once a check in the "WSL" category fails,
// later checks that need the distribution are skipped instead of each
// reporting the same launch failure.
func RunAll(ctx context.Context, checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	wslDown := false
	for i, check := range checks {
		if wslDown && needsDistribution(check) {
			results[i] = CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   StatusSkip,
				Message:  "Skipped: the distribution isn't reachable",
			}
			continue
		}

		r := check.Run(ctx)
		if r.Category == "" {
			r.Category = check.Category()
		}
		results[i] = r
		if r.Status == StatusFail && check.Category() == CategoryWSL {
			wslDown = true
		}
	}
	return results
}

// Check categories.
const (
	CategoryConfig = "CONFIG"
	CategoryWSL    = "WSL"
	CategoryGit    = "GIT"
	CategoryPath   = "PATH"
	CategoryEnv    = "ENV"
)

func needsDistribution(c Check) bool {
	switch c.Category() {
	case CategoryWSL, CategoryGit, CategoryPath:
		return true
	}
	return false
}

// GroupByCategory organizes results by their category, keeping the order
// in which categories first appear.
func GroupByCategory(results []CheckResult) ([]string, map[string][]CheckResult) {
	var order []string
	grouped := make(map[string][]CheckResult)
	for _, r := range results {
		if _, ok := grouped[r.Category]; !ok {
			order = append(order, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}
	return order, grouped
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail || r.Status == StatusWarn {
			return true
		}
	}
	return false
}

// Summary returns a summary string of the check results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	warn := counts[StatusWarn]
	fail := counts[StatusFail]

	if fail == 0 && warn == 0 {
		return "Everything looks good"
	}

	total := warn + fail
	return fmt.Sprintf("%d %s found", total, util.Pluralize(total, "issue", "issues"))
}
