package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/envshare"
	"github.com/rileyhilliard/wslgit/internal/shell"
)

// LookupEnvFunc reads the caller's environment. os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// BashEnvCheck reports whether BASH_ENV reaches the distribution. When it
// does, wslgit prefers the fast non-interactive shell.
type BashEnvCheck struct {
	LookupEnv LookupEnvFunc
}

func (c *BashEnvCheck) Name() string     { return "bash_env" }
func (c *BashEnvCheck) Category() string { return CategoryEnv }

func (c *BashEnvCheck) Run(context.Context) CheckResult {
	_, set := c.LookupEnv(shell.BashEnv)
	wslenv, _ := c.LookupEnv(envshare.WSLEnv)
	shared := envshare.Contains(wslenv, shell.BashEnv)

	switch {
	case set && shared:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "BASH_ENV is shared with WSL, non-interactive bash is used",
		}
	case set:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "BASH_ENV is set but not listed in WSLENV",
			Suggestion: "Add BASH_ENV/up to WSLENV so bash -c in WSL reads it",
		}
	case shared:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "WSLENV lists BASH_ENV but BASH_ENV isn't set",
			Suggestion: "Set BASH_ENV to a file that prepares the non-interactive shell",
		}
	default:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "BASH_ENV not used, shell mode is chosen per subcommand",
		}
	}
}

// ShareEnvCheck verifies that variables listed in share_env exist.
type ShareEnvCheck struct {
	Vars      []envshare.Var
	LookupEnv LookupEnvFunc
}

func (c *ShareEnvCheck) Name() string     { return "share_env" }
func (c *ShareEnvCheck) Category() string { return CategoryEnv }

func (c *ShareEnvCheck) Run(context.Context) CheckResult {
	if len(c.Vars) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No extra variables shared",
		}
	}

	var missing []string
	for _, v := range c.Vars {
		if _, ok := c.LookupEnv(v.Name); !ok {
			missing = append(missing, v.Name)
		}
	}
	if len(missing) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("share_env lists unset variables: %s", strings.Join(missing, ", ")),
			Suggestion: "Unset variables are not passed to WSL. Set them or remove them from share_env.",
		}
	}

	keys := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		keys[i] = v.Key()
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Sharing %s", strings.Join(keys, ":")),
	}
}
