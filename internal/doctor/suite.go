package doctor

import (
	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/exec"
)

// Setup is everything the standard checks need.
type Setup struct {
	Config    *config.Config
	ConfigErr error

	Launcher      exec.Launcher
	WSLExecutable string
	Target        distro.Target

	LookPath  LookPathFunc
	LookupEnv LookupEnvFunc
}

// NewChecks returns the standard checks in the order they should run.
// Without a valid config only the config and launcher checks are returned,
// since the rest depend on its settings.
func NewChecks(s Setup) []Check {
	checks := []Check{
		&ConfigCheck{Config: s.Config, Err: s.ConfigErr},
		&LauncherCheck{Executable: s.WSLExecutable, LookPath: s.LookPath},
	}
	if s.Config == nil {
		return checks
	}

	checks = append(checks,
		&DistributionCheck{Launcher: s.Launcher, Target: s.Target},
		&CommandCheck{Launcher: s.Launcher, Target: s.Target, Command: s.Config.Executable},
	)
	if s.Config.OutputConverter == config.ConverterWSLPath {
		checks = append(checks, &CommandCheck{
			Launcher:              s.Launcher,
			Target:                s.Target,
			Command:               "wslpath",
			RequireNonInteractive: true,
		})
	}
	checks = append(checks,
		&PathCheck{Launcher: s.Launcher, Target: s.Target},
		&BashEnvCheck{LookupEnv: s.LookupEnv},
		&ShareEnvCheck{Vars: s.Config.ShareVars(), LookupEnv: s.LookupEnv},
	)
	return checks
}
