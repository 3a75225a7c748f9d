package config

import (
	"github.com/google/shlex"
	"github.com/rileyhilliard/wslgit/internal/envshare"
	"github.com/rileyhilliard/wslgit/internal/errors"
)

// Output converters.
const (
	ConverterWSLPath = "wslpath"
	ConverterMount   = "mount"
)

// Config is the effective wslgit configuration: defaults, overlaid by the
// config file, overlaid by WSLGIT_* environment variables.
type Config struct {
	// UseInteractiveShell overrides the shell mode: "false"/"0", "smart",
	// or any other value for always interactive. Empty means automatic.
	UseInteractiveShell string `yaml:"use_interactive_shell" mapstructure:"use_interactive_shell"`

	// MountRoot is where Windows drives are mounted in the distribution.
	// Always ends with a slash.
	MountRoot string `yaml:"mount_root" mapstructure:"mount_root"`

	// DefaultDist is used unless the working directory is on a \\wsl$ share.
	DefaultDist string `yaml:"default_dist" mapstructure:"default_dist"`

	Debug   bool   `yaml:"debug" mapstructure:"-"`
	LogFile string `yaml:"log_file" mapstructure:"log_file"`

	// Executable is the git binary inside the distribution.
	Executable string `yaml:"executable" mapstructure:"executable"`

	// WSLArgs are extra wsl.exe flags, split like a shell would.
	WSLArgs string `yaml:"wsl_args" mapstructure:"wsl_args"`

	// OutputConverter selects how paths in git output are converted back.
	OutputConverter string `yaml:"output_converter" mapstructure:"output_converter"`

	// ShareEnv lists NAME[/flags] entries added to WSLENV.
	ShareEnv string `yaml:"share_env" mapstructure:"share_env"`

	// Source is the config file that was loaded, "" when none.
	Source string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns a Config with defaults only.
func DefaultConfig() *Config {
	return &Config{
		MountRoot:       "/mnt/",
		Executable:      "git",
		OutputConverter: ConverterWSLPath,
	}
}

// WSLArgList splits WSLArgs into wsl.exe arguments.
func (c *Config) WSLArgList() ([]string, error) {
	if c.WSLArgs == "" {
		return nil, nil
	}
	args, err := shlex.Split(c.WSLArgs)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't parse wsl_args: "+c.WSLArgs,
			"Quote arguments like a shell would, e.g. WSLGIT_WSL_ARGS=\"--user 'my user'\".")
	}
	return args, nil
}

// ShareVars returns the WSLENV entries from ShareEnv.
func (c *Config) ShareVars() []envshare.Var {
	return envshare.Parse(c.ShareEnv)
}
