package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/pathconv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every setting name to get its variable.
	EnvPrefix = "WSLGIT"
	// ConfigEnv names an explicit config file.
	ConfigEnv = "WSLGIT_CONFIG"
	// GlobalConfigDir is the directory for the config file, under the home directory.
	GlobalConfigDir = ".config/wslgit"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
)

// Keys lists every setting, in the order they are documented.
var Keys = []string{
	"use_interactive_shell",
	"mount_root",
	"default_dist",
	"debug",
	"log_file",
	"executable",
	"wsl_args",
	"output_converter",
	"share_env",
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Find locates the config file:
// 1. WSLGIT_CONFIG, which must exist
// 2. ~/.config/wslgit/config.yaml
//
// Returns "" when there is none.
func Find() (string, error) {
	if explicit := os.Getenv(ConfigEnv); explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Config file from "+ConfigEnv+" not found: "+explicit,
					"Check the path is correct, or unset "+ConfigEnv+".")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}
	return "", nil
}

// GlobalPath returns the default config file location, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// Load finds and loads the configuration. A missing config file is fine.
func Load() (*Config, error) {
	path, err := Find()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration with path as the config file. An empty
// path means environment and defaults only.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// parseConfig converts viper settings to a Config.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.Debug = isTruthy(v.GetString("debug"))
	cfg.MountRoot = pathconv.NormalizeMountRoot(cfg.MountRoot)
	cfg.LogFile = ExpandTilde(Expand(cfg.LogFile))
	cfg.OutputConverter = strings.ToLower(strings.TrimSpace(cfg.OutputConverter))
	cfg.Source = path

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv applies to Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("use_interactive_shell", "")
	v.SetDefault("mount_root", d.MountRoot)
	v.SetDefault("default_dist", "")
	v.SetDefault("debug", "")
	v.SetDefault("log_file", "")
	v.SetDefault("executable", d.Executable)
	v.SetDefault("wsl_args", "")
	v.SetDefault("output_converter", d.OutputConverter)
	v.SetDefault("share_env", "")
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
