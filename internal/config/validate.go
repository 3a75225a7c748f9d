package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	switch cfg.OutputConverter {
	case ConverterWSLPath, ConverterMount:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output_converter '%s'", cfg.OutputConverter),
			fmt.Sprintf("Use '%s' (default) or '%s'.", ConverterWSLPath, ConverterMount))
	}

	if !strings.HasPrefix(cfg.MountRoot, "/") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("mount_root must be an absolute WSL path, got '%s'", cfg.MountRoot),
			"Use the automount root from /etc/wsl.conf, e.g. /mnt/")
	}

	if strings.TrimSpace(cfg.Executable) == "" {
		return errors.New(errors.ErrConfig,
			"executable can't be empty",
			"Unset WSLGIT_EXECUTABLE to use git from PATH.")
	}

	if strings.ContainsAny(cfg.DefaultDist, `\/ "'`) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("default_dist '%s' isn't a distribution name", cfg.DefaultDist),
			"Use a name from 'wsl.exe --list', e.g. Ubuntu.")
	}

	if _, err := cfg.WSLArgList(); err != nil {
		return err
	}
	return nil
}
