package doctor

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/errors"
)

// ConfigCheck reports whether the configuration loaded and where it came from.
type ConfigCheck struct {
	Config *config.Config
	// Err is the error from loading; Config is nil when it is set.
	Err error
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return CategoryConfig }

func (c *ConfigCheck) Run(context.Context) CheckResult {
	if c.Err != nil {
		msg, suggestion := c.Err.Error(), ""
		var wgErr *errors.Error
		if stderrors.As(c.Err, &wgErr) {
			msg, suggestion = wgErr.Message, wgErr.Suggestion
			if wgErr.Cause != nil {
				msg += ": " + wgErr.Cause.Error()
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if c.Config == nil || c.Config.Source == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config file, using environment and defaults",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", c.Config.Source),
	}
}
