package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/exec"
	"github.com/rileyhilliard/wslgit/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var configFlag string

// rootCmd is wslgit-doctor, the companion tool that explains what the shim
// would do and why it might fail.
var rootCmd = &cobra.Command{
	Use:   "wslgit-doctor",
	Short: "Inspect and troubleshoot the wslgit git shim",
	Long: `wslgit-doctor shows how wslgit translates a git invocation, prints the
effective configuration, and checks that WSL, git and wslpath are usable.

Examples:
  wslgit-doctor check
  wslgit-doctor translate -- log -- src\main.rs
  wslgit-doctor config
  wslgit-doctor config set default_dist Ubuntu`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is $WSLGIT_CONFIG or ~/.config/wslgit/config.yaml)")
}

// Execute runs wslgit-doctor.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	os.Exit(exitCode(err, os.Stderr))
}

// loadConfig loads the configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.LoadFrom(config.ExpandTilde(configFlag))
	}
	return config.Load()
}

func newCmdPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

// configPath returns the file "config set" writes to.
func configPath() (string, error) {
	if configFlag != "" {
		return config.ExpandTilde(configFlag), nil
	}
	path, err := config.Find()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = config.GlobalPath()
	}
	if path == "" {
		return "", errors.New(errors.ErrConfig,
			"Can't determine where to write the config file",
			"Pass --config <path> or set "+config.ConfigEnv+".")
	}
	return path, nil
}

// exitCode turns the error of a command into the process exit status,
// printing it to stderr when it is a wslgit failure. A forwarded git exit
// status prints nothing unless git was terminated by a signal.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *errors.ExitError
	if stderrors.As(err, &exitErr) {
		if exitErr.Signaled {
			ui.NewPrinter(stderr).Warn("git %s", exitErr.Error())
		}
		return exitErr.Code
	}

	ui.NewPrinter(stderr).Error(err)
	if errors.IsCode(err, errors.ErrLaunch) {
		return exec.SpawnFailureCode
	}
	return 1
}
