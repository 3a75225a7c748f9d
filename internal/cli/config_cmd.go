package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration wslgit would use right now: defaults, overlaid by
the config file, overlaid by WSLGIT_* environment variables.

Examples:
  wslgit-doctor config
  wslgit-doctor config --yaml > ~/.config/wslgit/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if configYAML {
			return writeConfigYAML(cmd, cfg)
		}
		newCmdPrinter(cmd).Table([]string{"SETTING", "VALUE"}, configSummary(cfg))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a setting to the config file",
	Long: `Write a setting to the config file, creating the file if needed.
Comments and other settings in the file are kept.

Environment variables still take precedence over the file.

Examples:
  wslgit-doctor config set use_interactive_shell smart
  wslgit-doctor config set default_dist Ubuntu-22.04`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if err := setConfigValue(path, args[0], args[1]); err != nil {
			return err
		}
		newCmdPrinter(cmd).Check(true, fmt.Sprintf("Set %s in %s", args[0], path), "")
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "print as YAML")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// setConfigValue writes the setting and reloads the file, so an invalid
// value is reported now rather than by the next git call. The previous file
// is restored when the reload fails.
func setConfigValue(path, key, value string) error {
	previous, readErr := os.ReadFile(path)

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}
	if _, err := config.LoadFrom(path); err != nil {
		if readErr == nil {
			_ = os.WriteFile(path, previous, 0644)
		} else {
			_ = os.Remove(path)
		}
		return err
	}
	return nil
}

func writeConfigYAML(cmd *cobra.Command, cfg *config.Config) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// configSummary lists the effective settings as table rows.
func configSummary(cfg *config.Config) [][]string {
	return [][]string{
		{"use_interactive_shell", orDefault(cfg.UseInteractiveShell, "(auto)")},
		{"mount_root", cfg.MountRoot},
		{"default_dist", orDefault(cfg.DefaultDist, "(default)")},
		{"debug", strconv.FormatBool(cfg.Debug)},
		{"log_file", orDefault(cfg.LogFile, "(none)")},
		{"executable", cfg.Executable},
		{"wsl_args", orDefault(cfg.WSLArgs, "(none)")},
		{"output_converter", cfg.OutputConverter},
		{"share_env", util.JoinOrNone(shareKeys(cfg))},
		{"config file", orDefault(cfg.Source, "(none)")},
	}
}

func shareKeys(cfg *config.Config) []string {
	var keys []string
	for _, v := range cfg.ShareVars() {
		keys = append(keys, v.Key())
	}
	return keys
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
