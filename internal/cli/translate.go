package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/exec"
	"github.com/rileyhilliard/wslgit/internal/pathconv"
	"github.com/rileyhilliard/wslgit/internal/util"
	"github.com/spf13/cobra"
)

var (
	translateInteractive    bool
	translateNonInteractive bool
	translateDir            string
)

var translateCmd = &cobra.Command{
	Use:   "translate -- <git arguments>",
	Short: "Show the WSL command a git invocation turns into",
	Long: `Translate git arguments the way wslgit would, without running anything.

Prints the distribution, the shell mode, each argument before and after
translation, and the full wsl.exe command line. Put the git arguments after
"--" so their flags aren't taken as flags of this command.

Relative paths are only rewritten when they exist, relative to --dir.

Examples:
  wslgit-doctor translate -- log -- src\main.rs
  wslgit-doctor translate --interactive -- fetch origin
  wslgit-doctor translate --dir \\wsl$\Ubuntu\home\me\repo -- status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return translateCommand(cmd, args)
	},
}

func init() {
	translateCmd.Flags().BoolVar(&translateInteractive, "interactive", false, "force bash -ic")
	translateCmd.Flags().BoolVar(&translateNonInteractive, "non-interactive", false, "force bash -c")
	translateCmd.Flags().StringVar(&translateDir, "dir", "", "working directory to translate (default is the current one)")
	translateCmd.MarkFlagsMutuallyExclusive("interactive", "non-interactive")
	rootCmd.AddCommand(translateCmd)
}

func translateCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New(errors.ErrConfig,
			"No git arguments given",
			"Usage: wslgit-doctor translate -- <git arguments>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyModeFlags(cfg, translateInteractive, translateNonInteractive)

	wslArgs, err := cfg.WSLArgList()
	if err != nil {
		return err
	}

	dir := translateDir
	if dir == "" {
		dir, _ = os.Getwd()
	}

	tr := pathconv.NewTranslator()
	tr.Stat = statRelativeTo(dir)

	plan := PlanInvocation(ShimOptions{
		Args:       args,
		Dir:        dir,
		Config:     cfg,
		Environ:    os.Environ(),
		Translator: tr,
	})

	launcher := &exec.WSLLauncher{ExtraArgs: wslArgs}
	argv := launcher.Args(exec.Invocation{Target: plan.Target, Mode: plan.Mode, CommandLine: plan.CommandLine})

	out := cmd.OutOrStdout()
	p := newCmdPrinter(cmd)

	rows := make([][]string, len(args))
	for i, arg := range args {
		rows[i] = []string{arg, pathconv.Classify(arg).String(), plan.Args[i]}
	}
	p.Table([]string{"ARGUMENT", "KIND", "PASSED TO BASH"}, rows)

	fmt.Fprintf(out, "distribution: %s\n", plan.Target)
	fmt.Fprintf(out, "shell:        bash %s (%s)\n", plan.Mode.BashFlag(), plan.Mode)
	fmt.Fprintf(out, "command line: %s\n", plan.CommandLine)
	fmt.Fprintf(out, "wsl.exe:      %s %s\n", exec.DefaultWSLExecutable, util.ShellJoin(argv))
	return nil
}

// applyModeFlags turns the --interactive / --non-interactive flags into the
// equivalent WSLGIT_USE_INTERACTIVE_SHELL value.
func applyModeFlags(cfg *config.Config, interactive, nonInteractive bool) {
	switch {
	case interactive:
		cfg.UseInteractiveShell = "true"
	case nonInteractive:
		cfg.UseInteractiveShell = "false"
	}
}

// statRelativeTo resolves relative paths against dir instead of the process
// working directory.
func statRelativeTo(dir string) pathconv.StatFunc {
	return func(name string) (os.FileInfo, error) {
		if dir == "" || filepath.IsAbs(name) {
			return os.Stat(name)
		}
		return os.Stat(filepath.Join(dir, name))
	}
}
