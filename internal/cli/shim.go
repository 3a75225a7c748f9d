package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/envshare"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/exec"
	"github.com/rileyhilliard/wslgit/internal/gitcmd"
	"github.com/rileyhilliard/wslgit/internal/logger"
	"github.com/rileyhilliard/wslgit/internal/output"
	"github.com/rileyhilliard/wslgit/internal/pathconv"
	"github.com/rileyhilliard/wslgit/internal/shell"
	"github.com/rileyhilliard/wslgit/internal/ui"
	"github.com/spf13/cobra"
)

// shimCmd is the git replacement. Every argument belongs to git, so cobra
// does no flag parsing at all.
var shimCmd = &cobra.Command{
	Use:                "wslgit [git arguments]",
	Short:              "Run git inside WSL with Windows paths translated",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	Args:               cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shimCommand(cmd.Context(), args)
	},
}

// ExecuteShim runs the git shim and exits with git's exit code.
func ExecuteShim() {
	err := shimCmd.ExecuteContext(context.Background())
	os.Exit(exitCode(err, os.Stderr))
}

// ShimOptions holds everything one shim invocation needs.
type ShimOptions struct {
	// Args is argv without the program name.
	Args []string
	// Dir is the caller's working directory, in Windows form.
	Dir    string
	Config *config.Config
	// Environ is the caller's environment.
	Environ []string

	Launcher   exec.Launcher
	Translator *pathconv.Translator
	Stdout     io.Writer
	Stderr     io.Writer
	Log        logger.Logger
}

// Plan is the translated invocation, before anything runs.
type Plan struct {
	Subcommand string
	Target     distro.Target
	Mode       shell.Mode
	// Args are the translated and quoted git arguments.
	Args        []string
	CommandLine string
	Env         []string
}

// PlanInvocation translates and quotes the arguments, picks the
// distribution and the shell mode, and builds the command line.
func PlanInvocation(opts ShimOptions) Plan {
	cfg := opts.Config
	tr := opts.Translator
	if tr == nil {
		tr = pathconv.NewTranslator()
	}

	sub := gitcmd.Subcommand(opts.Args)
	mode := shell.DecideMode(modeEnv(cfg, opts.Environ), sub)
	args := shell.QuoteAll(mode, tr.TranslateAll(opts.Args))

	var dir string
	if opts.Dir != "" {
		dir = tr.TranslateDir(opts.Dir)
	}

	return Plan{
		Subcommand:  sub,
		Target:      distro.Resolve(opts.Dir, cfg.DefaultDist),
		Mode:        mode,
		Args:        args,
		CommandLine: shell.BuildCommandLine(dir, cfg.Executable, args),
		Env:         envshare.Environ(opts.Environ, cfg.ShareVars()),
	}
}

// RunShim runs git in WSL and returns its exit code. Output of subcommands
// that print repository paths is captured and translated back before it is
// written to Stdout.
func RunShim(ctx context.Context, opts ShimOptions) (int, error) {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	plan := PlanInvocation(opts)
	log.Debug("args: %q", opts.Args)
	log.Debug("distribution %s, %s shell", plan.Target, plan.Mode)
	log.Debug("command line: %s", plan.CommandLine)

	inv := exec.Invocation{
		Target:      plan.Target,
		Mode:        plan.Mode,
		CommandLine: plan.CommandLine,
		Env:         plan.Env,
	}

	if !gitcmd.RevealsPaths(plan.Subcommand) {
		code, err := opts.Launcher.Run(ctx, inv)
		explainExit(opts, code)
		return code, err
	}

	out, code, runErr := opts.Launcher.Capture(ctx, inv)
	if _, ran := errors.GetExitCode(runErr); runErr != nil && !ran {
		return code, runErr
	}
	explainExit(opts, code)

	// a signal still leaves whatever git printed before it died
	rewriter := output.NewRewriter(newConverter(opts.Config, opts.Launcher, plan), log)
	translated, err := rewriter.Rewrite(ctx, plan.Subcommand, out)
	if err != nil {
		return 1, err
	}
	if _, err := opts.Stdout.Write(translated); err != nil {
		return 1, errors.Wrap(err, "Couldn't write git output")
	}
	return code, runErr
}

func newConverter(cfg *config.Config, l exec.Launcher, plan Plan) output.Converter {
	if cfg.OutputConverter == config.ConverterMount {
		return output.MountConverter{Root: cfg.MountRoot}
	}
	return &exec.WSLPathConverter{Launcher: l, Target: plan.Target, Env: plan.Env}
}

func modeEnv(cfg *config.Config, environ []string) shell.Env {
	env := shell.Env{Override: cfg.UseInteractiveShell}
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		switch key {
		case shell.BashEnv:
			env.BashEnvSet = true
		case envshare.WSLEnv:
			env.WSLEnv = value
		}
	}
	return env
}

// stderrTailer is implemented by launchers that keep the end of stderr.
type stderrTailer interface {
	StderrTail() string
}

// explainExit prints a hint when bash couldn't find git. The exit code is
// forwarded unchanged.
func explainExit(opts ShimOptions, code int) {
	t, ok := opts.Launcher.(stderrTailer)
	if !ok || opts.Stderr == nil {
		return
	}
	if hint := exec.HandleExecError(opts.Config.Executable, t.StderrTail(), code); hint != nil {
		ui.NewPrinter(opts.Stderr).Error(hint)
	}
}

func shimCommand(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := newShimLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	wslArgs, err := cfg.WSLArgList()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Warn("can't read working directory: %v", err)
		dir = ""
	}

	launcher := exec.NewWSLLauncher(wslArgs, log)
	code, err := RunShim(ctx, ShimOptions{
		Args:     args,
		Dir:      dir,
		Config:   cfg,
		Environ:  os.Environ(),
		Launcher: launcher,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Log:      log,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.NewExitError(code)
	}
	return nil
}

// newShimLogger picks the log sink. Nothing is logged unless debug is on;
// then messages go to the log file when one is configured, else to stderr.
func newShimLogger(cfg *config.Config, stderr io.Writer) (logger.Logger, func(), error) {
	noop := func() {}
	switch {
	case !cfg.Debug:
		return logger.Noop(), noop, nil
	case cfg.LogFile != "":
		l, closer, err := logger.NewFileLogger(cfg.LogFile, "[wslgit]")
		if err != nil {
			return nil, noop, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file "+cfg.LogFile,
				"Check the directory exists, or unset WSLGIT_LOG_FILE.")
		}
		return l, func() { _ = closer.Close() }, nil
	default:
		return logger.NewWriterLogger(stderr, "[wslgit]"), noop, nil
	}
}
