package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	osexec "os/exec"

	"github.com/rileyhilliard/wslgit/internal/distro"
	"github.com/rileyhilliard/wslgit/internal/doctor"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/exec"
	"github.com/rileyhilliard/wslgit/internal/logger"
	"github.com/rileyhilliard/wslgit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	checkJSON bool
	checkDist string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that WSL, git and wslpath work for wslgit",
	Long: `Run diagnostic checks: configuration, wsl.exe, the target distribution,
git and wslpath in both shell modes, PATH differences between bash -c and
bash -ic, and environment sharing through WSLENV.

Exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(cmd, checkDist, checkJSON)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output in JSON format")
	checkCmd.Flags().StringVarP(&checkDist, "distribution", "d", "", "distribution to check (default from the working directory and config)")
	rootCmd.AddCommand(checkCmd)
}

// DoctorOutput represents the JSON output of the check command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Skip     int  `json:"skip"`
	AllClear bool `json:"all_clear"`
}

func checkCommand(cmd *cobra.Command, dist string, asJSON bool) error {
	cfg, cfgErr := loadConfig()

	setup := doctor.Setup{
		Config:        cfg,
		ConfigErr:     cfgErr,
		WSLExecutable: exec.DefaultWSLExecutable,
		LookPath:      osexec.LookPath,
		LookupEnv:     os.LookupEnv,
	}

	if cfg != nil {
		wslArgs, err := cfg.WSLArgList()
		if err != nil {
			return err
		}
		l := exec.NewWSLLauncher(wslArgs, logger.NewEnvLogger("[doctor]"))
		// probes must not leak into the report
		l.Stdin, l.Stderr = nil, nil
		setup.Launcher = l

		dir, _ := os.Getwd()
		setup.Target = distro.Resolve(dir, cfg.DefaultDist)
		if dist != "" {
			setup.Target = distro.Target{Name: dist}
		}
	}

	results := doctor.RunAll(cmd.Context(), doctor.NewChecks(setup))

	out := cmd.OutOrStdout()
	if asJSON {
		if err := outputDoctorJSON(out, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(out, results)
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

// outputDoctorJSON writes results grouped by category.
func outputDoctorJSON(w io.Writer, results []doctor.CheckResult) error {
	order, grouped := doctor.GroupByCategory(results)

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(order)),
	}
	for _, cat := range order {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Skip:     counts[doctor.StatusSkip],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText writes results in human-readable format.
func outputDoctorText(w io.Writer, results []doctor.CheckResult) {
	p := ui.NewPrinter(w)
	p.Header(ui.HeaderInfo{Name: "wslgit diagnostic report", Version: formatVersion(version)})
	fmt.Fprintln(w)

	order, grouped := doctor.GroupByCategory(results)
	for _, category := range order {
		p.Title(category)
		for _, r := range grouped[category] {
			renderCheckResult(p, r)
		}
		fmt.Fprintln(w)
	}

	p.Check(!doctor.HasIssues(results), doctor.Summary(results), "")
}

// renderCheckResult renders a single check result.
func renderCheckResult(p *ui.Printer, r doctor.CheckResult) {
	switch r.Status {
	case doctor.StatusPass:
		p.Check(true, r.Message, "")
	case doctor.StatusWarn:
		p.Status(ui.SymbolWarning, ui.ColorWarning, r.Message, r.Suggestion)
	case doctor.StatusSkip:
		p.Status(ui.SymbolSkipped, ui.ColorMuted, r.Message, "")
	default:
		p.Check(false, r.Message, r.Suggestion)
	}
}
