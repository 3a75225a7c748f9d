package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/wslgit/internal/config"
	"github.com/rileyhilliard/wslgit/internal/doctor"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points wslgit at an empty home and clears every WSLGIT_* variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range append([]string{"config"}, config.Keys...) {
		name := config.EnvPrefix + "_" + strings.ToUpper(k)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

// resetFlags restores every flag of cmd and its children to its default,
// including the Changed state cobra keeps between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runDoctor executes wslgit-doctor with args and returns its stdout.
func runDoctor(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTranslateCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := runDoctor(t, "translate", "--dir", dir, "--", "log", "--", `src\main.rs`)

	require.NoError(t, err)
	assert.Contains(t, out, `command line: cd "`+dir+`" && git log -- src/main.rs`)
	assert.Contains(t, out, "shell:        bash -c (non-interactive)")
	assert.Contains(t, out, "distribution: (default)")
	assert.Contains(t, out, "wsl.exe:      wsl.exe 'bash' '-c'")
	assert.Contains(t, out, "PASSED TO BASH")
}

func TestTranslateCommand_ModeFlags(t *testing.T) {
	isolate(t)
	t.Setenv("WSLENV", "")

	out, err := runDoctor(t, "translate", "--interactive", "--", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "bash -ic (interactive)")

	out, err = runDoctor(t, "translate", "--non-interactive", "--", "push")
	require.NoError(t, err)
	assert.Contains(t, out, "bash -c (non-interactive)")

	out, err = runDoctor(t, "translate", "--", "push")
	require.NoError(t, err)
	assert.Contains(t, out, "bash -ic (interactive)")
}

func TestTranslateCommand_DistributionFromConfig(t *testing.T) {
	isolate(t)
	t.Setenv("WSLGIT_DEFAULT_DIST", "Debian")
	t.Setenv("WSLGIT_WSL_ARGS", "--user me")

	out, err := runDoctor(t, "translate", "--", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "distribution: Debian")
	assert.Contains(t, out, "wsl.exe:      wsl.exe '--user' 'me' '-d' 'Debian' 'bash' '-c'")
}

func TestTranslateCommand_NoArguments(t *testing.T) {
	isolate(t)

	_, err := runDoctor(t, "translate")

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestApplyModeFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UseInteractiveShell = "smart"

	applyModeFlags(cfg, false, false)
	assert.Equal(t, "smart", cfg.UseInteractiveShell)

	applyModeFlags(cfg, true, false)
	assert.Equal(t, "true", cfg.UseInteractiveShell)

	applyModeFlags(cfg, false, true)
	assert.Equal(t, "false", cfg.UseInteractiveShell)
}

func TestStatRelativeTo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0644))

	stat := statRelativeTo(dir)

	_, err := stat("file.txt")
	assert.NoError(t, err)
	_, err = stat("other.txt")
	assert.Error(t, err)
	_, err = stat(filepath.Join(dir, "file.txt"))
	assert.NoError(t, err)
}

func TestConfigCommand(t *testing.T) {
	isolate(t)
	t.Setenv("WSLGIT_DEFAULT_DIST", "Ubuntu")

	out, err := runDoctor(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "SETTING")
	assert.Contains(t, out, "default_dist")
	assert.Contains(t, out, "Ubuntu")
	assert.Contains(t, out, "(auto)")
}

func TestConfigCommand_YAML(t *testing.T) {
	isolate(t)
	t.Setenv("WSLGIT_OUTPUT_CONVERTER", "mount")

	out, err := runDoctor(t, "config", "--yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "mount_root: /mnt/\n")
	assert.Contains(t, out, "executable: git\n")
	assert.Contains(t, out, "output_converter: mount\n")
	assert.NotContains(t, out, "source")
}

func TestConfigSetCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runDoctor(t, "--config", path, "config", "set", "default_dist", "Ubuntu")
	require.NoError(t, err)
	assert.Contains(t, out, "Set default_dist in "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_dist: Ubuntu")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu", cfg.DefaultDist)
}

func TestConfigSetCommand_InvalidValueRestoresFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "# mine\nmount_root: /mnt/\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	_, err := runDoctor(t, "--config", path, "config", "set", "output_converter", "nope")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestConfigSetCommand_UnknownKey(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runDoctor(t, "--config", path, "config", "set", "colour", "red")

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.NoFileExists(t, path)
}

func TestConfigPathCommand(t *testing.T) {
	home := isolate(t)

	out, err := runDoctor(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "wslgit", "config.yaml")+"\n", out)
}

func sampleResults() []doctor.CheckResult {
	return []doctor.CheckResult{
		{Name: "config", Category: doctor.CategoryConfig, Status: doctor.StatusPass, Message: "No config file, using environment and defaults"},
		{Name: "distribution", Category: doctor.CategoryWSL, Status: doctor.StatusFail, Message: "bash in Gone exited with code 1", Suggestion: "Check that \"Gone\" is installed"},
		{Name: "path", Category: doctor.CategoryPath, Status: doctor.StatusSkip, Message: "Skipped: the distribution isn't reachable"},
		{Name: "bash_env", Category: doctor.CategoryEnv, Status: doctor.StatusWarn, Message: "BASH_ENV is set but not listed in WSLENV", Suggestion: "Add BASH_ENV/up to WSLENV"},
	}
}

func TestOutputDoctorText(t *testing.T) {
	var buf bytes.Buffer

	outputDoctorText(&buf, sampleResults())

	out := buf.String()
	assert.Contains(t, out, "wslgit diagnostic report")
	assert.Contains(t, out, "CONFIG\n✓ No config file")
	assert.Contains(t, out, "WSL\n✗ bash in Gone exited with code 1\n  Check that \"Gone\" is installed\n")
	assert.Contains(t, out, "⊘ Skipped: the distribution isn't reachable")
	assert.Contains(t, out, "! BASH_ENV is set but not listed in WSLENV\n  Add BASH_ENV/up to WSLENV\n")
	assert.True(t, strings.HasSuffix(out, "✗ 2 issues found\n"))
}

func TestOutputDoctorJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, outputDoctorJSON(&buf, sampleResults()))

	var got DoctorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Categories, 4)
	assert.Equal(t, "CONFIG", got.Categories[0].Name)
	assert.Equal(t, SummaryOutput{Pass: 1, Warn: 1, Fail: 1, Skip: 1, AllClear: false}, got.Summary)
	assert.Contains(t, buf.String(), `"status": "fail"`)
}
