package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, args ...string) (*cobra.Command, *reportFlags) {
	t.Helper()

	f := &reportFlags{}
	c := &cobra.Command{Use: "test"}
	addReportFlags(c, f)
	require.NoError(t, c.ParseFlags(args))

	return c, f
}

func TestLoadSettings_Precedence(t *testing.T) {
	t.Setenv("SPIKE_REPORT_WORKERS", "2")
	t.Setenv("SPIKE_REPORT_DPI", "100")
	t.Setenv("SPIKE_REPORT_INPUT", "env.json")

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dpi: 150\ntop_endpoints: 8\n"), 0o600))

	c, f := newFlagCommand(t, "--config", path, "--dpi", "200")

	cfg, err := loadSettings(c, f)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.DPI, "flag beats file and environment")
	assert.Equal(t, 8, cfg.TopEndpoints, "file beats default")
	assert.Equal(t, 2, cfg.Workers, "environment kept when nothing overrides it")
	assert.Equal(t, "env.json", cfg.Input, "unset flag default does not override environment")
}

func TestLoadSettings_InvalidFlag(t *testing.T) {
	c, f := newFlagCommand(t, "--workers", "0")

	_, err := loadSettings(c, f)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadSettings_MissingConfigFile(t *testing.T) {
	c, f := newFlagCommand(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := loadSettings(c, f)
	assert.ErrorIs(t, err, config.ErrConfigFile)
}

func TestRenderCommand_RejectsUnknownChart(t *testing.T) {
	err := cobra.OnlyValidArgs(renderCmd, []string{"percentiles", "heatmap"})
	assert.Error(t, err)

	assert.NoError(t, cobra.OnlyValidArgs(renderCmd, []string{"percentiles", "curve"}))
}

func TestRootCommand_MissingInputExitsCleanly(t *testing.T) {
	Logger.SetLevel(logrus.PanicLevel)

	dir := t.TempDir()
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--input", filepath.Join(dir, "spike_results.json"), "--output-dir", dir})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Failed to load spike test data")
}

func TestSetVerbose(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	setVerbose(log, false)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	setVerbose(log, true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}
