package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"metrics": {
		"http_req_duration": {"values": {"med": 120, "p(90)": 300, "p(95)": 450, "p(99)": 900, "avg": 180, "min": 5, "max": 2000}},
		"http_reqs": {"values": {"count": 10000, "rate": 55.5}},
		"http_req_failed": {"values": {"rate": 0.01}},
		"vus": {"values": {"value": 1, "max": 500}},
		"checks": {"values": {"passes": 95, "fails": 5, "count": 100, "rate": 0.95}},
		"latency_ms_login": {"values": {"p(95)": 200, "p(99)": 250}},
		"latency_ms_checkout": {"values": {"p(95)": 500, "p(99)": 800}}
	},
	"state": {"testRunDurationMs": 60000}
}`

var allFiles = []string{
	chart.FilePercentiles,
	chart.FileEndpoints,
	chart.FileErrors,
	chart.FileCapacity,
	chart.FileDistribution,
	chart.FileCurve,
}

func setup(t *testing.T, input string) (*config.Config, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "spike_results.json")
	cfg.OutputDir = filepath.Join(dir, "charts")
	cfg.DPI = 72
	cfg.Workers = 2

	if input != "" {
		require.NoError(t, os.WriteFile(cfg.Input, []byte(input), 0o600))
	}

	return cfg, &bytes.Buffer{}
}

func run(t *testing.T, cfg *config.Config, buf *bytes.Buffer, mode Mode) error {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return New(log, cfg, buf, false).Run(context.Background(), mode)
}

func TestRun_All(t *testing.T) {
	cfg, buf := setup(t, fixture)

	require.NoError(t, run(t, cfg, buf, ModeAll))

	out := buf.String()
	for _, file := range allFiles {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, file))
		assert.Contains(t, out, "✅ Generated: "+file)
	}

	assert.Contains(t, out, "SPIKE TEST PERFORMANCE SUMMARY")
	assert.Contains(t, out, "Top 2 Slowest Endpoints (P95)")
}

func TestRun_RenderSelection(t *testing.T) {
	cfg, buf := setup(t, fixture)
	cfg.Charts = []string{"curve"}

	require.NoError(t, run(t, cfg, buf, ModeRender))

	assert.FileExists(t, filepath.Join(cfg.OutputDir, chart.FileCurve))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, chart.FilePercentiles))
	assert.NotContains(t, buf.String(), "SPIKE TEST PERFORMANCE SUMMARY")
}

func TestRun_SummaryOnly(t *testing.T) {
	cfg, buf := setup(t, fixture)

	require.NoError(t, run(t, cfg, buf, ModeSummary))

	assert.NoDirExists(t, cfg.OutputDir)
	assert.Contains(t, buf.String(), "▸ Key Insights")
}

func TestRun_SkipsEndpointsWithoutData(t *testing.T) {
	cfg, buf := setup(t, `{"metrics": {"http_req_duration": {"values": {"p(95)": 10}}}}`)

	require.NoError(t, run(t, cfg, buf, ModeRender))

	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, chart.FileEndpoints))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, chart.FilePercentiles))
	assert.Contains(t, buf.String(), "Skipped: "+chart.FileEndpoints)
}

func TestRun_GracefulInputFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "missing file", input: "", want: "Error: spike_results.json not found in"},
		{name: "malformed json", input: `{"metrics": `, want: "Error: Invalid JSON format in spike_results.json"},
		{name: "empty document", input: `{}`, want: "Failed to load spike test data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, buf := setup(t, tt.input)

			require.NoError(t, run(t, cfg, buf, ModeAll))

			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Make sure spike_results.json exists")
			assert.NotContains(t, out, "Generated:")
			assert.NoDirExists(t, cfg.OutputDir)
		})
	}
}

func TestRun_UnknownChart(t *testing.T) {
	cfg, buf := setup(t, fixture)
	cfg.Charts = []string{"heatmap"}

	err := run(t, cfg, buf, ModeAll)
	require.ErrorIs(t, err, chart.ErrUnknownChart)
	assert.Empty(t, buf.String())
}

func TestDescribeDir(t *testing.T) {
	assert.Equal(t, "the current directory", describeDir("spike_results.json"))
	assert.Equal(t, "runs", describeDir("runs/spike_results.json"))
}
