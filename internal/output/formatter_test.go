package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethpandaops/spike-report/internal/artifacts"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/ethpandaops/spike-report/internal/report"
	"github.com/ethpandaops/spike-report/internal/table"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(t *testing.T, verbose bool) (Formatter, artifacts.Collector, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	collector := artifacts.NewCollector(log)
	require.NoError(t, collector.Start(context.Background()))

	renderer := table.NewRenderer(log)
	buf := &bytes.Buffer{}

	f := NewFormatter(
		buf,
		verbose,
		collector,
		table.NewArtifactsFormatter(log, renderer),
		table.NewPerformanceFormatter(log, renderer, 5),
	)

	return f, collector, buf
}

func TestFormatter_StatusLines(t *testing.T) {
	f, _, buf := newTestFormatter(t, false)

	f.PrintSuccess("Generated: spike_response_times.png")
	f.PrintError("Failed to load spike test data", nil)
	f.PrintError("Invalid JSON format in spike_results.json", errors.New("unexpected EOF"))
	f.PrintHint("Make sure spike_results.json exists in the current directory")
	f.PrintProgress("Loaded", 2*time.Second)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "✅ Generated: spike_response_times.png", lines[0])
	assert.Equal(t, "❌ Failed to load spike test data", lines[1])
	assert.Equal(t, "❌ Invalid JSON format in spike_results.json: unexpected EOF", lines[2])
	assert.Equal(t, "Make sure spike_results.json exists in the current directory", lines[3])
	assert.Equal(t, "Loaded", lines[4], "timings are only shown when verbose")
}

func TestFormatter_VerboseProgress(t *testing.T) {
	f, _, buf := newTestFormatter(t, true)

	f.PrintProgress("Loaded", 1500*time.Millisecond)

	assert.Equal(t, "Loaded (1.5s)\n", buf.String())
}

func TestFormatter_PrintArtifacts(t *testing.T) {
	f, collector, buf := newTestFormatter(t, false)

	collector.Record(artifacts.Metric{
		Chart:     "percentiles",
		File:      "spike_response_times.png",
		Status:    artifacts.StatusGenerated,
		SizeBytes: 2048,
		Duration:  120 * time.Millisecond,
	})
	collector.Record(artifacts.Metric{
		Chart:  "endpoints",
		File:   "complete_endpoint_performance_comparison.png",
		Status: artifacts.StatusSkipped,
	})

	f.PrintArtifacts()

	out := buf.String()
	assert.Contains(t, out, "spike_response_times.png")
	assert.Contains(t, out, "complete_endpoint_performance_comparison.png")
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "skipped")
}

func TestFormatter_PrintPerformance(t *testing.T) {
	f, _, buf := newTestFormatter(t, false)

	doc, err := report.Parse([]byte(`{"metrics": {
		"http_reqs": {"values": {"count": 1234, "rate": 20.5}},
		"latency_ms_login": {"values": {"p(95)": 200, "p(99)": 250}}
	}}`))
	require.NoError(t, err)

	f.PrintPerformance(metrics.Extract(doc))

	out := buf.String()
	assert.Contains(t, out, "▸ Test Configuration")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "login")

	buf.Reset()
	f.PrintPerformance(nil)
	assert.Equal(t, "No performance data\n", buf.String())
}
