package actions

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ShowConfig(&buf, config.Default()))
	assert.Contains(t, buf.String(), "Current Configuration:")

	assert.ErrorIs(t, ShowConfig(&buf, nil), config.ErrInvalidConfig)
}

func TestReport_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0

	err := Report(context.Background(), logrus.New(), cfg, &bytes.Buffer{}, false, pipeline.ModeAll)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestReport_UnknownChart(t *testing.T) {
	cfg := config.Default()
	cfg.Charts = []string{"radar"}

	err := Report(context.Background(), logrus.New(), cfg, &bytes.Buffer{}, false, pipeline.ModeRender)
	assert.ErrorIs(t, err, chart.ErrUnknownChart)
}

func TestChartOptions(t *testing.T) {
	options := ChartOptions(config.Default())
	require.Len(t, options, len(chart.Names()))

	for i, opt := range options {
		assert.Equal(t, chart.Names()[i], opt.Name)
		assert.NotEmpty(t, opt.Description)
	}

	assert.Contains(t, options[0].Description, chart.FilePercentiles)
}

func TestExistingCharts(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, chart.FileCurve), []byte("png"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, chart.FileErrors), []byte("png"), 0o600))

	existing, err := ExistingCharts(cfg, []string{"curve", "percentiles"})
	require.NoError(t, err)
	assert.Equal(t, []string{chart.FileCurve}, existing)

	existing, err = ExistingCharts(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{chart.FileErrors, chart.FileCurve}, existing)

	_, err = ExistingCharts(cfg, []string{"radar"})
	assert.ErrorIs(t, err, chart.ErrUnknownChart)
}
