package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/ethpandaops/spike-report/internal/interactive"
	"github.com/ethpandaops/spike-report/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// Report runs the pipeline in the given mode.
func Report(ctx context.Context, log logrus.FieldLogger, cfg *config.Config, w io.Writer, verbose bool, mode pipeline.Mode) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := pipeline.New(log, cfg, w, verbose).Run(ctx, mode); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	return nil
}

// ChartOptions lists every chart for the interactive picker.
func ChartOptions(cfg *config.Config) []interactive.ChartOption {
	renderers := chart.All(cfg.ChartOptions())

	options := make([]interactive.ChartOption, 0, len(renderers))
	for _, r := range renderers {
		options = append(options, interactive.ChartOption{
			Name:        r.Name(),
			Description: fmt.Sprintf("%s (%s)", r.Description(), r.Filename()),
		})
	}

	return options
}

// ExistingCharts returns the files in the output directory that rendering
// names would overwrite. An empty names slice means every chart.
func ExistingCharts(cfg *config.Config, names []string) ([]string, error) {
	renderers, err := chart.Select(cfg.ChartOptions(), names)
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, r := range renderers {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, r.Filename())); err == nil {
			existing = append(existing, r.Filename())
		}
	}

	return existing, nil
}
