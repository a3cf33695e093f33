// Package pipeline runs a report end to end: load the k6 summary, derive
// statistics, render charts and print the console summary.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethpandaops/spike-report/internal/artifacts"
	"github.com/ethpandaops/spike-report/internal/chart"
	"github.com/ethpandaops/spike-report/internal/config"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/ethpandaops/spike-report/internal/output"
	"github.com/ethpandaops/spike-report/internal/report"
	"github.com/ethpandaops/spike-report/internal/table"
	"github.com/sirupsen/logrus"
)

// Mode selects which parts of the report are produced.
type Mode int

const (
	// ModeAll renders charts and prints the summary.
	ModeAll Mode = iota
	// ModeRender renders charts only.
	ModeRender
	// ModeSummary prints the summary only.
	ModeSummary
)

func (m Mode) renders() bool    { return m == ModeAll || m == ModeRender }
func (m Mode) summarises() bool { return m == ModeAll || m == ModeSummary }

// Pipeline wires the report stages together.
type Pipeline struct {
	log       logrus.FieldLogger
	cfg       *config.Config
	collector artifacts.Collector
	extractor *metrics.Extractor
	out       output.Formatter
}

// New creates a pipeline writing console output to w.
func New(log logrus.FieldLogger, cfg *config.Config, w io.Writer, verbose bool) *Pipeline {
	renderer := table.NewRenderer(log)
	collector := artifacts.NewCollector(log)

	return &Pipeline{
		log:       log.WithField("component", "pipeline"),
		cfg:       cfg,
		collector: collector,
		extractor: metrics.NewExtractor(log, cfg.EndpointPrefix),
		out: output.NewFormatter(
			w,
			verbose,
			collector,
			table.NewArtifactsFormatter(log, renderer),
			table.NewPerformanceFormatter(log, renderer, cfg.TopEndpoints),
		),
	}
}

// Run executes the pipeline. Missing, malformed or empty input is reported
// on the console and ends the run with a nil error. Errors are returned
// only for unusable settings such as an unknown chart name or an output
// directory that cannot be created.
func (p *Pipeline) Run(ctx context.Context, mode Mode) error {
	var renderers []chart.Renderer

	if mode.renders() {
		var err error

		renderers, err = chart.Select(p.cfg.ChartOptions(), p.cfg.Charts)
		if err != nil {
			return err
		}
	}

	p.out.PrintProgress(fmt.Sprintf("🚀 Loading spike test results from %s...", p.cfg.Input), 0)

	doc, ok := p.load()
	if !ok {
		return nil
	}

	perf := p.extractor.Extract(doc)
	if perf == nil {
		p.out.PrintError("Failed to extract performance data", nil)

		return nil
	}

	if mode.renders() {
		if err := p.render(ctx, renderers, doc); err != nil {
			return err
		}
	}

	if mode.summarises() {
		p.out.PrintBanner("📊 SPIKE TEST PERFORMANCE SUMMARY")
		p.out.PrintPerformance(perf)
	}

	return nil
}

func (p *Pipeline) load() (*report.Document, bool) {
	doc, err := report.Load(p.cfg.Input)

	switch {
	case errors.Is(err, report.ErrNotFound):
		p.out.PrintError(fmt.Sprintf("Error: %s not found in %s", filepath.Base(p.cfg.Input), describeDir(p.cfg.Input)), nil)
	case errors.Is(err, report.ErrMalformed):
		p.out.PrintError(fmt.Sprintf("Error: Invalid JSON format in %s", filepath.Base(p.cfg.Input)), nil)
		p.log.WithError(err).Debug("parse failure")
	case err != nil:
		p.out.PrintError(fmt.Sprintf("Error: could not read %s", p.cfg.Input), err)
	case doc.Empty():
		p.log.WithField("input", p.cfg.Input).Debug("document has no keys")
	default:
		return doc, true
	}

	p.out.PrintError("Failed to load spike test data", nil)
	p.out.PrintHint(fmt.Sprintf("💡 Make sure %s exists in %s", filepath.Base(p.cfg.Input), describeDir(p.cfg.Input)))

	return nil, false
}

func (p *Pipeline) render(ctx context.Context, renderers []chart.Renderer, doc *report.Document) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", p.cfg.OutputDir, err)
	}

	if err := p.collector.Start(ctx); err != nil {
		return fmt.Errorf("starting artifact collector: %w", err)
	}
	defer func() {
		if err := p.collector.Stop(); err != nil {
			p.log.WithError(err).Warn("failed to stop artifact collector")
		}
	}()

	p.out.PrintPhase("📊 Generating spike test performance graphs...")

	results := chart.Run(ctx, p.log, renderers, doc, p.cfg.OutputDir, p.cfg.Workers)
	for _, res := range results {
		metric := artifacts.Metric{
			Chart:     res.Renderer.Name(),
			File:      res.Renderer.Filename(),
			SizeBytes: res.Size,
			Duration:  res.Duration,
		}

		switch {
		case res.Err == nil:
			metric.Status = artifacts.StatusGenerated
			p.out.PrintSuccess("Generated: " + res.Renderer.Filename())
		case errors.Is(res.Err, chart.ErrNoData):
			metric.Status = artifacts.StatusSkipped
			p.out.PrintWarning("Skipped: " + res.Renderer.Filename() + " (no data)")
		default:
			metric.Status = artifacts.StatusFailed
			metric.Error = res.Err.Error()
			p.out.PrintError("Failed: "+res.Renderer.Filename(), res.Err)
			p.log.WithError(res.Err).WithField("chart", res.Renderer.Name()).Warn("chart failed")
		}

		p.collector.Record(metric)
	}

	p.out.PrintArtifacts()

	return nil
}

func describeDir(path string) string {
	if dir := filepath.Dir(path); dir != "." {
		return dir
	}

	return "the current directory"
}
