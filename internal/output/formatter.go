// Package output prints the human-facing console report.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/spike-report/internal/artifacts"
	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/ethpandaops/spike-report/internal/table"
	"github.com/fatih/color"
)

// Formatter provides clean, human-friendly output
type Formatter interface {
	PrintBanner(title string)
	PrintPhase(phase string)
	PrintProgress(message string, duration time.Duration)
	PrintSuccess(message string)
	PrintWarning(message string)
	PrintError(message string, err error)
	PrintHint(message string)
	PrintArtifacts()
	PrintPerformance(perf *metrics.Performance)
}

type formatter struct {
	writer  io.Writer
	verbose bool

	collector            artifacts.Collector
	artifactsFormatter   *table.ArtifactsFormatter
	performanceFormatter *table.PerformanceFormatter

	// Colors
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	blue   *color.Color
	gray   *color.Color
}

// NewFormatter creates a new output formatter
func NewFormatter(
	writer io.Writer,
	verbose bool,
	collector artifacts.Collector,
	artifactsFormatter *table.ArtifactsFormatter,
	performanceFormatter *table.PerformanceFormatter,
) Formatter {
	return &formatter{
		writer:               writer,
		verbose:              verbose,
		collector:            collector,
		artifactsFormatter:   artifactsFormatter,
		performanceFormatter: performanceFormatter,
		green:                color.New(color.FgGreen),
		red:                  color.New(color.FgRed),
		yellow:               color.New(color.FgYellow),
		blue:                 color.New(color.FgBlue),
		gray:                 color.New(color.FgHiBlack),
	}
}

// PrintBanner prints a bold title between rules
func (f *formatter) PrintBanner(title string) {
	rule := "============================================================"
	f.blue.Fprintf(f.writer, "%s\n%s\n%s\n", rule, title, rule)
}

// PrintPhase prints phase separator
func (f *formatter) PrintPhase(phase string) {
	f.blue.Fprintf(f.writer, "\n▸ %s\n", phase)
}

// PrintProgress prints progress with timing
func (f *formatter) PrintProgress(message string, duration time.Duration) {
	if duration > 0 && f.verbose {
		f.gray.Fprintf(f.writer, "%s (%s)\n", message, format.Duration(duration))
	} else {
		fmt.Fprintf(f.writer, "%s\n", message)
	}
}

// PrintSuccess prints green checkmark + message
func (f *formatter) PrintSuccess(message string) {
	f.green.Fprintf(f.writer, "✅ %s\n", message)
}

// PrintWarning prints a yellow notice
func (f *formatter) PrintWarning(message string) {
	f.yellow.Fprintf(f.writer, "⚠ %s\n", message)
}

// PrintError prints red X + message + error details
func (f *formatter) PrintError(message string, err error) {
	f.red.Fprintf(f.writer, "❌ %s", message)
	if err != nil {
		f.red.Fprintf(f.writer, ": %v", err)
	}
	fmt.Fprintf(f.writer, "\n")
}

// PrintHint prints a muted follow-up line
func (f *formatter) PrintHint(message string) {
	f.gray.Fprintf(f.writer, "%s\n", message)
}

// PrintArtifacts prints the table of rendered charts and its totals
func (f *formatter) PrintArtifacts() {
	fmt.Fprintln(f.writer, f.artifactsFormatter.Format(f.collector.GetArtifacts()))
	fmt.Fprintln(f.writer, f.artifactsFormatter.FormatSummary(f.collector.GetSummary()))
}

// PrintPerformance prints the derived statistics
func (f *formatter) PrintPerformance(perf *metrics.Performance) {
	fmt.Fprintln(f.writer, f.performanceFormatter.Format(perf))
}
