package table

import (
	"fmt"

	"github.com/ethpandaops/spike-report/internal/artifacts"
	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/sirupsen/logrus"
)

// ArtifactsFormatter formats chart render results as a table.
type ArtifactsFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
}

// NewArtifactsFormatter creates a new artifacts table formatter.
func NewArtifactsFormatter(log logrus.FieldLogger, renderer Renderer) *ArtifactsFormatter {
	return &ArtifactsFormatter{
		log:      log.WithField("component", "table.artifacts_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts artifact metrics into a formatted table string.
func (f *ArtifactsFormatter) Format(metrics []artifacts.Metric) string {
	if len(metrics) == 0 {
		return "No charts rendered"
	}

	headers := []string{"Chart", "File", "Status", "Size", "Duration", "Details"}
	rows := make([][]string, 0, len(metrics))

	for _, m := range metrics {
		var size, details string

		switch m.Status {
		case artifacts.StatusGenerated:
			size = format.Bytes(m.SizeBytes)
		case artifacts.StatusSkipped:
			details = f.colors.Muted("no data")
		case artifacts.StatusFailed:
			errMsg := m.Error
			if len(errMsg) > 50 {
				errMsg = errMsg[:47] + "..."
			}

			details = f.colors.Failure(errMsg)
		}

		rows = append(rows, []string{
			m.Chart,
			m.File,
			f.colors.FormatStatus(m.Status),
			size,
			format.Duration(m.Duration),
			details,
		})
	}

	return "\n" + f.colors.Header("▸ Charts") + "\n\n" + f.renderer.RenderToString(headers, rows)
}

// FormatSummary renders the aggregate counts for a run.
func (f *ArtifactsFormatter) FormatSummary(summary artifacts.SummaryMetric) string {
	generated := fmt.Sprintf("%d/%d", summary.Generated, summary.Total)
	if summary.Generated == summary.Total {
		generated = f.colors.Success(generated)
	} else {
		generated = f.colors.Warning(generated)
	}

	failed := fmt.Sprintf("%d", summary.Failed)
	if summary.Failed > 0 {
		failed = f.colors.Failure(failed)
	}

	rows := [][]string{
		{"Generated", generated},
		{"Skipped", fmt.Sprintf("%d", summary.Skipped)},
		{"Failed", failed},
		{"Total Size", format.Bytes(summary.TotalSize)},
		{"Total Duration", format.Duration(summary.TotalDuration)},
	}

	return f.renderer.RenderToString([]string{"Metric", "Value"}, rows)
}
