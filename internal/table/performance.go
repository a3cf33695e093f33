package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// PerformanceFormatter formats the derived spike test statistics.
type PerformanceFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
	topN     int
}

// NewPerformanceFormatter creates a formatter listing the topN slowest
// endpoints.
func NewPerformanceFormatter(log logrus.FieldLogger, renderer Renderer, topN int) *PerformanceFormatter {
	return &PerformanceFormatter{
		log:      log.WithField("component", "table.performance_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
		topN:     topN,
	}
}

// Format renders the full performance summary.
func (f *PerformanceFormatter) Format(perf *metrics.Performance) string {
	if perf == nil {
		return "No performance data"
	}

	var b strings.Builder

	b.WriteString(f.section("Test Configuration"))
	b.WriteString(f.renderer.RenderToString([]string{"Setting", "Value"}, [][]string{
		{"Test Duration", fmt.Sprintf("%.1f seconds", perf.Overall.DurationS)},
		{"Max Virtual Users", format.Count(perf.Overall.VUsMax)},
		{"Total Requests", format.Count(perf.Overall.TotalRequests)},
		{"Average Throughput", format.Rate(perf.Overall.RequestsPerSec)},
	}))

	b.WriteString(f.section("Response Times"))
	b.WriteString(f.formatLatencies(perf.Overall))

	b.WriteString(f.section("Reliability"))
	b.WriteString(f.formatReliability(perf.Overall))

	b.WriteString(f.section(fmt.Sprintf("Endpoint Coverage (%d tested)", perf.EndpointCount())))
	b.WriteString(f.FormatTopEndpoints(perf))

	b.WriteString(f.section("Key Insights"))
	b.WriteString(f.formatInsights(perf))

	return b.String()
}

// FormatTopEndpoints renders the slowest endpoints ranked by P95.
func (f *PerformanceFormatter) FormatTopEndpoints(perf *metrics.Performance) string {
	top := perf.TopEndpoints(f.topN)
	if len(top) == 0 {
		return f.colors.Muted("No endpoint latency metrics found") + "\n"
	}

	rows := make([][]string, 0, len(top))
	for i, e := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			format.MillisPrecise(e.P95),
			format.MillisPrecise(e.P99),
		})
	}

	title := f.colors.Bold(fmt.Sprintf("Top %d Slowest Endpoints (P95)", len(top))) + "\n"

	return title + f.renderer.RenderToString(
		[]string{"#", "Endpoint", "P95", "P99"},
		rows,
		WithColumnAlignment(tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT),
	)
}

func (f *PerformanceFormatter) formatLatencies(o metrics.Overall) string {
	rows := [][]string{
		{"Minimum", format.MillisPrecise(o.Min)},
		{"P50 (Median)", format.MillisPrecise(o.P50)},
		{"Average", format.MillisPrecise(o.Avg)},
		{"P90", format.MillisPrecise(o.P90)},
		{"P95", format.MillisPrecise(o.P95)},
		{"P99", format.MillisPrecise(o.P99)},
		{"Maximum", format.MillisPrecise(o.Max)},
	}

	return f.renderer.RenderToString(
		[]string{"Measure", "Latency"},
		rows,
		WithColumnAlignment(tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT),
	)
}

func (f *PerformanceFormatter) formatReliability(o metrics.Overall) string {
	errorRate := f.colors.FormatErrorRate(o.ClampedErrorRate())
	if !o.ErrorRateInRange() {
		errorRate += " " + f.colors.Warning(fmt.Sprintf("(reported %g, clamped)", o.ErrorRate))
	}

	rows := [][]string{
		{"HTTP Error Rate", errorRate},
		{"HTTP Success Rate", f.colors.FormatSuccessRate(o.SuccessRate())},
		{"Checks Pass Rate", f.colors.FormatSuccessRate(o.ClampedChecksPassRate())},
		{"Total Checks", format.Count(o.ChecksTotal)},
		{"Checks Passed", format.Count(o.ChecksPassed)},
		{"Checks Failed", format.Count(o.ChecksFailed)},
	}

	return f.renderer.RenderToString([]string{"Metric", "Value"}, rows)
}

func (f *PerformanceFormatter) formatInsights(perf *metrics.Performance) string {
	o := perf.Overall

	lines := []string{
		f.colors.Bold("System performance under spike load"),
		fmt.Sprintf("  • Handled %s requests with %s success rate",
			format.Count(o.TotalRequests), format.Percent(o.SuccessRate())),
		fmt.Sprintf("  • Maintained %s average throughput", format.Rate(o.RequestsPerSec)),
		fmt.Sprintf("  • P95 response time: %s (95%% of requests completed this fast or faster)",
			format.MillisPrecise(o.P95)),
		fmt.Sprintf("  • P99 response time: %s (tail latency for the slowest 1%%)",
			format.MillisPrecise(o.P99)),
		"",
		f.colors.Bold("Reliability"),
		fmt.Sprintf("  • %s of functional checks passed", format.Percent(o.ClampedChecksPassRate())),
		fmt.Sprintf("  • HTTP error rate: %s", format.Percent(o.ClampedErrorRate())),
		fmt.Sprintf("  • Peak concurrency: %s virtual users", format.Count(o.VUsMax)),
		"",
		f.colors.Bold("Coverage"),
		fmt.Sprintf("  • %d endpoints measured individually", perf.EndpointCount()),
	}

	if top := perf.TopEndpoints(1); len(top) > 0 {
		lines = append(lines, fmt.Sprintf("  • Slowest endpoint: %s at %s P95",
			top[0].Name, format.MillisPrecise(top[0].P95)))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (f *PerformanceFormatter) section(title string) string {
	return "\n" + f.colors.Header("▸ "+title) + "\n\n"
}
