package chart

import (
	"fmt"
	"image/color"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/report"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type percentiles struct{ base }

// NewPercentiles renders P50/P90/P95/P99 as four bars.
func NewPercentiles(opts Options) Renderer {
	return &percentiles{base{
		name:        NamePercentiles,
		file:        FilePercentiles,
		description: "Response time percentiles",
		opts:        opts,
	}}
}

func (r *percentiles) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	o := perf.Overall
	values := []float64{o.P50, o.P90, o.P95, o.P99}

	p := newPlot(
		fmt.Sprintf("Response Time Percentiles During Spike Load\nTotal Requests: %s | Avg Throughput: %.1f req/s",
			format.Count(o.TotalRequests), o.RequestsPerSec),
		"Response Time Percentiles",
		"Response Time (ms)",
	)
	horizontalGrid(p)

	colors := []color.Color{colorGreen, colorBlue, colorOrange, colorRed}
	if err := coloredBars(p, values, colors, vg.Points(70)); err != nil {
		return "", err
	}

	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		labels[i] = format.Millis(v)
	}

	if err := valueLabels(p, xys, labels, vg.Point{Y: vg.Points(3)}, nil); err != nil {
		return "", err
	}

	p.NominalX("P50\n(Median)", "P90", "P95", "P99")
	headroom(p, 1.15)

	return r.opts.savePlot(p, 10, 6, dir, r.file)
}
