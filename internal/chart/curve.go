package chart

import (
	"fmt"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const curveTitle = "Response Time Percentile Curve During Spike Load"

type curve struct{ base }

// NewCurve renders latency against percentile rank with the P95-P99 tail
// shaded.
func NewCurve(opts Options) Renderer {
	return &curve{base{
		name:        NameCurve,
		file:        FileCurve,
		description: "Percentile curve",
		opts:        opts,
	}}
}

func (r *curve) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	o := perf.Overall
	ranks := []float64{50, 90, 95, 99}
	values := []float64{o.P50, o.P90, o.P95, o.P99}

	p := newPlot(curveTitle, "Percentile", "Response Time (ms)")
	p.Add(plotter.NewGrid())

	zone, err := plotter.NewPolygon(plotter.XYs{
		{X: 45, Y: o.P95},
		{X: 100, Y: o.P95},
		{X: 100, Y: o.P99},
		{X: 45, Y: o.P99},
	})
	if err != nil {
		return "", fmt.Errorf("creating tail zone: %w", err)
	}
	zone.Color = colorTailZone
	zone.LineStyle.Width = 0

	xys := make(plotter.XYs, len(ranks))
	labels := make([]string, len(ranks))
	ticks := make(plot.ConstantTicks, len(ranks))
	for i := range ranks {
		xys[i] = plotter.XY{X: ranks[i], Y: values[i]}
		labels[i] = fmt.Sprintf("P%.0f: %s", ranks[i], format.Millis(values[i]))
		ticks[i] = plot.Tick{Value: ranks[i], Label: fmt.Sprintf("P%.0f", ranks[i])}
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return "", fmt.Errorf("creating percentile line: %w", err)
	}
	line.Color = colorRed
	line.Width = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Color = colorDarkRed
	points.GlyphStyle.Radius = vg.Points(5)

	p.Add(zone, line, points)
	p.Legend.Add("Tail Latency Zone (P95-P99)", zone)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := valueLabels(p, xys, labels, vg.Point{Y: vg.Points(8)}, nil); err != nil {
		return "", err
	}

	p.X.Min = 45
	p.X.Max = 100
	p.X.Tick.Marker = ticks
	headroom(p, 1.15)

	return r.opts.savePlot(p, 10, 6, dir, r.file)
}
