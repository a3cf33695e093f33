package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

type endpoints struct{ base }

// NewEndpoints renders paired P95/P99 bars for every endpoint, slowest first.
func NewEndpoints(opts Options) Renderer {
	return &endpoints{base{
		name:        NameEndpoints,
		file:        FileEndpoints,
		description: "P95/P99 per endpoint",
		opts:        opts,
	}}
}

func (r *endpoints) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	ranked := perf.RankedEndpoints()
	if len(ranked) == 0 {
		return "", ErrNoData
	}

	var (
		names = make([]string, len(ranked))
		p95   = make(plotter.Values, len(ranked))
		p99   = make(plotter.Values, len(ranked))
	)

	for i, e := range ranked {
		names[i] = strings.ReplaceAll(e.Name, "_", "\n")
		p95[i] = e.P95
		p99[i] = e.P99
	}

	p := newPlot(
		fmt.Sprintf("Complete Endpoint Performance Under Spike Load\nAll %d Endpoints Tested", len(ranked)),
		"API Endpoints",
		"Response Time (ms)",
	)
	horizontalGrid(p)

	// Narrow the bars as the endpoint count grows so pairs never overlap.
	width := vg.Points(math.Min(18, 350/float64(len(ranked))))

	bars95, err := plotter.NewBarChart(p95, width)
	if err != nil {
		return "", fmt.Errorf("creating P95 bars: %w", err)
	}
	bars95.Color = colorBlue
	bars95.Offset = -width / 2

	bars99, err := plotter.NewBarChart(p99, width)
	if err != nil {
		return "", fmt.Errorf("creating P99 bars: %w", err)
	}
	bars99.Color = colorRed
	bars99.Offset = width / 2

	p.Add(bars95, bars99)
	p.Legend.Add("P95 (95th percentile)", bars95)
	p.Legend.Add("P99 (99th percentile)", bars99)
	p.Legend.Top = true

	if err := r.labelAbove(p, p95, -width/2, bars95.Color); err != nil {
		return "", err
	}
	if err := r.labelAbove(p, p99, width/2, bars99.Color); err != nil {
		return "", err
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(9)
	headroom(p, 1.12)

	return r.opts.savePlot(p, 16, 8, dir, r.file)
}

// labelAbove labels only bars taller than the threshold to keep dense
// charts readable.
func (r *endpoints) labelAbove(p *plot.Plot, values plotter.Values, dx vg.Length, c color.Color) error {
	var (
		xys    plotter.XYs
		labels []string
	)

	for i, v := range values {
		if v <= r.opts.LabelThreshold {
			continue
		}

		xys = append(xys, plotter.XY{X: float64(i), Y: v})
		labels = append(labels, format.Count(v))
	}

	return valueLabels(p, xys, labels, vg.Point{X: dx, Y: vg.Points(2)}, c)
}
