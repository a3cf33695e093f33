package chart

import (
	"fmt"
	"image/color"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type capacity struct{ base }

// NewCapacity renders throughput, latency and concurrency as a 2x2 grid.
func NewCapacity(opts Options) Renderer {
	return &capacity{base{
		name:        NameCapacity,
		file:        FileCapacity,
		description: "System capacity overview",
		opts:        opts,
	}}
}

type capacityPanel struct {
	title string
	label string
	unit  string
	value float64
	color color.Color
}

func (r *capacity) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	o := perf.Overall
	panels := []capacityPanel{
		{"Request Throughput", "Throughput", "req/s", o.RequestsPerSec, colorGreen},
		{"Average Response Time", "Avg Response Time", "ms", o.Avg, colorBlue},
		{"95th Percentile Response Time", "P95 Response Time", "ms", o.P95, colorOrange},
		{"Peak Concurrent Users", "Max VUs", "users", o.VUsMax, colorPurple},
	}

	const rows, cols = 2, 2

	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
	}

	for i, panel := range panels {
		p, err := r.panel(panel)
		if err != nil {
			return "", err
		}

		plots[i/cols][i%cols] = p
	}

	c := r.opts.canvas(14, 10)
	dc := draw.New(c)

	header := fmt.Sprintf("System Capacity Analysis During Spike Test\nDuration: %.1fs | Total Requests: %s",
		o.DurationS, format.Count(o.TotalRequests))

	titleStyle := plot.New().Title.TextStyle
	titleStyle.Font.Size = vg.Points(16)
	titleStyle.XAlign = text.XCenter
	titleStyle.YAlign = text.YTop

	headerHeight := titleStyle.Height(header) + vg.Points(24)
	dc.FillText(titleStyle, vg.Point{
		X: dc.Min.X + (dc.Max.X-dc.Min.X)/2,
		Y: dc.Max.Y - vg.Points(12),
	}, header)

	grid := draw.Crop(dc, 0, 0, 0, -headerHeight)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
		PadLeft:   vg.Points(12),
		PadRight:  vg.Points(12),
		PadBottom: vg.Points(12),
	}

	canvases := plot.Align(plots, tiles, grid)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	return writePNG(c, dir, r.file)
}

func (r *capacity) panel(cp capacityPanel) (*plot.Plot, error) {
	p := newPlot(cp.title, "", cp.unit)
	p.Title.TextStyle.Font.Size = vg.Points(12)
	horizontalGrid(p)

	if err := coloredBars(p, []float64{cp.value}, []color.Color{cp.color}, vg.Points(90)); err != nil {
		return nil, err
	}

	err := valueLabels(p,
		plotter.XYs{{X: 0, Y: cp.value}},
		[]string{fmt.Sprintf("%.1f %s", cp.value, cp.unit)},
		vg.Point{Y: vg.Points(3)},
		nil,
	)
	if err != nil {
		return nil, err
	}

	p.NominalX(cp.label)
	headroom(p, 1.2)

	return p, nil
}
