package chart

import (
	"image/color"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/report"
	"golang.org/x/image/font"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const distributionCaption = "50% of requests < P50 | 90% of requests < P90 | 95% of requests < P95 | 99% of requests < P99"

type distribution struct{ base }

// NewDistribution renders the full latency spread from min to max.
func NewDistribution(opts Options) Renderer {
	return &distribution{base{
		name:        NameDistribution,
		file:        FileDistribution,
		description: "Response time distribution",
		opts:        opts,
	}}
}

func (r *distribution) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	o := perf.Overall
	names := []string{"Min", "P50\n(Median)", "Avg", "P90", "P95", "P99", "Max"}
	values := []float64{o.Min, o.P50, o.Avg, o.P90, o.P95, o.P99, o.Max}

	p := newPlot(
		"Response Time Distribution During Spike Load\nComplete Statistical Analysis",
		"Statistical Measures",
		"Response Time (ms)",
	)
	horizontalGrid(p)

	if err := coloredBars(p, values, heatColors(len(values)), vg.Points(45)); err != nil {
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

	p.NominalX(names...)
	headroom(p, 1.12)

	c := r.opts.canvas(12, 6)
	dc := draw.New(c)

	captionStyle := p.Legend.TextStyle
	captionStyle.Font.Size = vg.Points(9)
	captionStyle.Font.Style = font.StyleItalic
	captionStyle.XAlign = text.XCenter
	captionStyle.YAlign = text.YBottom

	captionHeight := captionStyle.Height(distributionCaption) + vg.Points(12)
	dc.FillText(captionStyle, vg.Point{
		X: dc.Min.X + (dc.Max.X-dc.Min.X)/2,
		Y: dc.Min.Y + vg.Points(6),
	}, distributionCaption)

	p.Draw(draw.Crop(dc, 0, 0, captionHeight, 0))

	return writePNG(c, dir, r.file)
}

// heatColors returns n colors from light yellow to dark red.
func heatColors(n int) []color.Color {
	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlOrRd", n)
	if err != nil {
		return []color.Color{colorOrange}
	}

	return pal.Colors()
}
