package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ethpandaops/spike-report/internal/format"
	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/ethpandaops/spike-report/internal/report"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type reliability struct{ base }

// NewReliability renders the success/error split next to HTTP success vs
// check pass rates.
func NewReliability(opts Options) Renderer {
	return &reliability{base{
		name:        NameErrors,
		file:        FileErrors,
		description: "Error rate and reliability",
		opts:        opts,
	}}
}

func (r *reliability) Render(doc *report.Document, dir string) (string, error) {
	perf, err := r.performance(doc)
	if err != nil {
		return "", err
	}

	o := perf.Overall
	dpi := float64(r.opts.dpi())
	w, h := r.pixels(7, 6)

	pie, err := renderGoChart(r.pie(o, w, h, dpi))
	if err != nil {
		return "", fmt.Errorf("rendering success pie: %w", err)
	}

	bars, err := renderGoChart(r.bars(o, w, h, dpi))
	if err != nil {
		return "", fmt.Errorf("rendering reliability bars: %w", err)
	}

	footer := fmt.Sprintf("Total Checks: %s | Passed: %s | Failed: %s",
		format.Count(o.ChecksTotal), format.Count(o.ChecksPassed), format.Count(o.ChecksFailed))

	return writeImage(sideBySide(pie, bars, footer), dir, r.file)
}

func (r *reliability) pixels(widthIn, heightIn float64) (int, int) {
	scale := r.opts.Scale
	if scale <= 0 {
		scale = 1
	}

	dpi := float64(r.opts.dpi())

	return int(widthIn * scale * dpi), int(heightIn * scale * dpi)
}

func (r *reliability) pie(o metrics.Overall, w, h int, dpi float64) gochart.PieChart {
	success := o.SuccessRate() * 100
	errorsPct := o.ClampedErrorRate() * 100

	parts := []gochart.Value{
		{
			Value: success,
			Label: fmt.Sprintf("Success %.2f%%", success),
			Style: gochart.Style{FillColor: colorSuccess, StrokeColor: drawing.ColorWhite},
		},
		{
			Value: errorsPct,
			Label: fmt.Sprintf("Errors %.2f%%", errorsPct),
			Style: gochart.Style{FillColor: colorRed, StrokeColor: drawing.ColorWhite},
		},
	}

	// Zero-width slices only add an overlapping label.
	values := make([]gochart.Value, 0, len(parts))
	for _, s := range parts {
		if s.Value > 0 {
			values = append(values, s)
		}
	}

	return gochart.PieChart{
		Title:  "HTTP Request Success vs Error Rate",
		Width:  w,
		Height: h,
		DPI:    dpi,
		Values: values,
	}
}

func (r *reliability) bars(o metrics.Overall, w, h int, dpi float64) gochart.BarChart {
	success := o.SuccessRate() * 100
	checks := o.ClampedChecksPassRate() * 100

	return gochart.BarChart{
		Title:      "System Reliability Metrics",
		Width:      w,
		Height:     h,
		DPI:        dpi,
		BarWidth:   w / 4,
		BarSpacing: w / 8,
		Background: gochart.Style{Padding: gochart.Box{Top: h / 8, Left: w / 20, Right: w / 20}},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 105},
		},
		Bars: []gochart.Value{
			{
				Value: success,
				Label: fmt.Sprintf("HTTP Success %.2f%%", success),
				Style: gochart.Style{FillColor: colorSuccess, StrokeColor: drawing.ColorBlack, StrokeWidth: 1.5},
			},
			{
				Value: checks,
				Label: fmt.Sprintf("Checks Passed %.2f%%", checks),
				Style: gochart.Style{FillColor: colorBlue, StrokeColor: drawing.ColorBlack, StrokeWidth: 1.5},
			},
		},
	}
}

type goChartRenderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

func renderGoChart(c goChartRenderable) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}

	return png.Decode(&buf)
}

// sideBySide composes left and right horizontally on a white background
// and writes footer centered underneath.
func sideBySide(left, right image.Image, footer string) image.Image {
	face := basicfont.Face7x13
	footerHeight := face.Metrics().Height.Ceil() * 3

	lb, rb := left.Bounds(), right.Bounds()
	height := max(lb.Dy(), rb.Dy())
	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height+footerHeight))

	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Over)

	d := &font.Drawer{Dst: canvas, Src: image.NewUniform(color.Black), Face: face}
	textWidth := d.MeasureString(footer).Ceil()
	d.Dot = fixed.P((canvas.Bounds().Dx()-textWidth)/2, height+footerHeight/2+face.Metrics().Ascent.Ceil()/2)
	d.DrawString(footer)

	return canvas
}
