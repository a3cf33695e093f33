package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Shared palette. drawing.Color satisfies color.Color so the same values
// feed both gonum and go-chart renderers.
var (
	colorGreen     = drawing.ColorFromHex("2E8B57")
	colorBlue      = drawing.ColorFromHex("3498db")
	colorOrange    = drawing.ColorFromHex("e67e22")
	colorRed       = drawing.ColorFromHex("e74c3c")
	colorDarkRed   = drawing.ColorFromHex("c0392b")
	colorPurple    = drawing.ColorFromHex("9b59b6")
	colorSuccess   = drawing.ColorFromHex("2ecc71")
	colorTailZone  = colorRed.WithAlpha(0x33)
	colorGridLines = drawing.ColorFromHex("c8c8c8")
)

func (o Options) size(widthIn, heightIn float64) (vg.Length, vg.Length) {
	scale := o.Scale
	if scale <= 0 {
		scale = 1
	}

	return vg.Length(widthIn*scale) * vg.Inch, vg.Length(heightIn*scale) * vg.Inch
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return DefaultOptions().DPI
	}

	return o.DPI
}

func (o Options) canvas(widthIn, heightIn float64) *vgimg.Canvas {
	w, h := o.size(widthIn, heightIn)

	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(o.dpi()))
}

// newPlot creates a plot with the report's common styling.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	return p
}

// horizontalGrid adds dashed horizontal grid lines.
func horizontalGrid(p *plot.Plot) {
	g := plotter.NewGrid()
	g.Vertical.Width = 0
	g.Horizontal.Color = colorGridLines
	g.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(g)
}

// coloredBars adds one bar per value at x = 0..n-1, each in its own color.
func coloredBars(p *plot.Plot, values []float64, colors []color.Color, width vg.Length) error {
	for i, v := range values {
		bc, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return fmt.Errorf("creating bar %d: %w", i, err)
		}

		bc.XMin = float64(i)
		bc.Color = colors[i%len(colors)]
		bc.LineStyle.Width = vg.Points(1.5)
		p.Add(bc)
	}

	return nil
}

// valueLabels places labels centered above the points in xys. Nothing is
// added when xys is empty so the axis ranges stay untouched.
func valueLabels(p *plot.Plot, xys plotter.XYs, labels []string, offset vg.Point, c color.Color) error {
	if len(xys) == 0 {
		return nil
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("creating labels: %w", err)
	}

	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
		l.TextStyle[i].Font.Size = vg.Points(10)
		if c != nil {
			l.TextStyle[i].Color = c
		}
	}

	l.Offset = offset
	p.Add(l)

	return nil
}

// headroom grows the y axis so labels above the tallest bar stay visible.
func headroom(p *plot.Plot, factor float64) {
	p.Y.Min = 0
	if p.Y.Max <= 0 {
		p.Y.Max = 1

		return
	}

	p.Y.Max *= factor
}

// savePlot rasterises p at the configured DPI and writes it as PNG.
func (o Options) savePlot(p *plot.Plot, widthIn, heightIn float64, dir, file string) (string, error) {
	c := o.canvas(widthIn, heightIn)
	p.Draw(draw.New(c))

	return writePNG(c, dir, file)
}

func writePNG(c *vgimg.Canvas, dir, file string) (string, error) {
	return writeFile(dir, file, func(w io.Writer) error {
		_, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w)

		return err
	})
}

// writeImage PNG-encodes an already rasterised image.
func writeImage(img image.Image, dir, file string) (string, error) {
	return writeFile(dir, file, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeFile(dir, file string, encode func(io.Writer) error) (path string, err error) {
	path = filepath.Join(dir, file)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := encode(f); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	return path, nil
}
