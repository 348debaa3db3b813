package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// strokeColors maps the recognized color names to RGBA values.
var strokeColors = map[string]color.RGBA{
	"blue":   {R: 0, G: 0, B: 205, A: 255},
	"red":    {R: 220, G: 20, B: 60, A: 255},
	"green":  {R: 0, G: 128, B: 0, A: 255},
	"orange": {R: 255, G: 140, B: 0, A: 255},
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
}

func strokeColor(name string) color.RGBA {
	if c, ok := strokeColors[name]; ok {
		return c
	}
	return strokeColors[DefaultColor]
}

// Export draws the series and saves it to filename. The image format
// follows the file extension (png, svg or pdf); anything else falls
// back to png.
func Export(s Series, opts Options, filename string) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series length mismatch: %d x-values, %d y-values", len(s.X), len(s.Y))
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}

	switch opts.Type {
	case Scatter:
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = strokeColor(opts.Color)
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(opts.Label, sc)
	default:
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		ln.LineStyle.Width = vg.Points(1.5)
		ln.LineStyle.Color = strokeColor(opts.Color)
		p.Add(ln)
		p.Legend.Add(opts.Label, ln)
	}

	// Zero reference line across the span.
	if n := len(s.X); n > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: s.X[0], Y: 0},
			{X: s.X[n-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 128}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zero)
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
