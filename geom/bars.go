// Package geom provides gonum/plot plotters not available in
// gonum.org/v1/plot/plotter: bars at arbitrary x positions and grid lines
// at minor ticks.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars draws one rectangle per data point, centred at X, reaching from
// zero (or the bottom of a log axis) up to Y.
//
// On a log x axis the bars are centred at X in log space.
type Bars struct {
	plotter.XYs

	// Width of a bar in data units, or in decades if LogX is set.
	Width float64

	// FillColor is the colour of the bars. Nil leaves them unfilled.
	FillColor color.Color

	// LineStyle is the outline. A nil Color suppresses the outline.
	LineStyle draw.LineStyle

	// LogY must be set if the y axis uses a log scale: bars then start at
	// the lower end of the axis instead of at zero.
	LogY bool

	// LogX must be set if the x axis uses a log scale. Bar edges are then
	// X/10^(Width/2) and X*10^(Width/2), which stay positive.
	LogX bool
}

var (
	_ plot.Plotter     = (*Bars)(nil)
	_ plot.DataRanger  = (*Bars)(nil)
	_ plot.Thumbnailer = (*Bars)(nil)
)

// NewBars copies the points of xys into new Bars of the given width.
func NewBars(xys plotter.XYer, width float64) (*Bars, error) {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	return &Bars{
		XYs:       data,
		Width:     width,
		FillColor: color.Gray{Y: 128},
		LineStyle: plotter.DefaultLineStyle,
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	base := 0.0
	if b.LogY {
		base = plt.Y.Min
	}
	y0 := trY(base)
	for _, xy := range b.XYs {
		lo, hi := b.span(xy.X)
		x0, x1 := trX(lo), trX(hi)
		y1 := trY(xy.Y)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}

		if b.FillColor != nil {
			c.FillPolygon(b.FillColor, c.ClipPolygonXY(pts))
		}
		if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
			outline := append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesXY(outline)...)
		}
	}
}

// DataRange implements the plot.DataRanger interface. The range covers
// the full width of the outermost bars and, on linear axes, zero.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = plotter.XYRange(b)
	xmin, _ = b.span(xmin)
	_, xmax = b.span(xmax)
	if !b.LogY {
		ymin = math.Min(ymin, 0)
		ymax = math.Max(ymax, 0)
	}
	return xmin, xmax, ymin, ymax
}

// span returns the left and right edge of the bar centred at x.
func (b *Bars) span(x float64) (lo, hi float64) {
	if b.LogX {
		f := math.Pow(10, b.Width/2)
		return x / f, x * f
	}
	return x - b.Width/2, x + b.Width/2
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	if b.FillColor != nil {
		c.FillPolygon(b.FillColor, c.ClipPolygonY(pts))
	}
	if b.LineStyle.Color != nil && b.LineStyle.Width > 0 {
		c.StrokeLines(b.LineStyle, c.ClipLinesY(append(pts, pts[0]))...)
	}
}
