package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MinorGrid draws grid lines at the minor ticks of both axes. It
// complements plotter.Grid which only draws at major ticks.
type MinorGrid struct {
	// Vertical and Horizontal are the styles of the lines at the x and y
	// minor ticks. A nil Color suppresses the respective lines.
	Vertical, Horizontal draw.LineStyle
}

var _ plot.Plotter = (*MinorGrid)(nil)

// NewMinorGrid returns a MinorGrid with thin, light dotted lines.
func NewMinorGrid() *MinorGrid {
	sty := draw.LineStyle{
		Color:  color.Gray{Y: 225},
		Width:  vg.Points(0.25),
		Dashes: []vg.Length{vg.Points(1), vg.Points(1)},
	}
	return &MinorGrid{Vertical: sty, Horizontal: sty}
}

// Plot implements the plot.Plotter interface.
func (g *MinorGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	if g.Vertical.Color != nil {
		for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
			if !tk.IsMinor() || tk.Value < plt.X.Min || tk.Value > plt.X.Max {
				continue
			}
			x := trX(tk.Value)
			c.StrokeLine2(g.Vertical, x, c.Min.Y, x, c.Max.Y)
		}
	}

	if g.Horizontal.Color != nil {
		for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
			if !tk.IsMinor() || tk.Value < plt.Y.Min || tk.Value > plt.Y.Max {
				continue
			}
			y := trY(tk.Value)
			c.StrokeLine2(g.Horizontal, c.Min.X, y, c.Max.X, y)
		}
	}
}
