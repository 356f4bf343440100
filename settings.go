package quickplot

import (
	"fmt"

	"github.com/vdobler/quickplot/internal/argcheck"
)

// Style is the render configuration of a surface. It is passed
// explicitly to every render call; there is no package level state.
type Style struct {
	// Width and Height of the canvas in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// DPI is the resolution of raster output.
	DPI int `mapstructure:"dpi"`

	// MathText renders all text of the surface through the LaTeX text
	// handler, so labels may contain math like "$\alpha^2$". It is off by
	// default: that handler rejects plain labels containing "_" or "%".
	MathText bool `mapstructure:"math_text"`

	// SciThreshold controls scientific tick labels on linear axes. With
	// the order of magnitude m of the axis extremes, labels are plain for
	// -SciThreshold <= m < SciThreshold and scaled by 10^m otherwise. Zero
	// thus always uses scientific labels, a negative value never does.
	SciThreshold int `mapstructure:"sci_threshold"`

	// MinorTicks is the number of minor intervals per major interval on
	// linear axes. Zero keeps the minor ticks of the default ticker.
	MinorTicks int `mapstructure:"minor_ticks"`

	Theme Theme `mapstructure:"theme"`
}

// DefaultStyle returns a 4in x 3in, 300 DPI style with scientific tick
// labels and five minor intervals.
//
// Math text is opt-in: DefaultStyle renders labels as plain text, so
// set MathText to typeset labels like "$\alpha^2$" with LaTeX.
func DefaultStyle() Style {
	return Style{
		Width:        4,
		Height:       3,
		DPI:          300,
		MathText:     false,
		SciThreshold: 0,
		MinorTicks:   5,
		Theme:        DefaultTheme.Copy(),
	}
}

// Validate checks that the canvas size, resolution and minor tick count
// are usable.
func (s Style) Validate() error {
	if !(s.Width > 0) {
		return argcheck.New("style.width", "a positive number of inches", fmt.Sprint(s.Width))
	}
	if !(s.Height > 0) {
		return argcheck.New("style.height", "a positive number of inches", fmt.Sprint(s.Height))
	}
	if s.DPI <= 0 {
		return argcheck.New("style.dpi", "a positive resolution", fmt.Sprint(s.DPI))
	}
	if s.MinorTicks < 0 {
		return argcheck.New("style.minor_ticks", "a non-negative count", fmt.Sprint(s.MinorTicks))
	}
	return nil
}
