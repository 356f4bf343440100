package quickplot

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// SciTicks wraps a tick marker and rewrites its labels in scientific
// notation: every label shows the mantissa v/10^e for the common exponent
// e of the axis. The exponent itself is not part of the tick labels; the
// surface appends it to the axis label.
type SciTicks struct {
	// Marker produces the major ticks. Nil means plot.DefaultTicks.
	Marker plot.Ticker

	// Threshold is the exponent threshold, see Style.SciThreshold.
	Threshold int

	// Minor is the number of minor intervals per major interval. If
	// positive, the minor ticks of Marker are replaced.
	Minor int
}

var _ plot.Ticker = SciTicks{}

// Ticks implements the plot.Ticker interface.
func (t SciTicks) Ticks(min, max float64) []plot.Tick {
	marker := t.Marker
	if marker == nil {
		marker = plot.DefaultTicks{}
	}
	ticks := append([]plot.Tick(nil), marker.Ticks(min, max)...)
	if t.Minor > 0 {
		ticks = subdivide(ticks, t.Minor, min, max)
	}

	e, ok := t.Exponent(min, max)
	if !ok {
		return ticks
	}
	scale := math.Pow10(e)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value/scale, 'g', 6, 64)
	}
	return ticks
}

// Exponent returns the common exponent of an axis spanning [min, max] and
// whether labels are to be scaled by it. An exponent of zero never scales.
func (t SciTicks) Exponent(min, max float64) (int, bool) {
	if t.Threshold < 0 {
		return 0, false
	}
	m := math.Max(math.Abs(min), math.Abs(max))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, false
	}
	e := int(math.Floor(math.Log10(m)))
	if -t.Threshold <= e && e < t.Threshold {
		return 0, false
	}
	return e, e != 0
}

// subdivide drops the minor ticks of ticks and places n-1 new ones
// after each major tick and before the first one, within [min, max].
func subdivide(ticks []plot.Tick, n int, min, max float64) []plot.Tick {
	var major []plot.Tick
	for _, tk := range ticks {
		if !tk.IsMinor() {
			major = append(major, tk)
		}
	}
	if len(major) < 2 {
		return ticks
	}

	step := (major[1].Value - major[0].Value) / float64(n)
	out := make([]plot.Tick, 0, len(major)*n)
	out = append(out, major...)

	first := major[0].Value
	for k := 1; k < n && first-float64(k)*step >= min; k++ {
		out = append(out, plot.Tick{Value: first - float64(k)*step})
	}
	for i, tk := range major {
		for k := 1; k < n; k++ {
			v := tk.Value + float64(k)*step
			if v > max || (i < len(major)-1 && v >= major[i+1].Value) {
				break
			}
			out = append(out, plot.Tick{Value: v})
		}
	}
	return out
}

// exponentSuffix is appended to the label of an axis whose ticks are
// scaled by 10^e.
func exponentSuffix(e int, mathText bool) string {
	if mathText {
		return fmt.Sprintf(` ($\times10^{%d}$)`, e)
	}
	return fmt.Sprintf(" (×10^%d)", e)
}
