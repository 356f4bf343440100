// Package stat contains the small numeric helpers behind the plots:
// default axis ranges, evenly spaced samples and the simple linear
// regression drawn by the regression plot.
package stat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/vdobler/quickplot/internal/argcheck"
)

// Padding is the factor applied to the data extremes by DefaultRange.
const Padding = 1.1

// Range is a (Low, High) interval bounding one axis. User supplied ranges
// may be inverted (Low > High).
type Range struct {
	Low, High float64
}

// NewRange is a shorthand for &Range{low, high}, handy for optional limits.
func NewRange(low, high float64) *Range {
	return &Range{Low: low, High: high}
}

// Inverted reports whether Low is above High.
func (r Range) Inverted() bool { return r.Low > r.High }

// Span is High - Low. It is negative for inverted ranges.
func (r Range) Span() float64 { return r.High - r.Low }

// Contains reports whether v lies within r, regardless of orientation.
func (r Range) Contains(v float64) bool {
	lo, hi := r.Low, r.High
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}

func (r Range) String() string {
	return fmt.Sprintf("(%g, %g)", r.Low, r.High)
}

// DefaultRange computes (min(values)*Padding, max(values)*Padding).
//
// The heuristic scales the extremes away from zero only if they have the
// "right" sign: for positive data the minimum and for negative data the
// maximum end up outside of the range. This is not corrected here; use
// Contains to detect it.
func DefaultRange(values []float64) (Range, error) {
	if err := argcheck.Values("values", values); err != nil {
		return Range{}, err
	}
	return Range{
		Low:  floats.Min(values) * Padding,
		High: floats.Max(values) * Padding,
	}, nil
}

// Linspace returns n evenly spaced values from lo to hi, both included.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
