package quickplot

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/vdobler/quickplot/internal/argcheck"
	"github.com/vdobler/quickplot/stat"
)

// ScaleTransform describes an axis scale known to the plot builder.
type ScaleTransform struct {
	// Name as used in Axes.XScale and Axes.YScale.
	Name string

	// Normalizer maps data to the axis.
	Normalizer plot.Normalizer

	// Ticker returns the tick marker for an axis of this scale.
	Ticker func(style Style) plot.Ticker

	// Valid reports whether v can be shown on this scale.
	Valid func(v float64) bool
}

var LinearScale = ScaleTransform{
	Name:       "linear",
	Normalizer: plot.LinearScale{},
	Ticker: func(style Style) plot.Ticker {
		return SciTicks{
			Marker:    plot.DefaultTicks{},
			Threshold: style.SciThreshold,
			Minor:     style.MinorTicks,
		}
	},
	Valid: func(float64) bool { return true },
}

var LogScale = ScaleTransform{
	Name:       "log",
	Normalizer: plot.LogScale{},
	Ticker: func(Style) plot.Ticker {
		return plot.LogTicks{Prec: -1}
	},
	Valid: func(v float64) bool { return v > 0 },
}

// Scales lists the accepted scale names.
var Scales = map[string]ScaleTransform{
	LinearScale.Name: LinearScale,
	LogScale.Name:    LogScale,
}

// lookupScale resolves name; the empty name means linear.
func lookupScale(param, name string) (ScaleTransform, error) {
	if name == "" {
		return LinearScale, nil
	}
	if err := argcheck.OneOf(param, name, LinearScale.Name, LogScale.Name); err != nil {
		return ScaleTransform{}, err
	}
	return Scales[name], nil
}

// checkLimits validates user supplied limits for scale.
func checkLimits(param string, r *stat.Range, scale ScaleTransform) error {
	if r == nil {
		return nil
	}
	if err := argcheck.Finite(param+".low", r.Low); err != nil {
		return err
	}
	if err := argcheck.Finite(param+".high", r.High); err != nil {
		return err
	}
	if !scale.Valid(r.Low) || !scale.Valid(r.High) {
		return argcheck.New(param, fmt.Sprintf("a range valid on a %s scale", scale.Name), r.String())
	}
	return nil
}
