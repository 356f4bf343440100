package quickplot

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/quickplot/geom"
	"github.com/vdobler/quickplot/internal/argcheck"
	"github.com/vdobler/quickplot/stat"
)

// Kind is the way a series is drawn.
type Kind int

const (
	LineKind    Kind = iota // connected line in data order
	BarKind                 // one bar per point, centred at x
	ScatterKind             // unconnected points
	FitKind                 // model line of a regression
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case BarKind:
		return "bar"
	case ScatterKind:
		return "scatter"
	case FitKind:
		return "fit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Series is one set of points of a figure.
type Series struct {
	Kind Kind

	// Name is shown in the legend. Series without name get no legend
	// entry.
	Name string

	X, Y []float64

	// Style overrides the theme of the rendering Style for this series.
	Style AesMapping
}

// Len, XY implement the plotter.XYer interface.
func (s Series) Len() int                    { return len(s.X) }
func (s Series) XY(i int) (float64, float64) { return s.X[i], s.Y[i] }

// Figure is the backend independent result of a plot helper: resolved
// axes and the series to draw. It can be rendered to a Surface or to HTML.
type Figure struct {
	Axes   Axes
	Series []Series
}

// newFigure checks x and y, resolves missing limits with
// stat.DefaultRange and returns a figure without series.
func newFigure(x, y []float64, axes Axes) (*Figure, error) {
	if err := argcheck.Pair("x", x, "y", y); err != nil {
		return nil, err
	}
	if _, err := lookupScale("xscale", axes.XScale); err != nil {
		return nil, err
	}
	if _, err := lookupScale("yscale", axes.YScale); err != nil {
		return nil, err
	}
	if err := positiveOnLog("x", x, axes.XScale); err != nil {
		return nil, err
	}
	if err := positiveOnLog("y", y, axes.YScale); err != nil {
		return nil, err
	}

	if axes.XLimits == nil {
		r, err := stat.DefaultRange(x)
		if err != nil {
			return nil, err
		}
		axes.XLimits = &r
	}
	if axes.YLimits == nil {
		r, err := stat.DefaultRange(y)
		if err != nil {
			return nil, err
		}
		axes.YLimits = &r
	}
	for _, ax := range []struct {
		name   string
		values []float64
		limits *stat.Range
	}{{"x", x, axes.XLimits}, {"y", y, axes.YLimits}} {
		if !ax.limits.Contains(floats.Min(ax.values)) || !ax.limits.Contains(floats.Max(ax.values)) {
			logger.WithFields(logrus.Fields{"axis": ax.name, "limits": ax.limits}).Debug("data exceeds axis limits")
		}
	}
	return &Figure{Axes: axes}, nil
}

func positiveOnLog(param string, values []float64, scale string) error {
	if scale != LogScale.Name {
		return nil
	}
	for i, v := range values {
		if !(v > 0) {
			return argcheck.New(param, "positive on a log scale", fmt.Sprintf("%s[%d] = %g", param, i, v))
		}
	}
	return nil
}

// NewLineFigure returns a figure connecting the points (x[i], y[i]) in
// order. Nil limits in axes are derived from the data.
func NewLineFigure(x, y []float64, axes Axes) (*Figure, error) {
	f, err := newFigure(x, y, axes)
	if err != nil {
		return nil, err
	}
	f.Series = []Series{{Kind: LineKind, X: x, Y: y}}
	return f, nil
}

// NewBarFigure returns a figure with one bar of height y[i] at x[i].
// Nil limits in axes are derived from the data.
func NewBarFigure(x, y []float64, axes Axes) (*Figure, error) {
	f, err := newFigure(x, y, axes)
	if err != nil {
		return nil, err
	}
	f.Series = []Series{{Kind: BarKind, X: x, Y: y}}
	return f, nil
}

// NewRegressionFigure fits a line to (x, y) and returns a figure of the
// raw points and the fitted line sampled over domain, together with the
// regression itself. Nil limits in axes are derived from the data.
func NewRegressionFigure(x, y []float64, axes Axes, domain stat.Domain) (*Figure, stat.Regression, error) {
	f, err := newFigure(x, y, axes)
	if err != nil {
		return nil, stat.Regression{}, err
	}
	reg, err := stat.Regress(x, y, domain)
	if err != nil {
		return nil, stat.Regression{}, err
	}
	f.Series = []Series{
		{Kind: ScatterKind, X: x, Y: y},
		{Kind: FitKind, X: reg.ModelX, Y: reg.ModelY},
	}
	return f, reg, nil
}

// -------------------------------------------------------------------------
// Rendering

// Render draws the figure on a new surface.
func (f *Figure) Render(style Style) (*Surface, error) {
	s, err := BuildSurface(f.Axes, style)
	if err != nil {
		return nil, err
	}
	logX := f.Axes.XScale == LogScale.Name
	logY := f.Axes.YScale == LogScale.Name
	for i, series := range f.Series {
		aes := MergeStyles(series.Style, style.Theme.style(series.Kind))
		p, err := series.plotter(aes, logX, logY)
		if err != nil {
			return nil, fmt.Errorf("quickplot: series %d (%s): %w", i, series.Kind, err)
		}
		s.Add(p)
		if th, ok := p.(plot.Thumbnailer); ok {
			s.AddLegend(series.Name, th)
		}
	}
	return s, nil
}

func (s Series) plotter(aes AesMapping, logX, logY bool) (plot.Plotter, error) {
	switch s.Kind {
	case LineKind, FitKind:
		l, err := plotter.NewLine(s)
		if err != nil {
			return nil, err
		}
		l.LineStyle = aes.lineStyle()
		return l, nil

	case BarKind:
		width, err := strconv.ParseFloat(aes["width"], 64)
		if err != nil || !(width > 0) {
			width = 0.8
		}
		b, err := geom.NewBars(s, width)
		if err != nil {
			return nil, err
		}
		b.FillColor = aes.color("fill")
		b.LineStyle = aes.lineStyle()
		b.LogX, b.LogY = logX, logY
		return b, nil

	case ScatterKind:
		sc, err := plotter.NewScatter(s)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = aes.glyphStyle()
		return sc, nil
	}
	return nil, argcheck.New("kind", "a known series kind", s.Kind.String())
}

// -------------------------------------------------------------------------
// Plot helpers

// LinePlot draws y over x as a connected line on a new surface. Nil
// limits in axes default to stat.DefaultRange of x and y respectively.
func LinePlot(x, y []float64, axes Axes, style Style) (*Surface, error) {
	f, err := NewLineFigure(x, y, axes)
	if err != nil {
		return nil, err
	}
	return f.Render(style)
}

// BarPlot draws one bar per point on a new surface. Nil limits in axes
// default to stat.DefaultRange of x and y respectively.
func BarPlot(x, y []float64, axes Axes, style Style) (*Surface, error) {
	f, err := NewBarFigure(x, y, axes)
	if err != nil {
		return nil, err
	}
	return f.Render(style)
}

// LinearRegressionPlot draws the points (x, y) and their least squares
// line on a new surface. The line is sampled over [min(x), max(x)]; use
// NewRegressionFigure with stat.LegacyDomain for the historic
// [min(x), max(y)] interval.
func LinearRegressionPlot(x, y []float64, axes Axes, style Style) (*Surface, stat.Regression, error) {
	f, reg, err := NewRegressionFigure(x, y, axes, stat.DomainX)
	if err != nil {
		return nil, stat.Regression{}, err
	}
	s, err := f.Render(style)
	if err != nil {
		return nil, stat.Regression{}, err
	}
	return s, reg, nil
}
