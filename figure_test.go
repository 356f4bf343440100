package quickplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/vdobler/quickplot/geom"
	"github.com/vdobler/quickplot/stat"
)

func TestMissingLimitsUseDefaultRange(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{-3, -2, -1}

	f, err := NewLineFigure(x, y, Axes{})
	require.NoError(t, err)
	require.NotNil(t, f.Axes.XLimits)
	require.NotNil(t, f.Axes.YLimits)
	assert.InDelta(t, 1.1, f.Axes.XLimits.Low, 1e-12)
	assert.InDelta(t, 3.3, f.Axes.XLimits.High, 1e-12)
	assert.InDelta(t, -3.3, f.Axes.YLimits.Low, 1e-12)
	assert.InDelta(t, -1.1, f.Axes.YLimits.High, 1e-12)

	// Only the missing limit is derived.
	f, err = NewBarFigure(x, y, Axes{YLimits: stat.NewRange(-5, 0)})
	require.NoError(t, err)
	assert.InDelta(t, 1.1, f.Axes.XLimits.Low, 1e-12)
	assert.Equal(t, stat.Range{Low: -5, High: 0}, *f.Axes.YLimits)
}

func TestFigureDoesNotModifyAxes(t *testing.T) {
	axes := Axes{XLabel: "x"}
	_, err := NewLineFigure([]float64{1}, []float64{1}, axes)
	require.NoError(t, err)
	assert.Nil(t, axes.XLimits)
	assert.Nil(t, axes.YLimits)
}

func TestFigureArguments(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []float64
		axes  Axes
		param string
	}{
		{"nil x", nil, []float64{1}, Axes{}, `"x"`},
		{"empty y", []float64{1}, []float64{}, Axes{}, `"y"`},
		{"length mismatch", []float64{1, 2}, []float64{1}, Axes{}, `"y"`},
		{"bad scale", []float64{1}, []float64{1}, Axes{XScale: "sqrt"}, `"xscale"`},
		{"zero on log", []float64{1, 2}, []float64{0, 1}, Axes{YScale: "log"}, `"y"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLineFigure(tc.x, tc.y, tc.axes)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tc.param)

			_, err = LinePlot(tc.x, tc.y, tc.axes, DefaultStyle())
			assert.ErrorIs(t, err, ErrInvalidArgument)
			_, err = BarPlot(tc.x, tc.y, tc.axes, DefaultStyle())
			assert.ErrorIs(t, err, ErrInvalidArgument)
			_, _, err = LinearRegressionPlot(tc.x, tc.y, tc.axes, DefaultStyle())
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestLinePlot(t *testing.T) {
	s, err := LinePlot([]float64{1, 2, 3}, []float64{4, 5, 6}, Axes{XLabel: "x"}, smallStyle())
	require.NoError(t, err)
	assert.InDelta(t, 1.1, s.Plot.X.Min, 1e-12)
	assert.InDelta(t, 3.3, s.Plot.X.Max, 1e-12)
	assert.InDelta(t, 4.4, s.Plot.Y.Min, 1e-12)
	assert.InDelta(t, 6.6, s.Plot.Y.Max, 1e-12)
	assert.NotNil(t, s.Image())
}

func TestBarPlotLogY(t *testing.T) {
	f, err := NewBarFigure([]float64{1, 2, 3}, []float64{1, 10, 100}, Axes{YScale: "log"})
	require.NoError(t, err)
	f.Series[0].Name = "counts"

	s, err := f.Render(smallStyle())
	require.NoError(t, err)
	assert.NotNil(t, s.Image())

	p, err := f.Series[0].plotter(DefaultTheme.style(BarKind), false, true)
	require.NoError(t, err)
	bars := p.(*geom.Bars)
	assert.True(t, bars.LogY)
	assert.False(t, bars.LogX)
	assert.Equal(t, 0.8, bars.Width)
	assert.Nil(t, bars.LineStyle.Color, "default bars have no outline")
}

func TestBarPlotLogX(t *testing.T) {
	x := []float64{0.1, 1, 10}
	s, err := BarPlot(x, []float64{1, 2, 3}, Axes{XScale: "log"}, smallStyle())
	require.NoError(t, err)
	assert.IsType(t, plot.LogScale{}, s.Plot.X.Scale)
	assert.NotPanics(t, func() { s.Image() })

	s, err = BarPlot(x, []float64{1, 2, 3}, Axes{XScale: "log", YScale: "log"}, smallStyle())
	require.NoError(t, err)
	assert.NotPanics(t, func() { s.Image() })

	f, err := NewBarFigure(x, []float64{1, 2, 3}, Axes{XScale: "log"})
	require.NoError(t, err)
	p, err := f.Series[0].plotter(DefaultTheme.style(BarKind), true, false)
	require.NoError(t, err)
	xmin, _, _, _ := p.(*geom.Bars).DataRange()
	assert.Greater(t, xmin, 0.0, "bar edges stay positive")
}

func TestSeriesStyleOverride(t *testing.T) {
	f, err := NewBarFigure([]float64{1}, []float64{1}, Axes{})
	require.NoError(t, err)
	f.Series[0].Style = AesMapping{"width": "0.5"}

	aes := MergeStyles(f.Series[0].Style, DefaultTheme.style(BarKind))
	p, err := f.Series[0].plotter(aes, false, false)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.(*geom.Bars).Width)
}

func TestUnknownKind(t *testing.T) {
	f := &Figure{Series: []Series{{Kind: Kind(42), X: []float64{1}, Y: []float64{1}}}}
	_, err := f.Render(DefaultStyle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kind(42)")
}

func TestLinearRegressionPlot(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 2, 4, 6}

	s, reg, err := LinearRegressionPlot(x, y, Axes{}, smallStyle())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.InDelta(t, 2, reg.Fit.Slope, 1e-12)
	assert.InDelta(t, 0, reg.Fit.Intercept, 1e-12)
	assert.InDelta(t, 1, reg.RSquared, 1e-12)

	summary := reg.Summary()
	assert.True(t, strings.HasPrefix(summary[0], "y = "), summary[0])
	assert.True(t, strings.HasPrefix(summary[1], "r^2 = "), summary[1])

	require.Len(t, reg.ModelX, stat.ModelPoints)
	assert.InDelta(t, 0, reg.ModelX[0], 1e-12)
	assert.InDelta(t, 3, reg.ModelX[len(reg.ModelX)-1], 1e-12)
}

func TestRegressionFigure(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	f, reg, err := NewRegressionFigure(x, y, Axes{}, stat.LegacyDomain)
	require.NoError(t, err)
	require.Len(t, f.Series, 2)
	assert.Equal(t, ScatterKind, f.Series[0].Kind)
	assert.Equal(t, x, f.Series[0].X)
	assert.Equal(t, FitKind, f.Series[1].Kind)
	assert.Len(t, f.Series[1].X, stat.ModelPoints)
	assert.InDelta(t, 7, reg.ModelX[len(reg.ModelX)-1], 1e-12, "legacy domain ends at max(y)")
}

func TestConstantRegression(t *testing.T) {
	_, reg, err := LinearRegressionPlot([]float64{1, 2, 3}, []float64{5, 5, 5}, Axes{}, smallStyle())
	require.NoError(t, err)
	assert.Equal(t, "r^2 = NaN", reg.Summary()[1])
}

func TestWriteHTML(t *testing.T) {
	f, _, err := NewRegressionFigure(
		[]float64{1, 2, 3}, []float64{2, 4, 7},
		Axes{Title: "growth", XLabel: "day", YScale: "log"},
		stat.DomainX,
	)
	require.NoError(t, err)
	f.Series[0].Name = "measured"

	var buf bytes.Buffer
	require.NoError(t, f.WriteHTML(&buf, DefaultStyle()))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "growth")
	assert.Contains(t, html, "day")
	assert.Contains(t, html, "measured")
	assert.Contains(t, html, `"log"`)

	f.Axes.XScale = "sqrt"
	assert.ErrorIs(t, f.WriteHTML(&bytes.Buffer{}, DefaultStyle()), ErrInvalidArgument)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, "#ff0000", colorOf(AesMapping{"color": "red"}, "color"))
	assert.Equal(t, "#ff000080", colorOf(AesMapping{"color": "red", "alpha": "50%"}, "color"))
	assert.Equal(t, "", colorOf(AesMapping{}, "fill"))
}
