package quickplot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// pixelsPerInch converts Style.Width and Style.Height to CSS pixels.
const pixelsPerInch = 96

// WriteHTML renders the figure as a self-contained interactive echarts
// page. Limits and scales carry over; inverted limits are shown in
// ascending order.
func (f *Figure) WriteHTML(w io.Writer, style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	if _, err := lookupScale("xscale", f.Axes.XScale); err != nil {
		return err
	}
	if _, err := lookupScale("yscale", f.Axes.YScale); err != nil {
		return err
	}

	xAxis := opts.XAxis{
		Name:      f.Axes.XLabel,
		Type:      echartsAxisType(f.Axes.XScale),
		SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
	}
	if r := f.Axes.XLimits; r != nil {
		xAxis.Min, xAxis.Max = ordered(r.Low, r.High)
	}
	yAxis := opts.YAxis{
		Name:      f.Axes.YLabel,
		Type:      echartsAxisType(f.Axes.YScale),
		SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
	}
	if r := f.Axes.YLimits; r != nil {
		yAxis.Min, yAxis.Max = ordered(r.Low, r.High)
	}

	base := charts.NewLine()
	base.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", int(style.Width*pixelsPerInch)),
			Height: fmt.Sprintf("%dpx", int(style.Height*pixelsPerInch)),
		}),
		charts.WithTitleOpts(opts.Title{Title: f.Axes.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(f.hasNames())}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	)

	for _, s := range f.Series {
		aes := MergeStyles(s.Style, style.Theme.style(s.Kind))
		base.Overlap(s.echarts(aes))
	}

	if err := base.Render(w); err != nil {
		return fmt.Errorf("quickplot: rendering html: %w", err)
	}
	logger.WithField("series", len(f.Series)).Debug("html written")
	return nil
}

func (f *Figure) hasNames() bool {
	for _, s := range f.Series {
		if s.Name != "" {
			return true
		}
	}
	return false
}

func echartsAxisType(scale string) string {
	if scale == LogScale.Name {
		return "log"
	}
	return "value"
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// echarts converts s into a single series chart for overlapping.
func (s Series) echarts(aes AesMapping) charts.Overlaper {
	name := s.Name
	if name == "" {
		name = s.Kind.String()
	}

	switch s.Kind {
	case BarKind:
		data := make([]opts.BarData, len(s.X))
		for i := range s.X {
			data[i] = opts.BarData{Value: []float64{s.X[i], s.Y[i]}}
		}
		bar := charts.NewBar()
		bar.AddSeries(name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorOf(aes, "fill")}),
		)
		return bar

	case ScatterKind:
		size := String2PointSize(aes["size"])
		data := make([]opts.ScatterData, len(s.X))
		for i := range s.X {
			data[i] = opts.ScatterData{Value: []float64{s.X[i], s.Y[i]}, SymbolSize: int(2*size + 0.5)}
		}
		sc := charts.NewScatter()
		sc.AddSeries(name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorOf(aes, "color")}),
		)
		return sc
	}

	data := make([]opts.LineData, len(s.X))
	for i := range s.X {
		data[i] = opts.LineData{Value: []float64{s.X[i], s.Y[i]}}
	}
	line := charts.NewLine()
	line.AddSeries(name, data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorOf(aes, "color")}),
	)
	return line
}

// colorOf returns the colour aes[key] as "#rrggbb", with an alpha byte
// appended if it is not opaque, or "" if unset.
func colorOf(aes AesMapping, key string) string {
	c := aes.color(key)
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return Color2Hex(n)
	}
	return fmt.Sprintf("%s%02x", Color2Hex(n), n.A)
}
