// Package quickplot provides standardized scientific plots of numeric data:
// line plots, bar plots and linear regressions with a common look.
//
// # Surfaces
//
// Every plot is drawn on a Surface: a gonum plot configured from an Axes
// value and a Style. The Axes hold labels, scales ("linear" or "log") and
// optional limits; the Style holds canvas size, resolution and text
// settings:
//
//	axes := quickplot.Axes{XLabel: "t [s]", YLabel: "v [m/s]"}
//	s, err := quickplot.LinePlot(t, v, axes, quickplot.DefaultStyle())
//	...
//	err = s.Save("velocity.png")
//
// Surfaces get major and minor grid lines and minor ticks on both axes.
// Tick labels on linear axes are written as mantissas of a common power of
// ten which is appended to the axis label. Labels are plain text unless
// Style.MathText is set.
//
// # Limits
//
// Nil limits are derived from the data by stat.DefaultRange, which scales
// the data extremes by 1.1. Limits with Low > High draw an inverted axis.
//
// # Figures
//
// The plot helpers compute a Figure first and render it afterwards.
// Figures hold plain data and can also be written as interactive HTML:
//
//	fig, reg, err := quickplot.NewRegressionFigure(x, y, axes, stat.DomainX)
//	...
//	fmt.Println(reg.Summary())
//	err = fig.WriteHTML(w, quickplot.DefaultStyle())
//
// # Styles
//
// The appearance of lines, bars and points comes from Style.Theme. Each
// Series may override single aesthetics by an AesMapping like
//
//	quickplot.AesMapping{"color": "#2ca02c", "linetype": "dashed"}
package quickplot
