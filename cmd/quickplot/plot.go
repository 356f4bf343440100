package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vdobler/quickplot"
	"github.com/vdobler/quickplot/stat"
	"github.com/vdobler/quickplot/table"
)

type plotKind string

const (
	lineKind    plotKind = "line"
	barKind     plotKind = "bar"
	regressKind plotKind = "regress"
)

var plotShort = map[plotKind]string{
	lineKind:    "Draw one column over another as a line",
	barKind:     "Draw one bar per row",
	regressKind: "Fit a straight line and print its equation and r^2",
}

type plotOptions struct {
	input, output  string
	xcol, ycol     int
	title          string
	xlabel, ylabel string
	xscale, yscale string
	xlim, ylim     string
	legacyDomain   bool
}

func newPlotCmd(global *globalOptions, kind plotKind) *cobra.Command {
	var opts plotOptions
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: plotShort[kind],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := global.loadStyle(cmd)
			if err != nil {
				return err
			}
			return runPlot(cmd, kind, opts, style)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "CSV table to read (required)")
	f.StringVarP(&opts.output, "output", "o", "plot.png", "Output file")
	f.IntVar(&opts.xcol, "xcol", 0, "Column holding x")
	f.IntVar(&opts.ycol, "ycol", 1, "Column holding y")
	f.StringVar(&opts.title, "title", "", "Plot title")
	f.StringVar(&opts.xlabel, "xlabel", "", "Label of the x axis")
	f.StringVar(&opts.ylabel, "ylabel", "", "Label of the y axis")
	f.StringVar(&opts.xscale, "xscale", "linear", "Scale of the x axis: linear or log")
	f.StringVar(&opts.yscale, "yscale", "linear", "Scale of the y axis: linear or log")
	f.StringVar(&opts.xlim, "xlim", "", "x axis limits as lo,hi (default derived from data)")
	f.StringVar(&opts.ylim, "ylim", "", "y axis limits as lo,hi (default derived from data)")
	if kind == regressKind {
		f.BoolVar(&opts.legacyDomain, "legacy-domain", false, "Sample the fit over [min(x), max(y)] like older versions")
	}
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runPlot(cmd *cobra.Command, kind plotKind, opts plotOptions, style quickplot.Style) error {
	t, err := table.Import(opts.input)
	if err != nil {
		return err
	}
	x, err := t.Column(opts.xcol)
	if err != nil {
		return fmt.Errorf("--xcol: %w", err)
	}
	y, err := t.Column(opts.ycol)
	if err != nil {
		return fmt.Errorf("--ycol: %w", err)
	}

	axes := quickplot.Axes{
		Title:  opts.title,
		XLabel: opts.xlabel,
		YLabel: opts.ylabel,
		XScale: opts.xscale,
		YScale: opts.yscale,
	}
	if axes.XLimits, err = parseRange(opts.xlim); err != nil {
		return fmt.Errorf("--xlim: %w", err)
	}
	if axes.YLimits, err = parseRange(opts.ylim); err != nil {
		return fmt.Errorf("--ylim: %w", err)
	}

	var fig *quickplot.Figure
	switch kind {
	case lineKind:
		fig, err = quickplot.NewLineFigure(x, y, axes)
	case barKind:
		fig, err = quickplot.NewBarFigure(x, y, axes)
	case regressKind:
		domain := stat.DomainX
		if opts.legacyDomain {
			domain = stat.LegacyDomain
		}
		var reg stat.Regression
		fig, reg, err = quickplot.NewRegressionFigure(x, y, axes, domain)
		if err == nil {
			for _, line := range reg.Summary() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		}
	}
	if err != nil {
		return err
	}

	if err := writeFigure(fig, opts.output, style); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"kind":   kind,
		"rows":   t.Rows(),
		"output": opts.output,
	}).Debug("plot written")
	return nil
}

// writeFigure saves fig as interactive HTML or through a Surface,
// depending on the extension of path.
func writeFigure(fig *quickplot.Figure, path string, style quickplot.Style) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return writeHTML(fig, path, style)
	}
	s, err := fig.Render(style)
	if err != nil {
		return err
	}
	return s.Save(path)
}

func writeHTML(fig *quickplot.Figure, path string, style quickplot.Style) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fig.WriteHTML(f, style)
}

// parseRange parses "lo,hi". The empty string yields nil.
func parseRange(s string) (*stat.Range, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want lo,hi, got %q", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}
	return stat.NewRange(lo, hi), nil
}
