// Command quickplot plots columns of numeric CSV tables.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vdobler/quickplot"
	"github.com/vdobler/quickplot/internal/config"
)

// globalOptions are the persistent flags of the root command.
type globalOptions struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	def := quickplot.DefaultStyle()

	root := &cobra.Command{
		Use:   "quickplot",
		Short: "Standardized plots of numeric CSV tables",
		Long: `quickplot reads comma separated numeric tables without header and draws
line plots, bar plots and linear regressions of two of their columns.

The output format follows the extension of --output: png, jpg, tiff, svg,
pdf, eps or html for an interactive chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&opts.configPath, "config", "", "Style configuration file (yaml, toml or json)")
	pf.Float64("width", def.Width, "Canvas width in inches")
	pf.Float64("height", def.Height, "Canvas height in inches")
	pf.Int("dpi", def.DPI, "Resolution of raster output")
	pf.Bool("math-text", def.MathText, "Render labels as LaTeX math text")
	pf.Int("sci-threshold", def.SciThreshold, "Exponent threshold of scientific tick labels (negative disables)")
	pf.Int("minor-ticks", def.MinorTicks, "Minor intervals per major tick interval")

	root.AddCommand(
		newPlotCmd(&opts, lineKind),
		newPlotCmd(&opts, barKind),
		newPlotCmd(&opts, regressKind),
		newConvertCmd(),
	)
	return root
}

// loadStyle merges the config file and the style flags of cmd.
func (o *globalOptions) loadStyle(cmd *cobra.Command) (quickplot.Style, error) {
	return config.Load(o.configPath, cmd.Flags())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
