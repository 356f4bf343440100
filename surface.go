package quickplot

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/quickplot/geom"
	"github.com/vdobler/quickplot/internal/argcheck"
	"github.com/vdobler/quickplot/stat"
)

// ErrInvalidArgument is matched via errors.Is by every argument error
// returned from this package.
var ErrInvalidArgument = argcheck.ErrInvalid

var logger = logrus.WithField("tag", "quickplot")

// Axes describes the two axes of a surface.
type Axes struct {
	Title          string
	XLabel, YLabel string

	// XScale and YScale name the scale transform, "linear" or "log".
	// The empty string means linear.
	XScale, YScale string

	// XLimits and YLimits fix the shown data interval. Nil derives it
	// from the data, or uses [1, 10] on a log axis without data.
	// Inverted limits draw an inverted axis.
	XLimits, YLimits *stat.Range
}

// Surface is one configured plot together with the style it is rendered
// with. A Surface is not safe for concurrent use.
type Surface struct {
	Plot  *plot.Plot
	Style Style

	axes Axes
}

// BuildSurface creates an empty surface with labels, scales, limits,
// major and minor gridlines and tick labelling set up according to axes
// and style.
func BuildSurface(axes Axes, style Style) (*Surface, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	xs, err := lookupScale("xscale", axes.XScale)
	if err != nil {
		return nil, err
	}
	ys, err := lookupScale("yscale", axes.YScale)
	if err != nil {
		return nil, err
	}
	if err := checkLimits("xlim", axes.XLimits, xs); err != nil {
		return nil, err
	}
	if err := checkLimits("ylim", axes.YLimits, ys); err != nil {
		return nil, err
	}

	p := plot.New()
	if style.MathText {
		setTextHandler(p, text.Latex{Fonts: font.DefaultCache})
	}

	p.Title.Text = axes.Title
	p.X.Label.Text = axes.XLabel
	p.Y.Label.Text = axes.YLabel
	setupAxis(&p.X, xs, axes.XLimits, style)
	setupAxis(&p.Y, ys, axes.YLimits, style)

	grid := plotter.NewGrid()
	p.Add(grid, geom.NewMinorGrid())

	s := &Surface{Plot: p, Style: style, axes: axes}
	s.pin()

	logger.WithFields(logrus.Fields{
		"xscale": xs.Name,
		"yscale": ys.Name,
		"xlim":   axes.XLimits,
		"ylim":   axes.YLimits,
	}).Debug("surface built")
	return s, nil
}

func setTextHandler(p *plot.Plot, h text.Handler) {
	p.TextHandler = h
	p.Title.TextStyle.Handler = h
	p.Legend.TextStyle.Handler = h
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Handler = h
		ax.Tick.Label.Handler = h
	}
}

func setupAxis(ax *plot.Axis, scale ScaleTransform, limits *stat.Range, style Style) {
	ax.Scale = scale.Normalizer
	ax.Tick.Marker = scale.Ticker(style)
	if limits == nil {
		return
	}
	if limits.Inverted() {
		logger.WithField("limits", limits).Debug("inverted axis")
		ax.Scale = plot.InvertedScale{Normalizer: scale.Normalizer}
	}
}

// pin restores fixed limits after plotters widened the axes.
func (s *Surface) pin() {
	pinAxis(&s.Plot.X, s.axes.XLimits)
	pinAxis(&s.Plot.Y, s.axes.YLimits)
}

func pinAxis(ax *plot.Axis, limits *stat.Range) {
	if limits == nil {
		return
	}
	lo, hi := limits.Low, limits.High
	if lo > hi {
		lo, hi = hi, lo
	}
	ax.Min, ax.Max = lo, hi
}

// Add adds the plotters to the surface. Fixed limits stay in place.
func (s *Surface) Add(ps ...plot.Plotter) {
	s.Plot.Add(ps...)
	s.pin()
}

// AddLegend adds a legend entry unless name is empty.
func (s *Surface) AddLegend(name string, thumbs ...plot.Thumbnailer) {
	if name == "" {
		return
	}
	s.Plot.Legend.Add(name, thumbs...)
}

// Exponents returns the common tick label exponent of the x and y axis,
// zero for an axis without scaled labels.
func (s *Surface) Exponents() (x, y int) {
	return axisExponent(&s.Plot.X), axisExponent(&s.Plot.Y)
}

func axisExponent(ax *plot.Axis) int {
	sci, ok := ax.Tick.Marker.(SciTicks)
	if !ok {
		return 0
	}
	e, _ := sci.Exponent(ax.Min, ax.Max)
	return e
}

// finish updates the axis labels with the current tick exponents.
func (s *Surface) finish() {
	if s.axes.XScale == LogScale.Name {
		positiveRange(&s.Plot.X)
	}
	if s.axes.YScale == LogScale.Name {
		positiveRange(&s.Plot.Y)
	}
	ex, ey := s.Exponents()
	s.Plot.X.Label.Text = s.axes.XLabel
	if ex != 0 {
		s.Plot.X.Label.Text += exponentSuffix(ex, s.Style.MathText)
	}
	s.Plot.Y.Label.Text = s.axes.YLabel
	if ey != 0 {
		s.Plot.Y.Label.Text += exponentSuffix(ey, s.Style.MathText)
	}
}

// positiveRange replaces an empty or single value range of a log axis,
// which gonum would widen to include zero.
func positiveRange(ax *plot.Axis) {
	switch {
	case ax.Min > ax.Max:
		ax.Min, ax.Max = 1, 10
	case ax.Min == ax.Max && ax.Min > 0:
		ax.Min, ax.Max = ax.Min/10, ax.Max*10
	}
}

func (s *Surface) size() (vg.Length, vg.Length) {
	return vg.Length(s.Style.Width) * vg.Inch, vg.Length(s.Style.Height) * vg.Inch
}

// -------------------------------------------------------------------------
// Output

// Formats lists the accepted output formats.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

func isRaster(format string) bool {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}

// Image renders the surface to an in-memory raster image at Style.DPI.
func (s *Surface) Image() image.Image {
	return s.raster().Image()
}

func (s *Surface) raster() *vgimg.Canvas {
	s.finish()
	w, h := s.size()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(s.Style.DPI))
	s.Plot.Draw(draw.New(c))
	return c
}

// Encode renders the surface in the given format to w. Raster formats
// honour Style.DPI.
func (s *Surface) Encode(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if err := argcheck.OneOf("format", format, Formats...); err != nil {
		return err
	}

	var wt io.WriterTo
	if isRaster(format) {
		c := s.raster()
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
	} else {
		s.finish()
		width, height := s.size()
		var err error
		wt, err = s.Plot.WriterTo(width, height, format)
		if err != nil {
			return fmt.Errorf("quickplot: rendering %s: %w", format, err)
		}
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("quickplot: encoding %s: %w", format, err)
	}
	return nil
}

// Save writes the surface to path. The format is taken from the file
// extension.
func (s *Surface) Save(path string) (err error) {
	if err := argcheck.Path("path", path); err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if err := argcheck.OneOf("path", format, Formats...); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := s.Encode(f, format); err != nil {
		return err
	}
	logger.WithField("path", path).Debug("surface saved")
	return nil
}
