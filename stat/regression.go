package stat

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/vdobler/quickplot/internal/argcheck"
)

// ModelPoints is the number of samples of the fitted line.
const ModelPoints = 1000

// Domain selects the x interval over which the fitted line is sampled.
type Domain int

const (
	// DomainX samples over [min(x), max(x)].
	DomainX Domain = iota

	// LegacyDomain samples over [min(x), max(y)], reproducing the output
	// of older versions of the regression plot.
	LegacyDomain
)

func (d Domain) String() string {
	switch d {
	case DomainX:
		return "x"
	case LegacyDomain:
		return "legacy"
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// -------------------------------------------------------------------------
// Fit

// Fit is a straight line y = Slope*x + Intercept.
type Fit struct {
	Slope, Intercept float64

	// Standard errors of slope and intercept. NaN for fewer than three
	// samples.
	SlopeErr, InterceptErr float64
}

// At evaluates the line at x.
func (f Fit) At(x float64) float64 { return f.Slope*x + f.Intercept }

// Sample evaluates the line at every value of xs.
func (f Fit) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f.At(x)
	}
	return ys
}

// Equation formats f as "y = {slope}x + {intercept}".
func (f Fit) Equation() string {
	return fmt.Sprintf("y = %sx + %s", formatFloat(f.Slope), formatFloat(f.Intercept))
}

// LinearFit computes the least squares line through (x, y).
// Degenerate input (a single sample, constant x) is not special cased and
// yields NaN or Inf coefficients.
func LinearFit(x, y []float64) (Fit, error) {
	if err := argcheck.Pair("x", x, "y", y); err != nil {
		return Fit{}, err
	}

	intercept, slope := gstat.LinearRegression(x, y, nil, false)
	f := Fit{Slope: slope, Intercept: intercept}

	// See http://en.wikipedia.org/wiki/Simple_linear_regression#Normality_assumption
	n := float64(len(x))
	xm := gstat.Mean(x, nil)
	var sxx, sx2, ssRes float64
	for i := range x {
		dx := x[i] - xm
		sxx += dx * dx
		sx2 += x[i] * x[i]
		r := y[i] - f.At(x[i])
		ssRes += r * r
	}
	if len(x) > 2 {
		s2 := ssRes / (n - 2)
		f.SlopeErr = math.Sqrt(s2 / sxx)
		f.InterceptErr = f.SlopeErr * math.Sqrt(sx2/n)
	} else {
		f.SlopeErr, f.InterceptErr = math.NaN(), math.NaN()
	}
	return f, nil
}

// RSquared is the coefficient of determination 1 - SS_res/SS_tot of f
// over the samples (x, y). For constant y SS_tot is zero and the result is
// NaN (or -Inf); no substitute value is returned.
func RSquared(f Fit, x, y []float64) (float64, error) {
	if err := argcheck.Pair("x", x, "y", y); err != nil {
		return math.NaN(), err
	}
	ym := gstat.Mean(y, nil)
	var ssRes, ssTot float64
	for i := range x {
		r := y[i] - f.At(x[i])
		ssRes += r * r
		d := y[i] - ym
		ssTot += d * d
	}
	return 1 - ssRes/ssTot, nil
}

// -------------------------------------------------------------------------
// Regression

// Regression bundles a fit with its goodness and the sampled model line.
type Regression struct {
	Fit      Fit
	RSquared float64

	// ModelX and ModelY hold ModelPoints samples of the fitted line.
	ModelX, ModelY []float64
}

var logger = logrus.WithField("tag", "stat")

// Regress fits a line to (x, y) and samples it over the given domain.
func Regress(x, y []float64, domain Domain) (Regression, error) {
	fit, err := LinearFit(x, y)
	if err != nil {
		return Regression{}, err
	}

	lo, hi := floats.Min(x), floats.Max(x)
	if domain == LegacyDomain {
		hi = floats.Max(y)
	}
	mx := Linspace(lo, hi, ModelPoints)

	rsq, err := RSquared(fit, x, y)
	if err != nil {
		return Regression{}, err
	}
	r := Regression{
		Fit:      fit,
		RSquared: rsq,
		ModelX:   mx,
		ModelY:   fit.Sample(mx),
	}
	if math.IsNaN(rsq) || math.IsInf(rsq, 0) {
		logger.WithFields(logrus.Fields{
			"rsquared": rsq,
			"cause":    undefinedCause(fit),
		}).Warn("coefficient of determination undefined")
	}
	logger.WithFields(logrus.Fields{
		"slope":     fit.Slope,
		"intercept": fit.Intercept,
		"domain":    domain,
	}).Debug("linear regression")
	return r, nil
}

// undefinedCause names why r² of fit is not a finite number: a singular
// fit has no finite slope, otherwise SS_tot is zero.
func undefinedCause(fit Fit) string {
	if math.IsNaN(fit.Slope) || math.IsInf(fit.Slope, 0) {
		return "singular fit: x is constant"
	}
	return "SS_tot is zero: y is constant"
}

// Summary returns the fitted equation and the r² line, e.g.
// ["y = 2x + 0", "r^2 = 1"].
func (r Regression) Summary() [2]string {
	return [2]string{
		r.Fit.Equation(),
		"r^2 = " + formatFloat(r.RSquared),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
