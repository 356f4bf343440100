package quickplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds fixed aesthetics of a series as strings, e.g.
//
//	"color":    "red" or "#1f77b4"
//	"alpha":    "0.5" or "50%"
//	"size":     line width or point radius in points
//	"linetype": "solid", "dashed", ...
//	"shape":    "solid-circle", "square", ...
//	"fill":     bar fill colour
//	"width":    bar width in data units, in decades on a log x axis
type AesMapping map[string]string

// MergeStyles merges the given mappings. Earlier mappings take precedence;
// empty values count as unset.
func MergeStyles(aes ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range aes {
		for k, v := range am {
			if v == "" {
				continue
			}
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged
}

// Copy returns an independent copy of m.
func (m AesMapping) Copy() AesMapping {
	if m == nil {
		return nil
	}
	c := make(AesMapping, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (m AesMapping) color(key string) color.Color {
	if m[key] == "" {
		return nil
	}
	alpha := 1.0
	if a, ok := m["alpha"]; ok {
		alpha = String2Float(a, 0, 1)
	}
	return SetAlpha(String2Color(m[key]), alpha)
}

func (m AesMapping) lineStyle() draw.LineStyle {
	lt := String2LineType(m["linetype"])
	if lt == BlankLine {
		return draw.LineStyle{}
	}
	width := vg.Points(String2Float(m["size"], 0, 20))
	return draw.LineStyle{
		Color:  m.color("color"),
		Width:  width,
		Dashes: lt.Dashes(width),
	}
}

func (m AesMapping) glyphStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  m.color("color"),
		Radius: vg.Points(String2PointSize(m["size"])),
		Shape:  String2PointShape(m["shape"]).Glyph(),
	}
}

// -------------------------------------------------------------------------
// Theme

// Theme holds the default aesthetics of the three kinds of series and of
// the fitted line of a regression plot.
type Theme struct {
	PointStyle AesMapping `mapstructure:"point"`
	LineStyle  AesMapping `mapstructure:"line"`
	BarStyle   AesMapping `mapstructure:"bar"`
	FitStyle   AesMapping `mapstructure:"fit"`
}

// DefaultTheme draws blue lines and bars, red points and a blue fit.
var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"size":  "2",
		"shape": "solid-circle",
		"color": "red",
		"alpha": "1",
	},
	LineStyle: AesMapping{
		"size":     "1",
		"linetype": "solid",
		"color":    "#1f77b4",
		"alpha":    "1",
	},
	BarStyle: AesMapping{
		"linetype": "blank",
		"color":    "gray20",
		"fill":     "#1f77b4",
		"alpha":    "1",
		"width":    "0.8",
	},
	FitStyle: AesMapping{
		"size":     "1",
		"linetype": "solid",
		"color":    "blue",
		"alpha":    "1",
	},
}

// Copy returns a deep copy of t.
func (t Theme) Copy() Theme {
	return Theme{
		PointStyle: t.PointStyle.Copy(),
		LineStyle:  t.LineStyle.Copy(),
		BarStyle:   t.BarStyle.Copy(),
		FitStyle:   t.FitStyle.Copy(),
	}
}

// style returns the mapping for kind, filled up from DefaultTheme.
func (t Theme) style(kind Kind) AesMapping {
	switch kind {
	case LineKind:
		return MergeStyles(t.LineStyle, DefaultTheme.LineStyle)
	case BarKind:
		return MergeStyles(t.BarStyle, DefaultTheme.BarStyle)
	case ScatterKind:
		return MergeStyles(t.PointStyle, DefaultTheme.PointStyle)
	case FitKind:
		return MergeStyles(t.FitStyle, DefaultTheme.FitStyle)
	}
	return AesMapping{}
}
