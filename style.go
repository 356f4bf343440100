package quickplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a float and clamps it to [low, high]. A
// trailing "%" divides by 100. Unparsable input yields 0.5.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		logger.Warnf("cannot parse style %q as float: %s", s, err)
		return 0.5
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with its opacity replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "delta":
		return DeltaPoint
	case "nabla":
		return NablaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "solid-delta":
		return SolidDeltaPoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

// Glyph returns the gonum glyph drawing shape s, nil for BlankPoint.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case NablaPoint:
		return nablaGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// nablaGlyph is an outlined, downward pointing triangle.
type nablaGlyph struct{}

func (nablaGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r/2})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r/2})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Close()
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	c.Stroke(p)
}

func String2PointSize(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err == nil && n > 0 {
		return n
	}
	return 6
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt for lines of width w. Solid and
// blank lines have no pattern.
func (lt LineType) Dashes(w vg.Length) []vg.Length {
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	switch lt {
	case DashedLine:
		return []vg.Length{4 * w, 2 * w}
	case DottedLine:
		return []vg.Length{w, 2 * w}
	case DotDashLine:
		return []vg.Length{w, 2 * w, 4 * w, 2 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 2 * w}
	case TwodashLine:
		return []vg.Length{6 * w, 2 * w, 2 * w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color decodes "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
// Anything else yields a conspicuous half transparent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	logger.Warnf("unknown color %q", s)
	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Color2Hex formats c as "#rrggbb", dropping opacity.
func Color2Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
