package quickplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestColor2Hex(t *testing.T) {
	for _, s := range []string{"#1256ab", "#000000", "#ffffff"} {
		if got := Color2Hex(String2Color(s)); got != s {
			t.Errorf("Color2Hex(String2Color(%q)) = %q", s, got)
		}
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0.25", 0.25},
		{"25%", 0.25},
		{" 0.75", 0.75},
		{"3", 1},
		{"-1", 0},
		{"bogus", 0.5},
	}
	for _, tc := range tests {
		if got := String2Float(tc.s, 0, 1); got != tc.want {
			t.Errorf("String2Float(%q) = %g, want %g", tc.s, got, tc.want)
		}
	}
}

func TestString2LineType(t *testing.T) {
	tests := []struct {
		s    string
		want LineType
	}{
		{"solid", SolidLine},
		{"dashed", DashedLine},
		{"dotted", DottedLine},
		{"twodash", TwodashLine},
		{"2", DashedLine},
		{"", BlankLine},
		{"wiggly", BlankLine},
	}
	for _, tc := range tests {
		if got := String2LineType(tc.s); got != tc.want {
			t.Errorf("String2LineType(%q) = %d, want %d", tc.s, got, tc.want)
		}
	}

	if d := SolidLine.Dashes(vg.Points(2)); d != nil {
		t.Errorf("solid line has dashes %v", d)
	}
	if d := DashedLine.Dashes(vg.Points(2)); len(d) != 2 || d[0] != vg.Points(8) {
		t.Errorf("dashed line of width 2: got %v", d)
	}
}

func TestString2PointShape(t *testing.T) {
	tests := []struct {
		s     string
		shape PointShape
		glyph draw.GlyphDrawer
	}{
		{"circle", CirclePoint, draw.RingGlyph{}},
		{"solid-circle", SolidCirclePoint, draw.CircleGlyph{}},
		{"square", SquarePoint, draw.SquareGlyph{}},
		{"nabla", NablaPoint, nablaGlyph{}},
		{"plus", PlusPoint, draw.PlusGlyph{}},
		{"blob", BlankPoint, nil},
	}
	for _, tc := range tests {
		got := String2PointShape(tc.s)
		if got != tc.shape {
			t.Errorf("String2PointShape(%q) = %d, want %d", tc.s, got, tc.shape)
		}
		if g := got.Glyph(); g != tc.glyph {
			t.Errorf("%q: glyph %T, want %T", tc.s, g, tc.glyph)
		}
	}
}

func TestMergeStyles(t *testing.T) {
	merged := MergeStyles(
		AesMapping{"color": "red", "size": ""},
		AesMapping{"color": "blue", "size": "3", "linetype": "dashed"},
	)
	want := AesMapping{"color": "red", "size": "3", "linetype": "dashed"}
	if len(merged) != len(want) {
		t.Fatalf("got %v, want %v", merged, want)
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("%s: got %q, want %q", k, merged[k], v)
		}
	}
}

func TestThemeStyle(t *testing.T) {
	theme := DefaultTheme.Copy()
	theme.LineStyle = AesMapping{"color": "green"}

	line := theme.style(LineKind)
	if line["color"] != "green" {
		t.Errorf("line color %q, want green", line["color"])
	}
	if line["linetype"] != "solid" {
		t.Errorf("missing linetype not filled from default theme: %v", line)
	}
	if DefaultTheme.LineStyle["color"] != "#1f77b4" {
		t.Errorf("DefaultTheme modified through copy")
	}

	ls := theme.style(LineKind).lineStyle()
	if ls.Width != vg.Points(1) || ls.Color == nil || ls.Dashes != nil {
		t.Errorf("unexpected line style %+v", ls)
	}
	if bs := theme.style(BarKind).lineStyle(); bs.Color != nil {
		t.Errorf("bar outline should be blank, got %+v", bs)
	}
	if gs := theme.style(ScatterKind).glyphStyle(); gs.Radius != vg.Points(2) {
		t.Errorf("point radius %v, want 2pt", gs.Radius)
	}
}
