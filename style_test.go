package target

import (
	"errors"
	"image/color"
	"testing"
)

func sameColor(a, b color.Color) bool {
	ra, ga, ba, aa := a.RGBA()
	rb, gb, bb, ab := b.RGBA()
	return ra == rb && ga == gb && ba == bb && aa == ab
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"r", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0x80, 0x00, 0xff}},
		{"Blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"k", color.NRGBA{0x00, 0x00, 0x00, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseColor(tc.s)
		if err != nil {
			t.Errorf("%d %q: unexpected error %v", i, tc.s, err)
			continue
		}
		if !sameColor(got, tc.c) {
			rg, gg, bg, ag := got.RGBA()
			rw, gw, bw, aw := tc.c.RGBA()
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}

	for _, s := range []string{"nonsens", "#12", "#zz0000", ""} {
		if _, err := ParseColor(s); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("%q: got err %v, want ErrInvalidOption", s, err)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(BuiltinColors["r"], 0.5)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.R != 0xff || n.G != 0 || n.B != 0 || n.A != 0x80 {
		t.Errorf("Got %v", n)
	}
	if o := color.NRGBAModel.Convert(Opaque(c)).(color.NRGBA); o.A != 0xff || o.R != 0xff {
		t.Errorf("Opaque: got %v", o)
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		s    string
		want Symbol
	}{
		{"o", CircleSymbol},
		{"+", PlusSymbol},
		{"d", ThinDiamondSymbol},
		{"D", DiamondSymbol},
		{"^", TriangleUpSymbol},
		{"*", StarSymbol},
		{"circle", CircleSymbol},
		{"Square", SquareSymbol},
		{"nabla", TriangleDownSymbol},
		{"", NoSymbol},
	}
	for i, tc := range tests {
		got, err := ParseSymbol(tc.s)
		if err != nil || got != tc.want {
			t.Errorf("%d %q: got %v, %v want %v", i, tc.s, got, err, tc.want)
		}
	}
	if _, err := ParseSymbol("Q"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Q: got err %v", err)
	}
	if CircleSymbol.String() != "o" || !CircleSymbol.Filled() || PlusSymbol.Filled() {
		t.Errorf("bad circle/plus symbol properties")
	}
}

func TestParseLineSpec(t *testing.T) {
	tests := []struct {
		spec string
		col  string
		lt   LineType
	}{
		{"k--", "k", DashedLine},
		{"--k", "k", DashedLine},
		{"b", "b", SolidLine},
		{"r-", "r", SolidLine},
		{"-.g", "g", DotDashLine},
		{"gray:", "gray", DottedLine},
		{"#ff0000--", "red", DashedLine},
	}
	for i, tc := range tests {
		c, lt, err := ParseLineSpec(tc.spec)
		if err != nil {
			t.Errorf("%d %q: unexpected error %v", i, tc.spec, err)
			continue
		}
		if lt != tc.lt || !sameColor(c, MustColor(tc.col)) {
			t.Errorf("%d %q: got %v %v, want %s %v", i, tc.spec, c, lt, tc.col, tc.lt)
		}
	}
	for _, spec := range []string{"", "--", "k~~", "1"} {
		if _, _, err := ParseLineSpec(spec); err == nil {
			t.Errorf("%q: missing error", spec)
		}
	}
}
