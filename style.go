package target

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SetAlpha returns c with its alpha channel replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
	return n
}

// Opaque returns c with full alpha.
func Opaque(c color.Color) color.Color {
	return SetAlpha(c, 1)
}

// -------------------------------------------------------------------------
// Marker symbols

// Symbol is the shape of a marker.
type Symbol int

const (
	NoSymbol Symbol = iota
	PointSymbol
	CircleSymbol
	PlusSymbol
	CrossSymbol
	SquareSymbol
	DiamondSymbol
	ThinDiamondSymbol
	TriangleUpSymbol
	TriangleDownSymbol
	TriangleLeftSymbol
	TriangleRightSymbol
	PentagonSymbol
	HexagonSymbol
	StarSymbol
)

var symbolCodes = map[Symbol]string{
	NoSymbol:            "none",
	PointSymbol:         ".",
	CircleSymbol:        "o",
	PlusSymbol:          "+",
	CrossSymbol:         "x",
	SquareSymbol:        "s",
	DiamondSymbol:       "D",
	ThinDiamondSymbol:   "d",
	TriangleUpSymbol:    "^",
	TriangleDownSymbol:  "v",
	TriangleLeftSymbol:  "<",
	TriangleRightSymbol: ">",
	PentagonSymbol:      "p",
	HexagonSymbol:       "h",
	StarSymbol:          "*",
}

// String returns the one character code of the symbol, e.g. "o".
func (s Symbol) String() string {
	if c, ok := symbolCodes[s]; ok {
		return c
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// Filled reports whether the symbol encloses an area which gets the face
// color. Line-only symbols like + and x are drawn in the edge color.
func (s Symbol) Filled() bool {
	switch s {
	case NoSymbol, PlusSymbol, CrossSymbol:
		return false
	}
	return true
}

// ParseSymbol converts a symbol code like "o", "s" or "^" or a long name
// like "circle" to a Symbol.
func ParseSymbol(s string) (Symbol, error) {
	for sym, code := range symbolCodes {
		if code == s {
			return sym, nil
		}
	}
	switch strings.ToLower(s) {
	case "", "none":
		return NoSymbol, nil
	case "point", "dot":
		return PointSymbol, nil
	case "circle":
		return CircleSymbol, nil
	case "plus":
		return PlusSymbol, nil
	case "cross":
		return CrossSymbol, nil
	case "square":
		return SquareSymbol, nil
	case "diamond":
		return DiamondSymbol, nil
	case "thin-diamond":
		return ThinDiamondSymbol, nil
	case "delta", "triangle-up":
		return TriangleUpSymbol, nil
	case "nabla", "triangle-down":
		return TriangleDownSymbol, nil
	case "triangle-left":
		return TriangleLeftSymbol, nil
	case "triangle-right":
		return TriangleRightSymbol, nil
	case "pentagon":
		return PentagonSymbol, nil
	case "hexagon":
		return HexagonSymbol, nil
	case "star":
		return StarSymbol, nil
	}
	return NoSymbol, fmt.Errorf("%w: unknown marker symbol %q", ErrInvalidOption, s)
}

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are the named colors understood by ParseColor. The single
// letter names follow the usual plotting shorthands.
var BuiltinColors = map[string]color.RGBA{
	"r":       {0xff, 0x00, 0x00, 0xff},
	"g":       {0x00, 0x80, 0x00, 0xff},
	"b":       {0x00, 0x00, 0xff, 0xff},
	"c":       {0x00, 0xbf, 0xbf, 0xff},
	"m":       {0xbf, 0x00, 0xbf, 0xff},
	"y":       {0xbf, 0xbf, 0x00, 0xff},
	"k":       {0x00, 0x00, 0x00, 0xff},
	"w":       {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// ParseColor converts "#rrggbb", "#rrggbbaa" or a name from BuiltinColors
// to a color.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		ch := [4]uint8{3: 0xff}
		for i := 0; 2*i+1 < len(s); i++ {
			v, err := strconv.ParseUint(s[2*i+1:2*i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: bad color %q", ErrInvalidOption, s)
			}
			ch[i] = uint8(v)
		}
		return color.NRGBA{ch[0], ch[1], ch[2], ch[3]}, nil
	}
	if col, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidOption, s)
}

// MustColor is like ParseColor but panics on unknown colors. It is meant
// for colors already checked by Options.Validate.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// -------------------------------------------------------------------------
// Lines

// LineType is the dash pattern of a line.
type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DotDashLine
	DottedLine
)

// ParseLineSpec splits a line specification like "k--", "--k", "r:" or
// "b" into its color and line type.
func ParseLineSpec(spec string) (color.Color, LineType, error) {
	if spec == "" {
		return nil, BlankLine, fmt.Errorf("%w: empty line spec", ErrInvalidOption)
	}
	var col, style string
	switch {
	case strings.HasPrefix(spec, "#"):
		i := strings.IndexAny(spec[1:], "-:.")
		if i == -1 {
			col = spec
		} else {
			col, style = spec[:i+1], spec[i+1:]
		}
	case isAlpha(spec[len(spec)-1]):
		i := strings.LastIndexAny(spec, "-:.")
		col, style = spec[i+1:], spec[:i+1]
	default:
		i := strings.IndexAny(spec, "-:.")
		if i == -1 {
			col = spec
		} else {
			col, style = spec[:i], spec[i:]
		}
	}
	c, err := ParseColor(col)
	if err != nil {
		return nil, BlankLine, err
	}
	switch style {
	case "", "-":
		return c, SolidLine, nil
	case "--":
		return c, DashedLine, nil
	case "-.":
		return c, DotDashLine, nil
	case ":":
		return c, DottedLine, nil
	}
	return nil, BlankLine, fmt.Errorf("%w: bad line style %q in %q", ErrInvalidOption, style, spec)
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
