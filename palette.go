package target

// Palette maps point indices to distinct (symbol, color) pairs.
type Palette struct {
	Symbols []Symbol
	Colors  []string
}

// DefaultPalette pairs ten symbols with seven colors. As 10 and 7 are
// coprime the first 70 indices give 70 different pairs.
var DefaultPalette = Palette{
	Symbols: []Symbol{
		PlusSymbol, CircleSymbol, CrossSymbol, SquareSymbol, ThinDiamondSymbol,
		TriangleUpSymbol, TriangleDownSymbol, PentagonSymbol, HexagonSymbol, StarSymbol,
	},
	Colors: []string{"r", "b", "g", "c", "m", "y", "k"},
}

// PaletteSize is the number of distinct pairs of DefaultPalette.
const PaletteSize = 70

// Assign returns the symbol and color for point i. Symbols and colors are
// cycled independently, so indices wrap after Size.
func (p Palette) Assign(i int) (Symbol, string) {
	if i < 0 {
		i = -i
	}
	return p.Symbols[i%len(p.Symbols)], p.Colors[i%len(p.Colors)]
}

// Size is the number of distinct pairs Assign produces before it repeats.
func (p Palette) Size() int {
	return lcm(len(p.Symbols), len(p.Colors))
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}
