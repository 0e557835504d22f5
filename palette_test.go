package target

import (
	"testing"
)

func TestPaletteDistinct(t *testing.T) {
	if DefaultPalette.Size() != PaletteSize {
		t.Fatalf("Got size %d, want %d", DefaultPalette.Size(), PaletteSize)
	}

	type pair struct {
		sym Symbol
		col string
	}
	seen := make(map[pair]int)
	for i := 0; i < PaletteSize; i++ {
		sym, col := DefaultPalette.Assign(i)
		if j, ok := seen[pair{sym, col}]; ok {
			t.Errorf("Index %d repeats (%s, %s) of index %d", i, sym, col, j)
		}
		seen[pair{sym, col}] = i
		if _, err := ParseColor(col); err != nil {
			t.Errorf("Index %d: bad color %q", i, col)
		}
	}
}

func TestPaletteAssign(t *testing.T) {
	tests := []struct {
		i   int
		sym Symbol
		col string
	}{
		{0, PlusSymbol, "r"},
		{1, CircleSymbol, "b"},
		{6, TriangleDownSymbol, "k"},
		{7, PentagonSymbol, "r"},
		{9, StarSymbol, "g"},
		{10, PlusSymbol, "c"},
		{70, PlusSymbol, "r"},
	}
	for _, tc := range tests {
		sym, col := DefaultPalette.Assign(tc.i)
		if sym != tc.sym || col != tc.col {
			t.Errorf("%d: got (%s, %s), want (%s, %s)", tc.i, sym, col, tc.sym, tc.col)
		}
		// Pure function of the index.
		if s2, c2 := DefaultPalette.Assign(tc.i); s2 != sym || c2 != col {
			t.Errorf("%d: not deterministic", tc.i)
		}
	}
}
