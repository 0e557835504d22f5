package target

import (
	"image/color"
)

// LegendEntry is one line of a legend: a glyph and its text.
type LegendEntry struct {
	Glyph     Glyph
	Text      string
	TextColor color.Color // nil uses the surface default
	TextSize  float64     // points, 0 uses the surface default
}

// LegendSource holds what a legend is built from. If Categories is
// non-empty the legend lists the categories, otherwise it lists the
// drawn Handles with their Labels.
type LegendSource struct {
	Handles     []GrobPoint
	Labels      []string      // parallel to Handles
	LabelColors []color.Color // parallel to Handles, may be shorter

	Categories []Category

	// Shared is the glyph of all category entries. Its face and edge
	// color are used for categories without a usable color.
	Shared Glyph
}

// BuildLegend returns the ordered legend entries for src. Handles reuse
// their own glyph. Categories get one entry each in declared order,
// independent of how many points of that category were drawn.
func BuildLegend(src LegendSource) []LegendEntry {
	if len(src.Categories) > 0 {
		entries := make([]LegendEntry, 0, len(src.Categories))
		for _, cat := range src.Categories {
			g := src.Shared
			if c, err := ParseColor(cat.Color); err == nil && cat.Color != "" {
				g.Face, g.Edge = c, c
			}
			entries = append(entries, LegendEntry{Glyph: g, Text: cat.Text})
		}
		return entries
	}

	n := len(src.Handles)
	if len(src.Labels) < n {
		n = len(src.Labels)
	}
	entries := make([]LegendEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = LegendEntry{Glyph: src.Handles[i].Glyph, Text: src.Labels[i]}
		if i < len(src.LabelColors) {
			entries[i].TextColor = src.LabelColors[i]
		}
	}
	return entries
}
