package target

import (
	"image/color"
	"math"
)

// MarkerResult describes the markers drawn by RenderMarkers.
type MarkerResult struct {
	// Handles are the drawn markers in point order. Clipped points
	// are missing.
	Handles []GrobPoint

	// Labels and LabelColors are parallel to Handles in legend mode.
	Labels      []string
	LabelColors []color.Color

	// Legend holds the entries handed to the surface, if any.
	Legend []LegendEntry

	// Clipped counts the points outside the axis limit.
	Clipped int

	Warnings []string
}

// RenderMarkers draws the points (x[i], y[i]) with |x[i]| <= limit and
// |y[i]| <= limit onto s. Markers come from the default palette or the
// explicit opts.Markers in legend mode, or share one symbol and color
// otherwise.
func RenderMarkers(s Surface, x, y []float64, opts Options, limit float64) (*MarkerResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return renderMarkers(s, DefaultTheme, x, y, &opts, limit)
}

func renderMarkers(s Surface, th Theme, x, y []float64, opts *Options, limit float64) (*MarkerResult, error) {
	if err := checkMarkers(x, y, opts); err != nil {
		return nil, err
	}
	in := func(i int) bool {
		return math.Abs(x[i]) <= limit && math.Abs(y[i]) <= limit
	}

	res := &MarkerResult{}
	if opts.MarkerLegend {
		legendMarkers(s, th, x, y, opts, in, res)
	} else {
		plainMarkers(s, th, x, y, opts, in, res)
	}
	res.Clipped = len(x) - len(res.Handles)
	if len(res.Legend) > 0 {
		for i := range res.Legend {
			res.Legend[i].TextSize = th.LegendFontSize
		}
		s.Legend(res.Legend)
	}
	return res, nil
}

// checkMarkers validates the labels against the number of points.
func checkMarkers(x, y []float64, opts *Options) error {
	const op = "target.markers"
	n := len(x)
	if len(y) != n {
		return opErrorf(op, ErrLengthMismatch, "%d x values but %d y values", n, len(y))
	}

	labels := opts.MarkerLabel
	switch labels.Kind() {
	case OrderedLabels:
		if labels.Len() < n {
			return opErrorf(op, ErrInsufficientLabels,
				"target: %d labels < %d markers, taylor: %d labels < %d markers",
				labels.Len(), n, labels.Len()+1, n+1)
		}
	case CategoryLabels:
		if labels.Len() > PaletteSize {
			return opErrorf(op, ErrTooManyCategories, "%d labels > %d", labels.Len(), PaletteSize)
		}
	}

	if !opts.MarkerLegend {
		return nil
	}
	if labels.Empty() && len(opts.Markers) == 0 {
		return &OpError{Op: op, Err: ErrNoMarkerLabels, Msg: "legend requested"}
	}
	if len(opts.Markers) == 0 && n > PaletteSize {
		return opErrorf(op, ErrTooManyMarkers, "%d points > %d, use explicit markers", n, PaletteSize)
	}
	if len(opts.Markers) > 0 && len(opts.Markers) < n {
		return opErrorf(op, ErrInsufficientLabels, "%d markers < %d points", len(opts.Markers), n)
	}
	return nil
}

// legendMarkers draws individually styled markers and collects their
// labels for the legend.
func legendMarkers(s Surface, th Theme, x, y []float64, opts *Options, in func(int) bool, res *MarkerResult) {
	labelColor := colorOr(opts.MarkerLabelColor, "k")
	for i := range x {
		if !in(i) {
			continue
		}
		var p GrobPoint
		var label string
		lc := labelColor
		if len(opts.Markers) > 0 {
			m := opts.Markers[i]
			p, label = GrobPoint{X: x[i], Y: y[i], Glyph: specGlyph(th, m, opts, i, len(x))}, m.Label
			if m.LabelColor != "" {
				lc = MustColor(m.LabelColor)
			}
		} else {
			p = GrobPoint{X: x[i], Y: y[i], Glyph: paletteGlyph(th, opts, i, len(x))}
			if opts.MarkerLabel.Kind() == OrderedLabels {
				label = opts.MarkerLabel.Texts()[i]
			}
		}
		p.Draw(s)
		res.Handles = append(res.Handles, p)
		res.Labels = append(res.Labels, label)
		res.LabelColors = append(res.LabelColors, lc)
	}

	if len(res.Handles) == 0 {
		res.Warnings = append(res.Warnings, "no markers within axis limit ranges")
		return
	}
	src := LegendSource{
		Handles:     res.Handles,
		Labels:      res.Labels,
		LabelColors: res.LabelColors,
	}
	if opts.MarkerLabel.Kind() == CategoryLabels && len(opts.Markers) == 0 {
		src.Categories = opts.MarkerLabel.Categories()
		src.Shared = sharedGlyph(th, opts)
	}
	res.Legend = BuildLegend(src)
}

// plainMarkers draws all points with the same glyph, labeling them with
// text or a category legend.
func plainMarkers(s Surface, th Theme, x, y []float64, opts *Options, in func(int) bool, res *MarkerResult) {
	g := sharedGlyph(th, opts)
	labelColor := colorOr(opts.MarkerLabelColor, "k")
	for i := range x {
		if !in(i) {
			continue
		}
		p := GrobPoint{X: x[i], Y: y[i], Glyph: g}
		p.Draw(s)
		res.Handles = append(res.Handles, p)
		if opts.MarkerLabel.Kind() == OrderedLabels {
			GrobText{X: x[i], Y: y[i], Text: opts.MarkerLabel.Texts()[i],
				Color: labelColor, Size: th.FontSize}.Draw(s)
		}
	}
	if opts.MarkerLabel.Kind() == CategoryLabels {
		res.Legend = BuildLegend(LegendSource{
			Categories: opts.MarkerLabel.Categories(),
			Shared:     g,
		})
	}
}

// sharedGlyph is the glyph of single colored markers. The face carries
// the alpha of the options.
func sharedGlyph(th Theme, opts *Options) Glyph {
	edge, face := opts.edgeFaceColors()
	sym, _ := ParseSymbol(opts.MarkerSymbol)
	return Glyph{
		Symbol:    sym,
		Size:      opts.MarkerSize,
		Face:      SetAlpha(MustColor(face), opts.Alpha),
		Edge:      MustColor(edge),
		EdgeWidth: th.PlainEdgeWidth,
	}
}

// MaxRecolored is the largest number of points for which a set marker
// color replaces the palette colors.
const MaxRecolored = 10

// paletteGlyph is the glyph of point i of n from the default palette.
func paletteGlyph(th Theme, opts *Options, i, n int) Glyph {
	sym, name := DefaultPalette.Assign(i)
	if opts.MarkerColor != "" && n <= MaxRecolored {
		name = opts.MarkerColor
	}
	c := MustColor(name)
	return Glyph{
		Symbol:    sym,
		Size:      opts.MarkerSize,
		Face:      SetAlpha(c, opts.Alpha),
		Edge:      Opaque(c),
		EdgeWidth: th.MarkerEdgeWidth,
	}
}

// specGlyph is the glyph of an explicit marker. Unset fields fall back
// to the options and the palette.
func specGlyph(th Theme, m MarkerSpec, opts *Options, i, n int) Glyph {
	g := paletteGlyph(th, opts, i, n)
	if m.Symbol != "" {
		g.Symbol, _ = ParseSymbol(m.Symbol)
	}
	if m.Size > 0 {
		g.Size = m.Size
	}
	if m.FaceColor != "" {
		g.Face = SetAlpha(MustColor(m.FaceColor), opts.Alpha)
		g.Edge = MustColor(m.FaceColor)
	}
	if m.EdgeColor != "" {
		g.Edge = MustColor(m.EdgeColor)
	}
	return g
}

// colorOr parses a validated color name, using def for the empty name.
func colorOr(name, def string) color.Color {
	if name == "" {
		name = def
	}
	return MustColor(name)
}
