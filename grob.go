package target

import (
	"fmt"
	"image/color"
)

// Canvas receives primitive graphical objects in data coordinates.
type Canvas interface {
	Point(GrobPoint)
	Text(GrobText)
	Path(GrobPath)
}

// Surface is the drawing target of a diagram: a canvas with axes and an
// optional legend. Implementations live in the geom and chartsurface
// packages; Recorder keeps everything in memory.
type Surface interface {
	Canvas

	// SetAxes fixes the axis range, ticks and tick labels. Titles carry
	// the axis offset if there is one.
	SetAxes(layout *AxisLayout, xTitle, yTitle string)

	// Legend adds entries to the legend of the surface.
	Legend(entries []LegendEntry)
}

// Grob is a graphical object.
type Grob interface {
	Draw(c Canvas)
}

// Glyph is the visual of a marker.
type Glyph struct {
	Symbol    Symbol
	Size      float64 // points
	Face      color.Color
	Edge      color.Color
	EdgeWidth float64 // points
}

func (g Glyph) String() string {
	return fmt.Sprintf("%s/%g/%s/%s", g.Symbol, g.Size, colorString(g.Face), colorString(g.Edge))
}

func colorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// -------------------------------------------------------------------------
// Grob Point

// GrobPoint is one marker. Drawn points are the handles from which a
// per-point legend is built.
type GrobPoint struct {
	X, Y  float64
	Glyph Glyph
}

func (p GrobPoint) Draw(c Canvas) { c.Point(p) }

// -------------------------------------------------------------------------
// Grob Text

// GrobText is a text annotation whose bottom right corner is at (X, Y).
type GrobText struct {
	X, Y  float64
	Text  string
	Color color.Color
	Size  float64 // points
}

func (t GrobText) Draw(c Canvas) { c.Text(t) }

// -------------------------------------------------------------------------
// Grob Path

// GrobPath is an open polyline.
type GrobPath struct {
	X, Y     []float64
	Color    color.Color
	Width    float64 // points
	LineType LineType
}

func (p GrobPath) Draw(c Canvas) { c.Path(p) }

// -------------------------------------------------------------------------
// Recorder

// Recorder is a Surface which only records what is drawn on it.
type Recorder struct {
	Layout         *AxisLayout
	XTitle, YTitle string
	Grobs          []Grob
	Entries        []LegendEntry
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) Point(p GrobPoint) { r.Grobs = append(r.Grobs, p) }
func (r *Recorder) Text(t GrobText)   { r.Grobs = append(r.Grobs, t) }
func (r *Recorder) Path(p GrobPath)   { r.Grobs = append(r.Grobs, p) }

func (r *Recorder) SetAxes(layout *AxisLayout, xTitle, yTitle string) {
	r.Layout, r.XTitle, r.YTitle = layout, xTitle, yTitle
}

func (r *Recorder) Legend(entries []LegendEntry) {
	r.Entries = append(r.Entries, entries...)
}

// Points returns the recorded markers in drawing order.
func (r *Recorder) Points() []GrobPoint {
	var points []GrobPoint
	for _, g := range r.Grobs {
		if p, ok := g.(GrobPoint); ok {
			points = append(points, p)
		}
	}
	return points
}

// Texts returns the recorded text annotations in drawing order.
func (r *Recorder) Texts() []GrobText {
	var texts []GrobText
	for _, g := range r.Grobs {
		if t, ok := g.(GrobText); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Paths returns the recorded polylines in drawing order.
func (r *Recorder) Paths() []GrobPath {
	var paths []GrobPath
	for _, g := range r.Grobs {
		if p, ok := g.(GrobPath); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// Replay draws all recorded grobs onto c.
func (r *Recorder) Replay(c Canvas) {
	for _, g := range r.Grobs {
		g.Draw(c)
	}
}
