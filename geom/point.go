package geom

import (
	"math"

	"github.com/vdobler/target"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Shape

// Shape draws a marker glyph with separate face and edge colors. The
// color of the draw.GlyphStyle is used as edge color if the glyph has
// none.
type Shape struct {
	Glyph target.Glyph
}

var _ draw.GlyphDrawer = Shape{}

// DrawGlyph implements draw.GlyphDrawer.
func (s Shape) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	edge := s.Glyph.Edge
	if edge == nil {
		edge = sty.Color
	}
	face := s.Glyph.Face
	if face == nil {
		face = edge
	}
	width := vg.Points(s.Glyph.EdgeWidth)
	if width <= 0 {
		width = vg.Points(1)
	}

	c.SetLineDash(nil, 0)
	c.SetLineWidth(width)
	switch sym := s.Glyph.Symbol; sym {
	case target.NoSymbol:
		return
	case target.PlusSymbol:
		c.SetColor(edge)
		c.Stroke(segments(pt, r, 0))
		return
	case target.CrossSymbol:
		c.SetColor(edge)
		c.Stroke(segments(pt, r, math.Pi/4))
		return
	case target.PointSymbol:
		r *= 0.4
		fallthrough
	default:
		p := outline(s.Glyph.Symbol, pt, r)
		c.SetColor(face)
		c.Fill(p)
		c.SetColor(edge)
		c.Stroke(p)
	}
}

// segments returns the two strokes of a plus sign rotated by rot.
func segments(pt vg.Point, r vg.Length, rot float64) vg.Path {
	var p vg.Path
	for _, a := range []float64{rot, rot + math.Pi/2} {
		d := polar(r, a)
		p.Move(pt.Sub(d))
		p.Line(pt.Add(d))
	}
	return p
}

// outline returns the closed outline of the filled symbol sym.
func outline(sym target.Symbol, pt vg.Point, r vg.Length) vg.Path {
	switch sym {
	case target.SquareSymbol:
		return regular(pt, 4, r*math.Sqrt2, math.Pi/4)
	case target.DiamondSymbol:
		return regular(pt, 4, r*math.Sqrt2, math.Pi/2)
	case target.ThinDiamondSymbol:
		var p vg.Path
		p.Move(pt.Add(vg.Point{Y: r}))
		p.Line(pt.Add(vg.Point{X: 0.6 * r}))
		p.Line(pt.Add(vg.Point{Y: -r}))
		p.Line(pt.Add(vg.Point{X: -0.6 * r}))
		p.Close()
		return p
	case target.TriangleUpSymbol:
		return regular(pt, 3, r, math.Pi/2)
	case target.TriangleDownSymbol:
		return regular(pt, 3, r, -math.Pi/2)
	case target.TriangleLeftSymbol:
		return regular(pt, 3, r, math.Pi)
	case target.TriangleRightSymbol:
		return regular(pt, 3, r, 0)
	case target.PentagonSymbol:
		return regular(pt, 5, r, math.Pi/2)
	case target.HexagonSymbol:
		return regular(pt, 6, r, math.Pi/2)
	case target.StarSymbol:
		var p vg.Path
		for i := 0; i < 10; i++ {
			rad := r
			if i%2 == 1 {
				rad = 0.4 * r
			}
			v := pt.Add(polar(rad, math.Pi/2+float64(i)*math.Pi/5))
			if i == 0 {
				p.Move(v)
			} else {
				p.Line(v)
			}
		}
		p.Close()
		return p
	}

	// Circles and anything unknown.
	var p vg.Path
	p.Move(pt.Add(vg.Point{X: r}))
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// regular returns a regular polygon with n corners on a circle of
// radius r, the first corner at angle rot.
func regular(pt vg.Point, n int, r vg.Length, rot float64) vg.Path {
	var p vg.Path
	for i := 0; i < n; i++ {
		v := pt.Add(polar(r, rot+2*math.Pi*float64(i)/float64(n)))
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	return p
}

func polar(r vg.Length, a float64) vg.Point {
	return vg.Point{X: r * vg.Length(math.Cos(a)), Y: r * vg.Length(math.Sin(a))}
}

// glyphStyle converts a marker glyph. Glyph sizes are diameters.
func glyphStyle(g target.Glyph) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  g.Edge,
		Radius: vg.Points(g.Size / 2),
		Shape:  Shape{Glyph: g},
	}
}

// ----------------------------------------------------------------------------
// Markers

// markers is a plotter for target.GrobPoints.
type markers []target.GrobPoint

var (
	_ plot.Plotter    = markers(nil)
	_ plot.DataRanger = markers(nil)
)

// Plot implements plot.Plotter. Markers outside the data area are
// skipped.
func (m markers) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, pt := range m {
		center := vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
		if !c.Contains(center) {
			continue
		}
		c.DrawGlyph(glyphStyle(pt.Glyph), center)
	}
}

// DataRange implements plot.DataRanger.
func (m markers) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, pt := range m {
		xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
		ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
	}
	return xmin, xmax, ymin, ymax
}

// ----------------------------------------------------------------------------
// Thumbnail

// thumbnail draws a legend glyph.
type thumbnail struct {
	glyph target.Glyph
}

var _ plot.Thumbnailer = thumbnail{}

func (t thumbnail) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(glyphStyle(t.glyph), c.Center())
}
