// Package chartsurface draws target diagrams with go-chart.
//
// go-chart knows only round dots, so every marker symbol is drawn as a
// dot in its face color (line-only symbols in their edge color). Text
// annotations and legend entries are go-chart annotations.
package chartsurface

import (
	"image/color"
	"io"

	"github.com/vdobler/target"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Surface is a target.Surface collecting go-chart series.
type Surface struct {
	Chart chart.Chart

	// LegendFontSize is the font size of legend texts in points for
	// entries without their own size.
	LegendFontSize float64

	max     [2]float64 // axis half ranges, x and y
	entries []target.LegendEntry
}

var _ target.Surface = (*Surface)(nil)

// New returns an empty surface of the given size in pixels.
func New(width, height int) *Surface {
	return &Surface{
		Chart: chart.Chart{
			Width:      width,
			Height:     height,
			Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		},
		LegendFontSize: 8,
		max:            [2]float64{1, 1},
	}
}

func (s *Surface) SetAxes(layout *target.AxisLayout, xTitle, yTitle string) {
	s.max = [2]float64{layout.X.Max, layout.Y.Max}
	s.Chart.XAxis = chart.XAxis{
		Name:  xTitle,
		Range: &chart.ContinuousRange{Min: -layout.X.Max, Max: layout.X.Max},
		Ticks: ticks(layout.X),
	}
	s.Chart.YAxis = chart.YAxis{
		Name:  yTitle,
		Range: &chart.ContinuousRange{Min: -layout.Y.Max, Max: layout.Y.Max},
		Ticks: ticks(layout.Y),
	}
}

func ticks(a target.Axis) []chart.Tick {
	ts := make([]chart.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		ts[i] = chart.Tick{Value: t}
		if i < len(a.Labels) {
			ts[i].Label = a.Labels[i]
		}
	}
	return ts
}

func (s *Surface) Point(p target.GrobPoint) {
	if p.Glyph.Symbol == target.NoSymbol {
		return
	}
	s.Chart.Series = append(s.Chart.Series, chart.ContinuousSeries{
		XValues: []float64{p.X},
		YValues: []float64{p.Y},
		Style:   dotStyle(p.Glyph),
	})
}

func (s *Surface) Text(t target.GrobText) {
	s.Chart.Series = append(s.Chart.Series, chart.AnnotationSeries{
		Annotations: []chart.Value2{{
			XValue: t.X,
			YValue: t.Y,
			Label:  t.Text,
			Style:  textStyle(t.Color, t.Size),
		}},
	})
}

func (s *Surface) Path(p target.GrobPath) {
	if p.LineType == target.BlankLine || len(p.X) < 2 {
		return
	}
	s.Chart.Series = append(s.Chart.Series, chart.ContinuousSeries{
		XValues: p.X,
		YValues: p.Y,
		Style: chart.Style{
			StrokeColor:     drawingColor(p.Color, drawing.ColorBlack),
			StrokeWidth:     p.Width,
			StrokeDashArray: dashes(p.LineType),
		},
	})
}

// Legend collects entries; they are placed when rendering.
func (s *Surface) Legend(entries []target.LegendEntry) {
	s.entries = append(s.entries, entries...)
}

// legend lays out the entries top down in the upper left corner of the
// data area.
func (s *Surface) legend() []chart.Series {
	if len(s.entries) == 0 {
		return nil
	}
	xmax, ymax := s.max[0], s.max[1]
	step := 0.08 * ymax
	annotations := make([]chart.Value2, len(s.entries))
	var series []chart.Series
	for i, e := range s.entries {
		y := 0.92*ymax - float64(i)*step
		size := e.TextSize
		if size <= 0 {
			size = s.LegendFontSize
		}
		annotations[i] = chart.Value2{
			XValue: -0.86 * xmax,
			YValue: y,
			Label:  e.Text,
			Style:  textStyle(e.TextColor, size),
		}
		if e.Glyph.Symbol == target.NoSymbol {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{-0.92 * xmax},
			YValues: []float64{y},
			Style:   dotStyle(e.Glyph),
		})
	}
	return append(series, chart.AnnotationSeries{Annotations: annotations})
}

// Render writes the diagram with the given renderer, e.g. chart.PNG or
// chart.SVG.
func (s *Surface) Render(rp chart.RendererProvider, w io.Writer) error {
	ch := s.Chart
	ch.Series = append(append([]chart.Series(nil), s.Chart.Series...), s.legend()...)
	return ch.Render(rp, w)
}

// ----------------------------------------------------------------------------
// Styles

func dotStyle(g target.Glyph) chart.Style {
	c := g.Face
	if !g.Symbol.Filled() || c == nil {
		c = g.Edge
	}
	size := g.Size / 2
	if g.Symbol == target.PointSymbol {
		size *= 0.4
	}
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    size,
		DotColor:    drawingColor(c, drawing.ColorRed),
	}
}

func textStyle(c color.Color, size float64) chart.Style {
	sty := chart.Style{
		FontColor:   drawingColor(c, drawing.ColorBlack),
		FillColor:   drawing.ColorTransparent,
		StrokeColor: drawing.ColorTransparent,
	}
	if size > 0 {
		sty.FontSize = size
	}
	return sty
}

func drawingColor(c color.Color, def drawing.Color) drawing.Color {
	if c == nil {
		return def
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func dashes(lt target.LineType) []float64 {
	switch lt {
	case target.DashedLine:
		return []float64{6, 3}
	case target.DotDashLine:
		return []float64{6, 2, 1, 2}
	case target.DottedLine:
		return []float64{1, 2}
	}
	return nil
}
