// Package geom draws target diagrams with gonum.org/v1/plot.
//
// A Surface is handed to target.Session.Target like any other
// target.Surface and rendered afterwards with Save or WriterTo:
//
//	surf := geom.New()
//	if _, err := session.Target(surf, bias, crmsd, opts); err != nil {
//		...
//	}
//	err := surf.Save(12*vg.Centimeter, 12*vg.Centimeter, "target.png")
package geom

import (
	"image/color"
	"io"

	"github.com/vdobler/target"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Surface is a target.Surface backed by a gonum plot.
type Surface struct {
	Plot *plot.Plot

	fixed       *box
	legendSized bool
	err         error
}

var _ target.Surface = (*Surface)(nil)

// New returns an empty surface with the legend in the upper right corner.
func New() *Surface {
	p := plot.New()
	p.Legend.Top = true
	return &Surface{Plot: p}
}

// Err returns the first error encountered while adding grobs.
func (s *Surface) Err() error { return s.err }

func (s *Surface) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Surface) SetAxes(layout *target.AxisLayout, xTitle, yTitle string) {
	b := axisBox(layout)
	s.fixed = &b
	b.apply(s.Plot)
	setAxis(&s.Plot.X, layout.X, xTitle)
	setAxis(&s.Plot.Y, layout.Y, yTitle)
	s.Plot.Add(origin{
		box:   b,
		style: draw.LineStyle{Color: color.Black, Width: vg.Points(1)},
	})
}

func (s *Surface) Point(p target.GrobPoint) {
	s.Plot.Add(markers{p})
}

// Text draws t with its bottom right corner at the data point.
func (s *Surface) Text(t target.GrobText) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: t.X, Y: t.Y}},
		Labels: []string{t.Text},
	})
	if err != nil {
		s.fail(err)
		return
	}
	sty := &l.TextStyle[0]
	sty.Color = t.Color
	if sty.Color == nil {
		sty.Color = color.Black
	}
	if t.Size > 0 {
		sty.Font.Size = vg.Points(t.Size)
	}
	sty.XAlign, sty.YAlign = text.XRight, text.YBottom
	s.Plot.Add(l)
}

func (s *Surface) Path(p target.GrobPath) {
	if p.LineType == target.BlankLine || len(p.X) < 2 {
		return
	}
	xys := make(plotter.XYs, len(p.X))
	for i := range xys {
		xys[i].X, xys[i].Y = p.X[i], p.Y[i]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		s.fail(err)
		return
	}
	l.LineStyle = draw.LineStyle{
		Color:  p.Color,
		Width:  vg.Points(p.Width),
		Dashes: dashes(p.LineType),
	}
	if l.LineStyle.Color == nil {
		l.LineStyle.Color = color.Black
	}
	s.Plot.Add(l)
}

// Legend appends entries to the plot legend. Gonum legends have one
// text style; it takes the first text color and size given.
func (s *Surface) Legend(entries []target.LegendEntry) {
	for _, e := range entries {
		if e.TextColor != nil && s.Plot.Legend.TextStyle.Color == nil {
			s.Plot.Legend.TextStyle.Color = e.TextColor
		}
		if e.TextSize > 0 && !s.legendSized {
			s.Plot.Legend.TextStyle.Font.Size = vg.Points(e.TextSize)
			s.legendSized = true
		}
		s.Plot.Legend.Add(e.Text, thumbnail{e.Glyph})
	}
}

func dashes(lt target.LineType) []vg.Length {
	switch lt {
	case target.DashedLine:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case target.DotDashLine:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	case target.DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Output

func (s *Surface) ready() error {
	if s.err != nil {
		return s.err
	}
	if s.fixed != nil {
		s.fixed.apply(s.Plot)
	}
	return nil
}

// WriterTo renders the diagram in the given format, e.g. "png" or "svg".
func (s *Surface) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Plot.WriterTo(w, h, format)
}

// Save writes the diagram to file. The format follows the extension.
func (s *Surface) Save(w, h vg.Length, file string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Plot.Save(w, h, file)
}
