package geom

import (
	"math"

	"github.com/vdobler/target"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// box is the fixed data range of the diagram.
type box struct {
	xmin, xmax float64
	ymin, ymax float64
}

func axisBox(layout *target.AxisLayout) box {
	xmin, xmax := extent(layout.X)
	ymin, ymax := extent(layout.Y)
	return box{xmin, xmax, ymin, ymax}
}

// extent is [-Max, Max] widened to cover all ticks.
func extent(a target.Axis) (lo, hi float64) {
	lo, hi = -a.Max, a.Max
	for _, t := range a.Ticks {
		lo, hi = math.Min(lo, t), math.Max(hi, t)
	}
	return lo, hi
}

// apply fixes the axis ranges of p. Plotters added to p widen the
// ranges, so apply has to be called again before drawing.
func (b box) apply(p *plot.Plot) {
	p.X.Min, p.X.Max = b.xmin, b.xmax
	p.Y.Min, p.Y.Max = b.ymin, b.ymax
}

// setAxis installs the ticks and title of a on pa. A tick with an empty
// label is drawn as a minor tick.
func setAxis(pa *plot.Axis, a target.Axis, title string) {
	ticks := make(plot.ConstantTicks, len(a.Ticks))
	for i, t := range a.Ticks {
		ticks[i] = plot.Tick{Value: t}
		if i < len(a.Labels) {
			ticks[i].Label = a.Labels[i]
		}
	}
	pa.Tick.Marker = ticks
	pa.Label.Text = title
}

// ----------------------------------------------------------------------------
// Origin

// origin draws the two axis lines through (0,0).
type origin struct {
	box
	style draw.LineStyle
}

func (o origin) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	lines := [][]vg.Point{
		{{X: trX(o.xmin), Y: trY(0)}, {X: trX(o.xmax), Y: trY(0)}},
		{{X: trX(0), Y: trY(o.ymin)}, {X: trX(0), Y: trY(o.ymax)}},
	}
	c.StrokeLines(o.style, c.ClipLinesXY(lines...)...)
}
