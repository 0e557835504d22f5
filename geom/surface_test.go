package geom

import (
	"bytes"
	"math"
	"testing"

	"github.com/vdobler/target"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var unitLayout = &target.AxisLayout{
	X:       target.Axis{Ticks: []float64{-1, 0, 1}, Labels: []string{"-1", "", "1"}, Offset: target.NoOffset, Max: 1},
	Y:       target.Axis{Ticks: []float64{-1, 0, 1}, Labels: []string{"-1", "", "1"}, Offset: target.NoOffset, Max: 1},
	AxisMax: 1,
}

func render(t *testing.T, s *Surface, format string) []byte {
	t.Helper()
	wt, err := s.WriterTo(8*vg.Centimeter, 8*vg.Centimeter, format)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	return buf.Bytes()
}

func TestSurfaceTarget(t *testing.T) {
	opts := target.DefaultOptions()
	opts.MarkerLegend = target.On
	opts.MarkerLabel = target.Ordered("M1", "M2", "M3")
	opts.ObsUncertainty = 0.5

	surf := New()
	res, err := target.NewSession(nil).Target(surf, []float64{0, 4, -1}, []float64{1, -3, 2}, opts)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if surf.Plot.X.Min != -res.Layout.X.Max || surf.Plot.Y.Max != res.Layout.Y.Max {
		t.Errorf("Got x range [%g,%g], y range [%g,%g]",
			surf.Plot.X.Min, surf.Plot.X.Max, surf.Plot.Y.Min, surf.Plot.Y.Max)
	}
	ticks, ok := surf.Plot.X.Tick.Marker.(plot.ConstantTicks)
	if !ok || len(ticks) != len(res.Layout.X.Ticks) {
		t.Fatalf("Got tick marker %#v", surf.Plot.X.Tick.Marker)
	}
	for i, tick := range ticks {
		if tick.Value != res.Layout.X.Ticks[i] || tick.Label != res.Layout.X.Labels[i] {
			t.Errorf("Tick %d: got %v", i, tick)
		}
	}
	if surf.Plot.X.Label.Text != "uRMSD" || surf.Plot.Y.Label.Text != "Bias" {
		t.Errorf("Got titles %q %q", surf.Plot.X.Label.Text, surf.Plot.Y.Label.Text)
	}

	png := render(t, surf, "png")
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("Not a PNG: % x", png[:8])
	}
	svg := render(t, surf, "svg")
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("Not an SVG")
	}
}

func TestSurfaceKeepsAxes(t *testing.T) {
	surf := New()
	surf.SetAxes(unitLayout, "x", "y")
	surf.Point(target.GrobPoint{X: 5, Y: -7, Glyph: target.Glyph{Symbol: target.CircleSymbol, Size: 10}})
	surf.Text(target.GrobText{X: 3, Y: 3, Text: "far"})
	render(t, surf, "png")
	if surf.Plot.X.Min != -1 || surf.Plot.X.Max != 1 || surf.Plot.Y.Min != -1 || surf.Plot.Y.Max != 1 {
		t.Errorf("Got x range [%g,%g], y range [%g,%g]",
			surf.Plot.X.Min, surf.Plot.X.Max, surf.Plot.Y.Min, surf.Plot.Y.Max)
	}
}

func TestSurfaceAllSymbols(t *testing.T) {
	surf := New()
	surf.SetAxes(unitLayout, "x", "y")
	var entries []target.LegendEntry
	for i, code := range []string{".", "o", "+", "x", "s", "D", "d", "^", "v", "<", ">", "p", "h", "*", "none"} {
		sym, err := target.ParseSymbol(code)
		if err != nil {
			t.Fatalf("%q: %v", code, err)
		}
		g := target.Glyph{
			Symbol:    sym,
			Size:      12,
			Face:      target.SetAlpha(target.MustColor("y"), 0.5),
			Edge:      target.MustColor("k"),
			EdgeWidth: 2,
		}
		a := 2 * math.Pi * float64(i) / 15
		surf.Point(target.GrobPoint{X: 0.8 * math.Cos(a), Y: 0.8 * math.Sin(a), Glyph: g})
		entries = append(entries, target.LegendEntry{Glyph: g, Text: code})
	}
	surf.Legend(entries)
	render(t, surf, "png")
}

func TestSurfacePaths(t *testing.T) {
	surf := New()
	surf.SetAxes(unitLayout, "x", "y")
	for _, lt := range []target.LineType{target.BlankLine, target.SolidLine, target.DashedLine, target.DotDashLine, target.DottedLine} {
		x, y := target.CirclePath(0.2*float64(lt+1), 50)
		surf.Path(target.GrobPath{X: x, Y: y, Color: target.MustColor("b"), Width: 1, LineType: lt})
	}
	if err := surf.Err(); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	render(t, surf, "png")

	surf.Path(target.GrobPath{X: []float64{0, math.NaN()}, Y: []float64{0, 1}, LineType: target.SolidLine})
	if surf.Err() == nil {
		t.Fatalf("Missing error for NaN path")
	}
	if _, err := surf.WriterTo(vg.Inch, vg.Inch, "png"); err == nil {
		t.Errorf("WriterTo ignored error")
	}
}

func TestDashes(t *testing.T) {
	if dashes(target.SolidLine) != nil || len(dashes(target.DashedLine)) != 2 || len(dashes(target.DotDashLine)) != 4 {
		t.Errorf("Unexpected dash patterns")
	}
}
