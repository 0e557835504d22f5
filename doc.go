// Package target draws target diagrams: the bias of a set of models over
// their centered RMS difference to a reference, surrounded by circles of
// constant total RMS difference.
//
// # Sessions and Overlays
//
// All drawing goes through a Session. A fresh call lays out the axes,
// draws the reference circles and the markers; an overlay call
// (Options.Overlay) adds the markers of a second dataset to the same
// surface. The session remembers the tick counts of its last layout so
// an overlay whose own range is degenerate still gets usable ticks:
//
//	s := target.NewSession(nil)
//	rec := &target.Recorder{}
//	_, err := s.Target(rec, bias, crmsd, target.DefaultOptions())
//	...
//	opts := target.DefaultOptions()
//	opts.Overlay = target.On
//	_, err = s.Target(rec, bias2, crmsd2, opts)
//
// # Axis Layout
//
// Both axes are symmetric about zero. Their extent comes either from the
// data (axismax 0) or from Options.AxisMax and is rounded up to a nice
// 1, 2 or 5 times a power of ten. An axis whose data are all zero takes
// the extent of the other axis. Ticks are evenly spaced and contain
// zero exactly; the label at zero is left blank. Very large or very small
// extents put a common "×10^k" offset into the axis title.
//
// # Markers and Legends
//
// Markers are labeled in one of three ways, see LabelSource: not at all,
// by an ordered list of texts (one per point) or by a list of categories
// with colors. With Options.MarkerLegend each point gets its own symbol
// and color from DefaultPalette, which has 70 distinct combinations, or
// from the explicit Options.Markers. Points outside [-axismax, axismax]
// are not drawn.
//
// # Surfaces
//
// The engine draws onto a Surface. Recorder keeps the drawing in memory;
// the geom package renders through gonum.org/v1/plot and the chartsurface
// package through go-chart.
//
// The bias and centered RMS difference of model output against a
// reference are computed by the stat package.
package target
