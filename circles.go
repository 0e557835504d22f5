package target

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Radii returns the radii of the reference circles for options with a
// resolved AxisMax: 0.7 and 1 times AxisMax by default, the explicit
// Circles not exceeding AxisMax, or 0.5 and 1 for normalized diagrams.
func Radii(opts *Options) []float64 {
	if opts.Normalized {
		return []float64{0.5, 1}
	}
	if len(opts.Circles) == 0 {
		return []float64{0.7 * opts.AxisMax, opts.AxisMax}
	}
	var radii []float64
	for _, r := range opts.Circles {
		if r <= opts.AxisMax {
			radii = append(radii, r)
		}
	}
	return radii
}

// CirclePath traces a circle of radius r around the origin with n+1
// vertices, the last one closing the circle.
func CirclePath(r float64, n int) (x, y []float64) {
	if n < 3 {
		n = 3
	}
	theta := vec.Linspace(0, 2*math.Pi, n+1)
	x = vec.Map(func(t float64) float64 { return r * math.Cos(t) }, theta)
	y = vec.Map(func(t float64) float64 { return r * math.Sin(t) }, theta)
	return x, y
}

// Circles returns the contours of a target diagram: the unit circle of a
// normalized diagram, the reference circles in the circle line style and
// the observational uncertainty circle.
func Circles(opts *Options, th Theme) ([]GrobPath, error) {
	spec := opts.CircleLineSpec
	if spec == "" {
		spec = "k--"
	}
	col, lt, err := ParseLineSpec(spec)
	if err != nil {
		return nil, &OpError{Op: "target.circles", Err: err}
	}
	width := opts.CircleLineWidth
	if width <= 0 {
		width = 1
	}

	var paths []GrobPath
	add := func(r float64, c string, lt LineType) {
		x, y := CirclePath(r, th.CircleSegments)
		paths = append(paths, GrobPath{X: x, Y: y, Color: MustColor(c), Width: width, LineType: lt})
	}

	if opts.Normalized {
		add(1, "k", SolidLine)
	}
	for _, r := range Radii(opts) {
		if r <= 0 {
			continue
		}
		x, y := CirclePath(r, th.CircleSegments)
		paths = append(paths, GrobPath{X: x, Y: y, Color: col, Width: width, LineType: lt})
	}
	if opts.ObsUncertainty > 0 {
		add(opts.ObsUncertainty, th.UncertaintyColor, th.UncertaintyLineType)
	}
	return paths, nil
}
