package target

import (
	"math"
)

// Range is the symmetric extent [-Max, Max] of both axes before tick
// layout.
type Range struct {
	MaxX, MaxY float64
	Auto       bool // extents come from the data, not from axismax
}

// ResolveRange determines the axis extremes. With axismax == 0 they are
// the largest absolute values in x and y, otherwise both are axismax.
// Whole numbers are normalized; empty or all-zero data yields 0.
func ResolveRange(x, y []float64, axismax float64) Range {
	if axismax != 0 {
		m := NormalizeWhole(axismax)
		return Range{MaxX: m, MaxY: m}
	}
	return Range{
		MaxX: NormalizeWhole(MaxAbs(x)),
		MaxY: NormalizeWhole(MaxAbs(y)),
		Auto: true,
	}
}

// -------------------------------------------------------------------------
// Nice ticks

// MaxTickBins is the largest number of steps NiceTicks fits into the
// range. Rounding the ends outwards may add one more on either side.
const MaxTickBins = 9

var niceSteps = []float64{1, 2, 5, 10}

// NiceTicks returns round tick values enclosing [lo, hi]. The step is the
// smallest of 1, 2 or 5 times a power of ten which covers hi-lo in at most
// MaxTickBins steps. A degenerate range yields the single tick lo.
func NiceTicks(lo, hi float64) []float64 {
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return []float64{lo}
	}
	raw := (hi - lo) / MaxTickBins
	scale := math.Pow10(exponent(raw))
	step := 10 * scale
	for _, s := range niceSteps {
		if s*scale >= raw*(1-1e-12) {
			step = s * scale
			break
		}
	}

	first := math.Floor(lo/step + 1e-10)
	last := math.Ceil(hi/step - 1e-10)
	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, k*step+0)
	}
	return ticks
}

// countPositive is the number of ticks strictly greater than zero.
func countPositive(ticks []float64) int {
	n := 0
	for _, t := range ticks {
		if t > ZeroTolerance {
			n++
		}
	}
	return n
}

// SymmetricTicks returns the 2n+1 ticks k*max/n for k = -n..n. The
// middle tick is exactly zero and the ends are exactly -max and max.
func SymmetricTicks(max float64, n int) []float64 {
	if n <= 0 {
		return []float64{0}
	}
	ticks := make([]float64, 2*n+1)
	for k := -n; k <= n; k++ {
		ticks[k+n] = float64(k) * max / float64(n)
	}
	ticks[0], ticks[n], ticks[2*n] = -max, 0, max
	return ticks
}

// -------------------------------------------------------------------------
// Axis layout

// NoOffset is the offset of an axis whose labels show plain values.
const NoOffset = "None"

// Axis is the tick layout of one axis.
type Axis struct {
	Ticks  []float64
	Labels []string // parallel to Ticks
	Offset string   // "×10^k" or NoOffset
	Max    float64  // the axis shows [-Max, Max]
	NTicks int      // positive ticks of the auto layout, 0 for explicit ticks
}

// AxisLayout is the layout of both axes of a target diagram.
type AxisLayout struct {
	X, Y Axis

	// AxisMax is the resolved half range used for clipping markers.
	AxisMax float64
}

// tickMemo remembers the last usable auto layout of one axis.
type tickMemo struct {
	n   int
	max float64
}

// Layout computes ticks and tick labels for the data x, y. If opts.AxisMax
// or the tick label positions are unset, Layout fills them in with the
// resolved values. These are the only fields written.
//
// An axis whose auto range has no positive tick takes the tick count and
// extreme of the other axis. If both are degenerate they reuse the last
// layout of this session; without one the result is ErrNoTickCount.
func (s *Session) Layout(x, y []float64, opts *Options) (*AxisLayout, error) {
	const op = "target.layout"

	r := ResolveRange(x, y, opts.AxisMax)
	maxx, maxy := r.MaxX, r.MaxY
	s.logger().Debug("layout.range", "maxx", maxx, "maxy", maxy, "auto", r.Auto)

	var nx, ny int
	if len(opts.Ticks) == 0 {
		var err error
		if maxx, nx, maxy, ny, err = s.autoAxes(op, maxx, maxy, r.Auto); err != nil {
			return nil, err
		}
	} else if r.Auto {
		maxx = explicitExtreme(maxx, opts.Ticks)
		maxy = explicitExtreme(maxy, opts.Ticks)
	}
	if r.Auto {
		opts.AxisMax = math.Max(maxx, maxy)
	}

	if opts.EqualAxes {
		if maxx > maxy {
			maxy, ny = maxx, nx
		} else {
			maxx, nx = maxy, ny
		}
	}
	maxx, maxy = NormalizeWhole(maxx), NormalizeWhole(maxy)

	var xt, yt []float64
	if len(opts.Ticks) > 0 {
		xt = append([]float64(nil), opts.Ticks...)
		yt = append([]float64(nil), opts.Ticks...)
	} else {
		xt = SymmetricTicks(maxx, nx)
		yt = SymmetricTicks(maxy, ny)
	}
	if len(opts.XTickLabelPos) == 0 {
		opts.XTickLabelPos = append([]float64(nil), xt...)
	}
	if len(opts.YTickLabelPos) == 0 {
		opts.YTickLabelPos = append([]float64(nil), yt...)
	}

	layout := &AxisLayout{
		X:       Axis{Ticks: xt, Max: maxx, NTicks: nx},
		Y:       Axis{Ticks: yt, Max: maxy, NTicks: ny},
		AxisMax: opts.AxisMax,
	}
	var err error
	if layout.X.Labels, layout.X.Offset, err = FormatTickLabels(xt, opts.XTickLabelPos, maxx); err != nil {
		return nil, &OpError{Op: op, Err: err, Msg: "x axis"}
	}
	if layout.Y.Labels, layout.Y.Offset, err = FormatTickLabels(yt, opts.YTickLabelPos, maxy); err != nil {
		return nil, &OpError{Op: op, Err: err, Msg: "y axis"}
	}
	s.logger().Debug("layout.axes", "axismax", layout.AxisMax,
		"nx", nx, "ny", ny, "xoffset", layout.X.Offset, "yoffset", layout.Y.Offset)
	return layout, nil
}

// autoAxis runs the nice tick locator on [-max, max] and returns the axis
// extreme and positive tick count, 0 for a degenerate range. In auto mode
// the extreme grows to the outermost tick.
func autoAxis(memo *tickMemo, max float64, auto bool) (float64, int) {
	ticks := NiceTicks(-max, max)
	n := countPositive(ticks)
	if n == 0 {
		return max, 0
	}
	if auto {
		max = ticks[len(ticks)-1]
	}
	*memo = tickMemo{n: n, max: max}
	return max, n
}

// autoAxes lays out both axes. A degenerate axis borrows the extreme and
// tick count of the other axis, or failing that the last layout of this
// session.
func (s *Session) autoAxes(op string, maxx, maxy float64, auto bool) (float64, int, float64, int, error) {
	mx, nx := autoAxis(&s.xmemo, maxx, auto)
	my, ny := autoAxis(&s.ymemo, maxy, auto)
	switch {
	case nx == 0 && ny > 0:
		s.logger().Debug("layout.borrow_ticks", "axis", "x", "n", ny, "max", my)
		mx, nx = my, ny
	case ny == 0 && nx > 0:
		s.logger().Debug("layout.borrow_ticks", "axis", "y", "n", nx, "max", mx)
		my, ny = mx, nx
	}
	var err error
	if mx, nx, err = s.reuse(op, "x", s.xmemo, mx, nx); err != nil {
		return 0, 0, 0, 0, err
	}
	if my, ny, err = s.reuse(op, "y", s.ymemo, my, ny); err != nil {
		return 0, 0, 0, 0, err
	}
	return mx, nx, my, ny, nil
}

// reuse replaces a degenerate axis by the saved layout.
func (s *Session) reuse(op, name string, memo tickMemo, max float64, n int) (float64, int, error) {
	if n > 0 {
		return max, n, nil
	}
	if memo.n == 0 {
		return 0, 0, opErrorf(op, ErrNoTickCount,
			"%s axis range [%g, %g] has no positive tick and no earlier layout exists", name, -max, max)
	}
	s.logger().Debug("layout.reuse_ticks", "axis", name, "n", memo.n, "max", memo.max)
	return memo.max, memo.n, nil
}

// explicitExtreme picks the auto extreme of an axis with explicit ticks.
func explicitExtreme(max float64, ticks []float64) float64 {
	if max == 0 {
		return MaxAbs(ticks)
	}
	t := NiceTicks(-max, max)
	return t[len(t)-1]
}
