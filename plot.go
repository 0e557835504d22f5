package target

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Session is the state shared by the calls drawing one diagram: a fresh
// call and the overlay calls following it. A Session must not be used
// from more than one goroutine; create one per diagram.
type Session struct {
	// Theme is used for drawing. The zero Theme means DefaultTheme.
	Theme Theme

	// Logger receives debug records and warnings. Nil discards them.
	Logger *slog.Logger

	// Tick counts of the last auto layout per axis.
	xmemo, ymemo tickMemo

	// fresh is the layout of the last non-overlay call.
	fresh *AxisLayout

	warnings []string
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewSession returns a session with the default theme logging to logger.
func NewSession(logger *slog.Logger) *Session {
	return &Session{Theme: DefaultTheme, Logger: logger}
}

func (s *Session) theme() Theme {
	if s.Theme == (Theme{}) {
		return DefaultTheme
	}
	return s.Theme
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return discard
	}
	return s.Logger
}

// Warnf reports a recoverable problem. Warnings are logged and kept in
// the session.
func (s *Session) Warnf(f string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(f, args...), "\n")
	s.warnings = append(s.warnings, msg)
	s.logger().Warn(msg)
}

// Warnings returns all warnings issued in this session.
func (s *Session) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// FreshLayout returns the layout of the last fresh diagram call or nil.
func (s *Session) FreshLayout() *AxisLayout { return s.fresh }

// Result describes one diagram call.
type Result struct {
	// Layout is the axis layout computed for the call. Overlay calls
	// compute it but leave the surface axes untouched.
	Layout *AxisLayout

	// Options are the options after back-filling axismax and the tick
	// label positions.
	Options Options

	// Limit is the clipping limit applied to the markers.
	Limit float64

	Circles  []GrobPath
	Markers  *MarkerResult
	Warnings []string
}

// Target draws a target diagram of bias (y axis) over the centered RMS
// difference crmsd (x axis) onto surf. A fresh call sets the axes and
// draws the reference circles before the markers. With opts.Overlay the
// markers are added to the diagram of the preceding fresh call; circles
// are added only if the overlay sets its own axismax or circles.
func (s *Session) Target(surf Surface, bias, crmsd []float64, opts Options) (*Result, error) {
	const op = "target.diagram"
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(bias) != len(crmsd) {
		return nil, opErrorf(op, ErrLengthMismatch, "%d bias values but %d crmsd values",
			len(bias), len(crmsd))
	}
	x, y := crmsd, bias
	auto := opts.AxisMax == 0
	if err := checkMarkers(x, y, &opts); err != nil {
		return nil, err
	}

	// Work on a copy: back-filling must not alter the caller's slices.
	opts.XTickLabelPos = append([]float64(nil), opts.XTickLabelPos...)
	opts.YTickLabelPos = append([]float64(nil), opts.YTickLabelPos...)
	layout, err := s.Layout(x, y, &opts)
	if err != nil {
		return nil, err
	}
	res := &Result{Layout: layout, Limit: opts.AxisMax}
	nwarn := len(s.warnings)

	if opts.Overlay {
		if auto && s.fresh != nil {
			res.Limit = s.fresh.AxisMax
		}
		if !auto || len(opts.Circles) > 0 {
			if res.Circles, err = Circles(&opts, s.theme()); err != nil {
				return nil, err
			}
		}
		for _, c := range res.Circles {
			c.Draw(surf)
		}
		s.logger().Debug("diagram.overlay", "points", len(x), "circles", len(res.Circles), "limit", res.Limit)
	} else {
		surf.SetAxes(layout, axisTitle(opts.XLabel, layout.X.Offset), axisTitle(opts.YLabel, layout.Y.Offset))
		if res.Circles, err = Circles(&opts, s.theme()); err != nil {
			return nil, err
		}
		for _, c := range res.Circles {
			c.Draw(surf)
		}
		s.fresh = layout
		s.logger().Debug("diagram.fresh", "points", len(x), "circles", len(res.Circles), "limit", res.Limit)
	}

	if res.Markers, err = renderMarkers(surf, s.theme(), x, y, &opts, res.Limit); err != nil {
		return nil, err
	}
	for _, w := range res.Markers.Warnings {
		s.Warnf("%s", w)
	}
	if res.Markers.Clipped > 0 {
		s.logger().Debug("diagram.clipped", "n", res.Markers.Clipped, "limit", res.Limit)
	}

	res.Options = opts
	res.Warnings = append([]string(nil), s.warnings[nwarn:]...)
	return res, nil
}

// axisTitle appends a scientific notation offset to an axis title.
func axisTitle(title, offset string) string {
	if offset == "" || offset == NoOffset {
		return title
	}
	if title == "" {
		return "(" + offset + ")"
	}
	return title + " (" + offset + ")"
}
