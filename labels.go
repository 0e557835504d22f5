package target

import (
	"fmt"
	"math"
	"strconv"
)

// UseSciNotation reports whether an axis with extreme v shows its labels
// scaled by a common power of ten.
func UseSciNotation(v float64) bool {
	a := math.Abs(v)
	return (a > 0 && a < 1e-3) || a >= 1e4
}

// TickLabel formats v without floating point noise: 0.30000000000000004
// becomes "0.3" and 5.0 becomes "5". Values below 1e-3 in magnitude are
// printed like "1.0e-05".
func TickLabel(v float64) string {
	if a := math.Abs(v); a > 0 && a < 1e-3 {
		return fmt.Sprintf("%.1e", v)
	}
	return strconv.FormatFloat(RoundSig(v, 10), 'f', -1, 64)
}

// FormatTickLabels returns one label per tick for an axis with extreme max
// and the axis offset annotation. Only ticks found in pos are labeled;
// an empty pos labels all ticks. The tick at zero is always blank and
// ErrNoZeroTick is returned if there is none.
func FormatTickLabels(ticks, pos []float64, max float64) ([]string, string, error) {
	exp := exponent(max)
	sci := UseSciNotation(max)
	offset := NoOffset
	scale := 1.0
	if sci {
		offset = fmt.Sprintf("×10^%d", exp)
		scale = math.Pow10(-exp)
	}

	var filter *FloatSet
	if len(pos) > 0 {
		filter = NewFloatSet(pos...)
	}

	labels := make([]string, len(ticks))
	zero := -1
	for i, t := range ticks {
		if math.Abs(t) < ZeroTolerance && zero == -1 {
			zero = i
		}
		if filter != nil && !filter.Contains(t) {
			continue
		}
		labels[i] = TickLabel(t * scale)
	}
	if zero == -1 {
		return nil, "", fmt.Errorf("%w: ticks %v", ErrNoZeroTick, ticks)
	}
	labels[zero] = ""
	return labels, offset, nil
}
