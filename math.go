package target

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// WholeTolerance is the relative distance to the nearest integer below
// which a value is treated as a whole number.
const WholeTolerance = 1e-9

// ZeroTolerance is the absolute distance to zero below which a tick is
// considered the tick at the origin.
const ZeroTolerance = 1e-14

// NormalizeWhole returns the nearest integer if x is a whole number within
// WholeTolerance and x unchanged otherwise.
func NormalizeWhole(x float64) float64 {
	r := math.Round(x)
	if math.Abs(x-r) <= WholeTolerance*math.Max(1, math.Abs(x)) {
		return r
	}
	return x
}

// IsWhole reports whether x is a whole number within WholeTolerance.
func IsWhole(x float64) bool {
	return NormalizeWhole(x) == math.Round(x)
}

// MaxAbs is the largest absolute value in xs. It is 0 for empty xs.
func MaxAbs(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	_, max := stats.Bounds(vec.Map(math.Abs, xs))
	return max
}

// RoundSig rounds x to n significant digits. Zero is returned without
// the negative bit set.
func RoundSig(x float64, n int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x + 0
	}
	exp := int(math.Floor(math.Log10(math.Abs(x))))
	pow := math.Pow10(n - 1 - exp)
	scaled := x * pow
	if math.IsInf(scaled, 0) || math.IsInf(pow, 0) {
		return x
	}
	r := math.Round(scaled) / pow
	if r == 0 {
		return 0
	}
	return r
}

// exponent returns floor(log10(|x|)); 0 for x == 0.
func exponent(x float64) int {
	if x == 0 {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(x))))
}
