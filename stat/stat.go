// Package stat computes the statistics shown in a target diagram: the
// bias, the centered and the total root-mean-square difference of a
// predicted series against a reference series.
package stat

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

var (
	ErrLengthMismatch = errors.New("stat: predicted and reference differ in length")
	ErrEmpty          = errors.New("stat: no data")
	ErrZeroDeviation  = errors.New("stat: reference has zero standard deviation")
)

// Stats are the target statistics of one predicted series.
type Stats struct {
	Bias  float64 // mean(p) - mean(r)
	CRMSD float64 // centered RMS difference E', never negative
	RMSD  float64 // total RMS difference

	SDevP, SDevR float64 // population standard deviations

	Normalized bool // all values are divided by SDevR
}

// SignedCRMSD returns CRMSD with the sign of SDevP - SDevR, which puts
// models with too much variability to the right of the y axis.
func (s Stats) SignedCRMSD() float64 {
	if s.SDevP < s.SDevR {
		return -s.CRMSD
	}
	return s.CRMSD
}

// Target returns the target statistics of predicted against reference.
// With normalize the statistics are divided by the standard deviation of
// the reference.
func Target(predicted, reference []float64, normalize bool) (Stats, error) {
	if err := check(predicted, reference); err != nil {
		return Stats{}, err
	}
	mp, mr := stats.Mean(predicted), stats.Mean(reference)
	s := Stats{
		Bias:  mp - mr,
		SDevP: sdev(predicted, mp),
		SDevR: sdev(reference, mr),
	}

	// The centered RMS difference is the deviation of the differences.
	diff := make([]float64, len(predicted))
	for i := range diff {
		diff[i] = predicted[i] - reference[i]
	}
	s.CRMSD = sdev(diff, s.Bias)
	s.RMSD = sdev(diff, 0)

	if normalize {
		if s.SDevR == 0 {
			return Stats{}, ErrZeroDeviation
		}
		s.Bias /= s.SDevR
		s.CRMSD /= s.SDevR
		s.RMSD /= s.SDevR
		s.SDevP /= s.SDevR
		s.SDevR = 1
		s.Normalized = true
	}
	return s, nil
}

// Targets computes the statistics of several models against one
// reference and returns them as the bias and signed centered RMS
// difference series of a target diagram.
func Targets(reference []float64, models [][]float64, normalize bool) (bias, crmsd, rmsd []float64, err error) {
	for i, m := range models {
		s, err := Target(m, reference, normalize)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("model %d: %w", i, err)
		}
		bias = append(bias, s.Bias)
		crmsd = append(crmsd, s.SignedCRMSD())
		rmsd = append(rmsd, s.RMSD)
	}
	return bias, crmsd, rmsd, nil
}

// BiasPercent returns 100*|mean(p) - mean(r)| / |mean(r)|. The result is
// NaN if the reference mean is zero.
func BiasPercent(predicted, reference []float64) (float64, error) {
	if err := check(predicted, reference); err != nil {
		return 0, err
	}
	mr := stats.Mean(reference)
	if mr == 0 {
		return math.NaN(), nil
	}
	return 100 * math.Abs((stats.Mean(predicted)-mr)/mr), nil
}

func check(predicted, reference []float64) error {
	if len(predicted) != len(reference) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(predicted), len(reference))
	}
	if len(predicted) == 0 {
		return ErrEmpty
	}
	return nil
}

// sdev is the population standard deviation of xs with mean m.
func sdev(xs []float64, m float64) float64 {
	return math.Sqrt(stats.Mean(vec.Map(func(x float64) float64 { return (x - m) * (x - m) }, xs)))
}
