package stat

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestTarget(t *testing.T) {
	tests := []struct {
		p, r              []float64
		bias, crmsd, rmsd float64
	}{
		{[]float64{1, 2, 3}, []float64{1, 1, 1}, 1, math.Sqrt(2.0 / 3), math.Sqrt(5.0 / 3)},
		{[]float64{2, 4, 6}, []float64{1, 3, 5}, 1, 0, 1},
		{[]float64{1, 1, 1}, []float64{1, 2, 3}, -1, -math.Sqrt(2.0 / 3), math.Sqrt(5.0 / 3)},
	}
	for i, tc := range tests {
		s, err := Target(tc.p, tc.r, false)
		if err != nil {
			t.Fatalf("%d: unexpected error %v", i, err)
		}
		if !near(s.Bias, tc.bias) || !near(s.SignedCRMSD(), tc.crmsd) || !near(s.RMSD, tc.rmsd) {
			t.Errorf("%d: got %g %g %g, want %g %g %g", i, s.Bias, s.SignedCRMSD(), s.RMSD,
				tc.bias, tc.crmsd, tc.rmsd)
		}
		if s.CRMSD < 0 {
			t.Errorf("%d: negative CRMSD %g", i, s.CRMSD)
		}
	}
}

func TestTargetIdentity(t *testing.T) {
	p := []float64{0.3, 2.9, -1.2, 4.4, 0.8}
	r := []float64{1.1, 2.0, -0.5, 3.1, 0.2}
	for _, norm := range []bool{false, true} {
		s, err := Target(p, r, norm)
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if !near(s.RMSD*s.RMSD, s.Bias*s.Bias+s.CRMSD*s.CRMSD) {
			t.Errorf("norm=%t: RMSD^2=%g, Bias^2+CRMSD^2=%g", norm, s.RMSD*s.RMSD, s.Bias*s.Bias+s.CRMSD*s.CRMSD)
		}
		if s.Normalized != norm || (norm && s.SDevR != 1) {
			t.Errorf("norm=%t: got %+v", norm, s)
		}
	}
}

func TestTargetErrors(t *testing.T) {
	if _, err := Target([]float64{1}, []float64{1, 2}, false); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v", err)
	}
	if _, err := Target(nil, nil, false); !errors.Is(err, ErrEmpty) {
		t.Errorf("Got %v", err)
	}
	if _, err := Target([]float64{1, 2}, []float64{3, 3}, true); !errors.Is(err, ErrZeroDeviation) {
		t.Errorf("Got %v", err)
	}
}

func TestTargets(t *testing.T) {
	ref := []float64{1, 2, 3}
	bias, crmsd, rmsd, err := Targets(ref, [][]float64{{2, 3, 4}, {1, 1, 1}}, false)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(bias) != 2 || !near(bias[0], 1) || !near(crmsd[0], 0) || !near(rmsd[0], 1) || crmsd[1] >= 0 {
		t.Errorf("Got %v %v %v", bias, crmsd, rmsd)
	}
	if _, _, _, err := Targets(ref, [][]float64{{1, 2}}, false); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v", err)
	}
}

func TestBiasPercent(t *testing.T) {
	bp, err := BiasPercent([]float64{3, 5}, []float64{4, 4})
	if err != nil || !near(bp, 0) {
		t.Errorf("Got %g, %v", bp, err)
	}
	bp, _ = BiasPercent([]float64{6, 6}, []float64{4, 4})
	if !near(bp, 50) {
		t.Errorf("Got %g, want 50", bp)
	}
	bp, _ = BiasPercent([]float64{1, 2}, []float64{-1, 1})
	if !math.IsNaN(bp) {
		t.Errorf("Got %g, want NaN", bp)
	}
}
