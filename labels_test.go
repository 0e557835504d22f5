package target

import (
	"errors"
	"testing"
)

func TestTickLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.30000000000000004, "0.3"},
		{59.400000000000006, "59.4"},
		{5, "5"},
		{-2.5, "-2.5"},
		{0, "0"},
		{1234.5, "1234.5"},
		{1e-5, "1.0e-05"},
		{-2.5e-4, "-2.5e-04"},
		{0.001, "0.001"},
	}
	for i, tc := range tests {
		if got := TickLabel(tc.v); got != tc.want {
			t.Errorf("%d %g: got %q, want %q", i, tc.v, got, tc.want)
		}
	}
}

func TestUseSciNotation(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, false},
		{5e-4, true},
		{-5e-4, true},
		{1e-3, false},
		{1, false},
		{9999, false},
		{1e4, true},
		{-2e5, true},
	}
	for i, tc := range tests {
		if got := UseSciNotation(tc.v); got != tc.want {
			t.Errorf("%d %g: got %t", i, tc.v, got)
		}
	}
}

func TestFormatTickLabels(t *testing.T) {
	ticks := []float64{-10, -5, 0, 5, 10}
	tests := []struct {
		pos  []float64
		want []string
	}{
		{nil, []string{"-10", "-5", "", "5", "10"}},
		{ticks, []string{"-10", "-5", "", "5", "10"}},
		{[]float64{-10, 10}, []string{"-10", "", "", "", "10"}},
		{[]float64{0}, []string{"", "", "", "", ""}},
		{[]float64{-5, 0, 5}, []string{"", "-5", "", "5", ""}},
		{[]float64{5.000000000001}, []string{"", "", "", "5", ""}},
	}
	for i, tc := range tests {
		labels, offset, err := FormatTickLabels(ticks, tc.pos, 10)
		if err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		if offset != NoOffset {
			t.Errorf("%d: got offset %q", i, offset)
		}
		for j := range tc.want {
			if labels[j] != tc.want[j] {
				t.Errorf("%d: got %q, want %q", i, labels, tc.want)
				break
			}
		}
	}

	labels, offset, err := FormatTickLabels([]float64{-2e-4, -1e-4, 1e-18, 1e-4, 2e-4}, nil, 2e-4)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if offset != "×10^-4" || labels[0] != "-2" || labels[2] != "" || labels[3] != "1" {
		t.Errorf("Got %q %q", labels, offset)
	}

	if _, _, err := FormatTickLabels([]float64{1, 2, 3}, nil, 3); !errors.Is(err, ErrNoZeroTick) {
		t.Errorf("Got %v, want ErrNoZeroTick", err)
	}
	if _, _, err := FormatTickLabels([]float64{-1, 1e-10, 1}, nil, 1); !errors.Is(err, ErrNoZeroTick) {
		t.Errorf("Near zero: got %v, want ErrNoZeroTick", err)
	}
}
