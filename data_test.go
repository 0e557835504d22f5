package target

import (
	"errors"
	"math"
	"testing"
)

type Ops struct {
	Name  string
	Bias  float64
	CRMSD float32
	Runs  int
}

func (o Ops) RMSD() float64 {
	c := float64(o.CRMSD)
	return math.Sqrt(o.Bias*o.Bias + c*c)
}

func (o Ops) Scaled(f float64) float64 { return f * o.Bias }

var ops = []Ops{
	{"ch", 1, 3, 10},
	{"de", -2, 4, 11},
	{"uk", 0.5, 0.5, 12},
}

func TestPointsFrom(t *testing.T) {
	ps, err := PointsFrom(ops, "CRMSD", "Bias", "RMSD", "Name")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if ps.Len() != 3 {
		t.Fatalf("Got %d points", ps.Len())
	}
	if ps.X[1] != 4 || ps.Y[1] != -2 || ps.Labels[2] != "uk" {
		t.Errorf("Got %v %v %v", ps.X, ps.Y, ps.Labels)
	}
	if math.Abs(ps.Z[0]-math.Sqrt(10)) > 1e-12 {
		t.Errorf("Got z = %v", ps.Z)
	}

	ptrs := []*Ops{&ops[0], &ops[1]}
	ps, err = PointsFrom(ptrs, "Runs", "Bias", "", "")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if ps.X[1] != 11 || ps.Z != nil || ps.Labels != nil {
		t.Errorf("Got %+v", ps)
	}
}

func TestPointsFromErrors(t *testing.T) {
	tests := []struct {
		data        interface{}
		x, y, label string
	}{
		{ops[0], "CRMSD", "Bias", ""},
		{ops, "Nope", "Bias", ""},
		{ops, "Name", "Bias", ""},
		{ops, "Scaled", "Bias", ""},
		{ops, "CRMSD", "Bias", "Runs"},
		{[]int{1, 2}, "CRMSD", "Bias", ""},
	}
	for i, tc := range tests {
		_, err := PointsFrom(tc.data, tc.x, tc.y, "", tc.label)
		if !errors.Is(err, ErrInvalidOption) {
			t.Errorf("%d: got %v, want ErrInvalidOption", i, err)
		}
	}
}

func TestNewPointSet(t *testing.T) {
	if _, err := NewPointSet([]float64{1, 2}, []float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("x/y: got %v", err)
	}
	if _, err := NewPointSet([]float64{1}, []float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("z: got %v", err)
	}
	ps, err := NewPointSet([]float64{1}, []float64{2}, nil)
	if err != nil || ps.Len() != 1 {
		t.Errorf("Got %v, %v", ps, err)
	}
}
