package target

import (
	"fmt"
	"math"
	"sort"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values. Two values whose distance is at
// most Tol relative to the larger magnitude (or absolute below 1) are the
// same element, so tick values recomputed with rounding noise still match.
type FloatSet struct {
	Tol   float64
	elems []float64 // sorted
}

// NewFloatSet returns a set with the default tolerance containing xs.
func NewFloatSet(xs ...float64) *FloatSet {
	s := &FloatSet{Tol: WholeTolerance}
	for _, x := range xs {
		s.Add(x)
	}
	return s
}

func (s *FloatSet) String() string {
	var t = "[ "
	for _, x := range s.elems {
		t += fmt.Sprintf("%g ", x)
	}
	return t + "]"
}

func (s *FloatSet) near(a, b float64) bool {
	return math.Abs(a-b) <= s.Tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// find returns the index of the element equal to x or -1.
func (s *FloatSet) find(x float64) int {
	i := sort.SearchFloat64s(s.elems, x)
	for _, j := range []int{i - 1, i} {
		if j >= 0 && j < len(s.elems) && s.near(s.elems[j], x) {
			return j
		}
	}
	return -1
}

// Add adds x to s.
func (s *FloatSet) Add(x float64) {
	if s.find(x) != -1 {
		return
	}
	i := sort.SearchFloat64s(s.elems, x)
	s.elems = append(s.elems, 0)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = x
}

// Del removes x from s.
func (s *FloatSet) Del(x float64) {
	if i := s.find(x); i != -1 {
		s.elems = append(s.elems[:i], s.elems[i+1:]...)
	}
}

// Contains reports membership of x in s.
func (s *FloatSet) Contains(x float64) bool {
	return s.find(x) != -1
}

// Len is the number of elements in s.
func (s *FloatSet) Len() int { return len(s.elems) }

// Equals compares s to a slice t.
func (s *FloatSet) Equals(t []float64) bool {
	if len(s.elems) != len(t) {
		return false
	}
	for _, x := range t {
		if !s.Contains(x) {
			return false
		}
	}
	return true
}

// Elements returns the elements of s in increasing order.
func (s *FloatSet) Elements() []float64 {
	elems := make([]float64, len(s.elems))
	copy(elems, s.elems)
	return elems
}
