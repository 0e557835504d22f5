package target

import (
	"fmt"
	"reflect"
)

// PointSet holds one point per model: X is the centered RMS difference,
// Y the bias and the optional Z the total RMS difference.
type PointSet struct {
	X, Y   []float64
	Z      []float64 // nil or parallel to X
	Labels []string  // nil or parallel to X
}

// NewPointSet checks that x, y and a non-nil z have equal length.
func NewPointSet(x, y, z []float64) (*PointSet, error) {
	if len(x) != len(y) || (z != nil && len(z) != len(x)) {
		return nil, opErrorf("target.points", ErrLengthMismatch,
			"len(x)=%d len(y)=%d len(z)=%d", len(x), len(y), len(z))
	}
	return &PointSet{X: x, Y: y, Z: z}, nil
}

// Len is the number of points.
func (ps *PointSet) Len() int { return len(ps.X) }

// PointsFrom extracts a point set from data, a slice of structs (or
// pointers to structs). The named fields or niladic methods provide x, y
// and z as numbers and the label as string. Empty names for z and label
// are skipped.
//
//	type Stat struct {
//		Name        string
//		Bias, CRMSD float64
//	}
//	ps, err := PointsFrom(stats, "CRMSD", "Bias", "", "Name")
func PointsFrom(data interface{}, x, y, z, label string) (*PointSet, error) {
	const op = "target.points"
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, opErrorf(op, ErrInvalidOption, "cannot extract points from %T", data)
	}

	n := v.Len()
	ps := &PointSet{X: make([]float64, n), Y: make([]float64, n)}
	if z != "" {
		ps.Z = make([]float64, n)
	}
	if label != "" {
		ps.Labels = make([]string, n)
	}
	for i := 0; i < n; i++ {
		elem := v.Index(i)
		for elem.Kind() == reflect.Ptr || elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		var err error
		if ps.X[i], err = floatValue(elem, x); err != nil {
			return nil, opErrorf(op, ErrInvalidOption, "element %d: %v", i, err)
		}
		if ps.Y[i], err = floatValue(elem, y); err != nil {
			return nil, opErrorf(op, ErrInvalidOption, "element %d: %v", i, err)
		}
		if z != "" {
			if ps.Z[i], err = floatValue(elem, z); err != nil {
				return nil, opErrorf(op, ErrInvalidOption, "element %d: %v", i, err)
			}
		}
		if label != "" {
			lv, err := fieldValue(elem, label)
			if err != nil {
				return nil, opErrorf(op, ErrInvalidOption, "element %d: %v", i, err)
			}
			if lv.Kind() != reflect.String {
				return nil, opErrorf(op, ErrInvalidOption, "%s is a %s, not a string", label, lv.Type())
			}
			ps.Labels[i] = lv.String()
		}
	}
	return ps, nil
}

// fieldValue extracts field from the struct v: either a field or a method
// without arguments returning one value.
func fieldValue(v reflect.Value, field string) (reflect.Value, error) {
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%s is not a struct", v.Type())
	}
	if f := v.FieldByName(field); f.IsValid() {
		return f, nil
	}
	m := v.MethodByName(field)
	if !m.IsValid() && v.CanAddr() {
		m = v.Addr().MethodByName(field)
	}
	if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0], nil
	}
	return reflect.Value{}, fmt.Errorf("no field or method %s in %s", field, v.Type())
}

func floatValue(v reflect.Value, field string) (float64, error) {
	f, err := fieldValue(v, field)
	if err != nil {
		return 0, err
	}
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(f.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(f.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return f.Float(), nil
	}
	return 0, fmt.Errorf("%s is a %s, not a number", field, f.Type())
}

// TargetPoints is Target for a point set. Its labels are used as ordered
// marker labels unless opts carries labels of its own.
func (s *Session) TargetPoints(surf Surface, ps *PointSet, opts Options) (*Result, error) {
	if opts.MarkerLabel.Empty() && len(ps.Labels) > 0 {
		opts.MarkerLabel = Ordered(ps.Labels...)
	}
	return s.Target(surf, ps.Y, ps.X, opts)
}
