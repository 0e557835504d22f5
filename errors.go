package target

import (
	"errors"
	"fmt"
)

// Sentinel errors for the configuration problems a diagram call can run
// into. All of them are fatal for the call and are returned wrapped in an
// *OpError.
var (
	ErrInsufficientLabels = errors.New("insufficient number of marker labels")
	ErrTooManyCategories  = errors.New("too many category labels")
	ErrNoMarkerLabels     = errors.New("no marker labels provided")
	ErrTooManyMarkers     = errors.New("too many markers for default palette")
	ErrNoZeroTick         = errors.New("ticks must span negative to positive values")
	ErrNoTickCount        = errors.New("no saved tick counts")
	ErrInvalidOption      = errors.New("invalid option")
	ErrLengthMismatch     = errors.New("length mismatch")
)

// OpError wraps an underlying error with the operation it occurred in.
type OpError struct {
	Op  string
	Err error
	Msg string // Optional detail: offending counts or values.
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Op + ": " + e.Err.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func opErrorf(op string, err error, format string, args ...interface{}) *OpError {
	return &OpError{Op: op, Err: err, Msg: fmt.Sprintf(format, args...)}
}
