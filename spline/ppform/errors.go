package ppform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModel indicates inconsistent breaks, coefficients or shape.
	ErrInvalidModel = errors.New("ppform: invalid model")
	// ErrDerivativeOrder indicates a negative derivative order or a
	// per-axis order list of the wrong length.
	ErrDerivativeOrder = errors.New("ppform: invalid derivative order")
	// ErrQueryShape indicates malformed query points.
	ErrQueryShape = errors.New("ppform: invalid query shape")
)

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
