package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDimension indicates a path that is not 1-, 2- or 3-dimensional.
	ErrUnsupportedDimension = errors.New("plot: unsupported path dimension")

	// ErrRaggedPath indicates positions of differing dimensionality in one path.
	ErrRaggedPath = errors.New("plot: positions have mixed dimensions")
)

// UnsupportedDimensionError wraps ErrUnsupportedDimension with the offending
// dimensionality.
type UnsupportedDimensionError struct {
	Dim int
}

func (e *UnsupportedDimensionError) Error() string {
	return fmt.Sprintf("%s: %d (want 1, 2 or 3)", ErrUnsupportedDimension.Error(), e.Dim)
}

func (e *UnsupportedDimensionError) Unwrap() error {
	return ErrUnsupportedDimension
}
