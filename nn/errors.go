package nn

import (
	"errors"
	"fmt"
)

// Sentinel errors for layer construction and gradient probing.
var (
	// ErrInvalidDim is returned when a layer dimension is not positive.
	ErrInvalidDim = errors.New("nn: dimensions must be > 0")

	// ErrInvalidRate is returned when a dropout rate is outside [0, 1).
	ErrInvalidRate = errors.New("nn: dropout rate must be in [0, 1)")

	// ErrHeadsMismatch is returned when the attention width is not divisible by the head count.
	ErrHeadsMismatch = errors.New("nn: attention dim not divisible by heads")

	// ErrInvalidStep is returned when a finite-difference step is not a positive finite number.
	ErrInvalidStep = errors.New("nn: finite-difference step must be positive and finite")
)

// layerErrorf prefixes err with the layer kind and name, keeping the sentinel for errors.Is.
func layerErrorf(kind, name string, err error) error {
	return fmt.Errorf("nn: %s %s: %w", kind, name, err)
}
