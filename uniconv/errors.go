package uniconv

import (
	"errors"
	"fmt"
)

// Sentinel errors for model construction.
// Forward passes add no sentinels of their own: shape conflicts surface as
// matrix.ErrDimensionMismatch wrapped with the failing stage.
var (
	// ErrInvalidConfig is returned when a Config field violates its contract.
	ErrInvalidConfig = errors.New("uniconv: invalid config")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("uniconv: invalid option supplied")

	// ErrInvalidShape is returned when nfeat or nclass is not positive.
	ErrInvalidShape = errors.New("uniconv: feature and class counts must be > 0")
)

// stageErrorf tags a forward-pass failure with the stage where it happened.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("uniconv: %s: %w", stage, err)
}

// layerErrorf tags a failure inside layer i of the propagation loop.
func layerErrorf(i int, step string, err error) error {
	return fmt.Errorf("uniconv: layer %d: %s: %w", i, step, err)
}
