package spectral

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph and Laplacian construction.
var (
	// ErrEmptyGraph is returned when the vertex count is not positive.
	ErrEmptyGraph = errors.New("spectral: graph must have at least one vertex")

	// ErrVertexRange is returned when an edge endpoint is outside [0, n).
	ErrVertexRange = errors.New("spectral: vertex index out of range")

	// ErrInvalidWeight is returned for negative, NaN or infinite edge weights.
	ErrInvalidWeight = errors.New("spectral: edge weight must be finite and >= 0")

	// ErrAsymmetric is returned when an adjacency or Laplacian is not symmetric.
	ErrAsymmetric = errors.New("spectral: matrix is not symmetric")

	// ErrEigenFailed is returned when the eigensolver does not converge.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")
)

// spectralErrorf wraps err with an operation tag, preserving the sentinel via %w.
func spectralErrorf(op string, err error) error {
	return fmt.Errorf("spectral: %s: %w", op, err)
}
