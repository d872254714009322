package nn

import (
	"math"

	"github.com/katalvlaran/spectra/matrix"
)

// gelu is the exact Gaussian error linear unit x·Φ(x) = 0.5·x·(1 + erf(x/√2)).
func gelu(v float64) float64 {
	return 0.5 * v * (1 + math.Erf(v/math.Sqrt2))
}

// GELU applies the exact (erf-based) GELU element-wise.
func GELU(x matrix.Matrix) (*matrix.Dense, error) {
	y, err := matrix.Map(x, gelu)
	if err != nil {
		return nil, layerErrorf("activation", "gelu", err)
	}

	return y, nil
}
