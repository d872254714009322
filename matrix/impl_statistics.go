// SPDX-License-Identifier: MIT

// Package matrix - row statistics.
//
// Purpose:
//   - Per-row mean and population variance, and row standardization
//     (the normalization step of layer normalization).
//
// Contract:
//   - Variance uses the population form Σ(x-μ)²/c (no Bessel correction).
//   - eps is added to the variance before the square root, so a constant row
//     maps to zeros instead of dividing by zero.
package matrix

import "math"

const (
	opRowMeans        = "RowMeans"
	opStandardizeRows = "StandardizeRows"
)

// RowMeans returns μ[i] = (1/c) Σ_j X[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r).
func RowMeans(X Matrix) ([]float64, error) {
	d, err := unaryDense(X, opRowMeans)
	if err != nil {
		return nil, err
	}
	means := make([]float64, d.r)
	var sum float64
	for i := 0; i < d.r; i++ {
		sum = 0
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			sum += v
		}
		means[i] = sum / float64(d.c)
	}

	return means, nil
}

// StandardizeRows returns out[i,j] = (X[i,j] - μ_i) / sqrt(σ²_i + eps),
// with μ_i and σ²_i the mean and population variance of row i.
//
// Inputs:
//   - X  : non-nil matrix.
//   - eps: non-negative stabilizer added to the variance.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func StandardizeRows(X Matrix, eps float64) (*Dense, error) {
	d, err := unaryDense(X, opStandardizeRows)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	n := float64(d.c)
	var base, j int
	var mu, variance, dv, inv float64
	for i := 0; i < d.r; i++ {
		base = i * d.c
		mu = 0
		for j = 0; j < d.c; j++ {
			mu += d.data[base+j]
		}
		mu /= n

		variance = 0
		for j = 0; j < d.c; j++ {
			dv = d.data[base+j] - mu
			variance += dv * dv
		}
		variance /= n

		inv = 1 / math.Sqrt(variance+eps)
		for j = 0; j < d.c; j++ {
			out.data[base+j] = (d.data[base+j] - mu) * inv
		}
	}

	return out, nil
}
