// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast and row-wise kernels used by the neural layers (bias add,
//     per-eigenvalue scaling, feature concatenation, head slicing, softmax).
//   - Keep all loops deterministic and cache-friendly on flat row-major buffers.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

const (
	opScaleRows    = "ScaleRows"
	opScaleCols    = "ScaleCols"
	opAddRowVector = "AddRowVector"
	opConcatCols   = "ConcatCols"
	opColumns      = "Columns"
	opMap          = "Map"
	opSoftmaxRows  = "SoftmaxRows"
	opAllClose     = "AllClose"
)

// unaryDense validates m and returns its Dense form.
func unaryDense(m Matrix, tag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d, nil
}

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
// This is the diag(scale)·X product: row i is multiplied by scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != X.Rows().
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	d, err := unaryDense(X, opScaleRows)
	if err != nil {
		return nil, err
	}
	if len(scale) != d.r {
		return nil, matrixErrorf(opScaleRows, ErrDimensionMismatch)
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		vecmath.ScaleBlock(out.data[base:base+d.c], d.data[base:base+d.c], scale[i])
	}

	return out, nil
}

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != X.Cols().
// Complexity: Time O(r*c), Space O(r*c).
func ScaleCols(X Matrix, scale []float64) (*Dense, error) {
	d, err := unaryDense(X, opScaleCols)
	if err != nil {
		return nil, err
	}
	if len(scale) != d.c {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		vecmath.MulBlock(out.data[base:base+d.c], d.data[base:base+d.c], scale)
	}

	return out, nil
}

// AddRowVector computes out[i,j] = X[i,j] + v[j] (bias broadcast over rows).
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(v) != X.Cols().
// Complexity: Time O(r*c), Space O(r*c).
func AddRowVector(X Matrix, v []float64) (*Dense, error) {
	d, err := unaryDense(X, opAddRowVector)
	if err != nil {
		return nil, err
	}
	if len(v) != d.c {
		return nil, matrixErrorf(opAddRowVector, ErrDimensionMismatch)
	}
	out := d.clone()
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		vecmath.AddBlockInPlace(out.data[base:base+d.c], v)
	}

	return out, nil
}

// ConcatCols joins matrices side by side: out = [A | B | ...].
// All parts must share the same row count.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ), ErrInvalidDimensions (no parts).
// Complexity: Time O(r*Σc), Space O(r*Σc).
func ConcatCols(parts ...Matrix) (*Dense, error) {
	if len(parts) == 0 {
		return nil, matrixErrorf(opConcatCols, ErrInvalidDimensions)
	}
	dense := make([]*Dense, len(parts))
	rows, cols := -1, 0
	for p, m := range parts {
		d, err := unaryDense(m, opConcatCols)
		if err != nil {
			return nil, err
		}
		if rows >= 0 && d.r != rows {
			return nil, matrixErrorf(opConcatCols, ErrDimensionMismatch)
		}
		rows = d.r
		cols += d.c
		dense[p] = d
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opConcatCols, err)
	}
	var off int
	for i := 0; i < rows; i++ {
		off = i * cols
		for _, d := range dense {
			copy(out.data[off:off+d.c], d.data[i*d.c:(i+1)*d.c])
			off += d.c
		}
	}

	return out, nil
}

// Columns copies the column block [c0, c0+width) of X into a new matrix.
// Errors: ErrNilMatrix, ErrOutOfRange (block exceeds X), ErrInvalidDimensions (width <= 0).
// Complexity: Time O(r*width), Space O(r*width).
func Columns(X Matrix, c0, width int) (*Dense, error) {
	d, err := unaryDense(X, opColumns)
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, matrixErrorf(opColumns, ErrInvalidDimensions)
	}
	if c0 < 0 || c0+width > d.c {
		return nil, matrixErrorf(opColumns, ErrOutOfRange)
	}
	out := &Dense{r: d.r, c: width, data: make([]float64, d.r*width)}
	for i := 0; i < d.r; i++ {
		copy(out.data[i*width:(i+1)*width], d.data[i*d.c+c0:i*d.c+c0+width])
	}

	return out, nil
}

// Map returns a new matrix with out[i,j] = f(X[i,j]).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Map(X Matrix, f func(v float64) float64) (*Dense, error) {
	d, err := unaryDense(X, opMap)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// SoftmaxRows applies a numerically stable softmax to every row:
// out[i,j] = exp(X[i,j] - max_i) / Σ_k exp(X[i,k] - max_i).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func SoftmaxRows(X Matrix) (*Dense, error) {
	d, err := unaryDense(X, opSoftmaxRows)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	var base, j int
	var mx, sum float64
	for i := 0; i < d.r; i++ {
		base = i * d.c
		mx = math.Inf(-1)
		for j = 0; j < d.c; j++ {
			if d.data[base+j] > mx {
				mx = d.data[base+j]
			}
		}
		sum = 0
		for j = 0; j < d.c; j++ {
			out.data[base+j] = math.Exp(d.data[base+j] - mx)
			sum += out.data[base+j]
		}
		row := out.data[base : base+d.c]
		vecmath.ScaleBlock(row, row, 1/sum)
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - Any NaN element compares as not close.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da, db, err := binaryDense(a, b, opAllClose)
	if err != nil {
		return false, err
	}
	var diff float64
	for idx := range da.data {
		diff = math.Abs(da.data[idx] - db.data[idx])
		if !(diff <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation (NaN included)
		}
	}

	return true, nil
}
