// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical linear-algebra kernels used by the neural layers.
//   - Operation tags for uniform error wrapping.
//
// Notes:
//   - Every kernel allocates its result; operands are never mutated.
//   - *Dense operands run on flat slices through algo-vecmath block routines;
//     other Matrix implementations are materialized once via asDense.
package matrix

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryDense validates two same-shaped operands and returns their Dense forms.
func binaryDense(a, b Matrix, tag string) (*Dense, *Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	da, db, err := binaryDense(a, b, opAdd)
	if err != nil {
		return nil, err
	}
	out := da.clone()
	vecmath.AddBlockInPlace(out.data, db.data)

	return out, nil
}

// Sub returns a - b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	da, db, err := binaryDense(a, b, opSub)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	// out = -b, then out += a
	vecmath.ScaleBlock(out.data, db.data, -1)
	vecmath.AddBlockInPlace(out.data, da.data)

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k accumulation of scaled B rows into C rows:
//     C[i,:] += A[i,k] * B[k,:] (ScaleBlock into a scratch row, then AddBlockInPlace).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch), wrapped with "Mul".
//
// Determinism:
//   - Fixed loop order i→k; summation order per element is k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) + O(c) scratch.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	scratch := make([]float64, bCols)
	var i, k int
	var rowR, rowB []float64
	for i = 0; i < aRows; i++ {
		rowR = res.data[i*bCols : (i+1)*bCols]
		for k = 0; k < inner; k++ {
			// No zero-skip: non-finite entries in B must propagate.
			rowB = db.data[k*bCols : (k+1)*bCols]
			vecmath.ScaleBlock(scratch, rowB, da.data[i*inner+k])
			vecmath.AddBlockInPlace(rowR, scratch)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix (wrapped with "Transpose").
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix (NaN/Inf entries become NaN).
// Errors: ErrNilMatrix (wrapped with "Scale").
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: dm.r, c: dm.c, data: make([]float64, len(dm.data))}
	vecmath.ScaleBlock(out.data, dm.data, alpha)

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Hadamard").
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	da, db, err := binaryDense(a, b, opHadamard)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	vecmath.MulBlock(out.data, da.data, db.data)

	return out, nil
}

// MatVec computes y = m · x for a vector x of length m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, dm.r)
	var i, j, base int
	var acc float64
	for i = 0; i < dm.r; i++ {
		base = i * dm.c
		acc = 0
		for j = 0; j < dm.c; j++ {
			acc += dm.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
