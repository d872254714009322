// Package matrix is the dense linear-algebra layer under the spectral model.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the Matrix interface, with
//     bounds-checked At/Set and no-copy row views for hot loops.
//   - Canonical kernels (Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec)
//     with *Dense fast paths and generic interface fallbacks.
//   - Broadcast and row-wise helpers used by neural layers: ScaleRows,
//     ScaleCols, AddRowVector, ConcatCols, Columns, Map, SoftmaxRows,
//     StandardizeRows, RowMeans and AllClose.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Shape conflicts are reported as ErrDimensionMismatch wrapped with the
// operation name, so a caller can both match the sentinel and see where the
// conflict first occurred.
//
// Row kernels are backed by github.com/cwbudde/algo-vecmath block routines.
package matrix
