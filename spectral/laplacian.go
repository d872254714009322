package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectra/matrix"
)

const (
	opAdjacency = "Adjacency"
	opLaplacian = "NormalizedLaplacian"
)

// Edge is an undirected weighted edge between vertex indices From and To.
// A zero Weight stands for an unweighted edge and is stored as 1.
type Edge struct {
	From, To int
	Weight   float64
}

// Adjacency builds the symmetric n×n weighted adjacency matrix of edges.
//
// Policy:
//   - Undirected: {u,v} sets A[u][v] and A[v][u]; a loop {v,v} sets A[v][v] once.
//   - Duplicates: the first occurrence of an unordered pair wins.
//   - Weight 0 is read as 1 so that unweighted edge lists work as-is.
//
// Errors: ErrEmptyGraph, ErrVertexRange, ErrInvalidWeight.
// Complexity: Time O(n² + m), Space O(n²).
func Adjacency(n int, edges []Edge) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, spectralErrorf(opAdjacency, ErrEmptyGraph)
	}
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, spectralErrorf(opAdjacency, err)
	}
	data := adj.Data()
	seen := make([]bool, n*n)
	for idx, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, spectralErrorf(opAdjacency, fmt.Errorf("edge %d (%d,%d): %w", idx, e.From, e.To, ErrVertexRange))
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, spectralErrorf(opAdjacency, fmt.Errorf("edge %d weight %g: %w", idx, e.Weight, ErrInvalidWeight))
		}
		if seen[e.From*n+e.To] {
			continue
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		data[e.From*n+e.To], data[e.To*n+e.From] = w, w
		seen[e.From*n+e.To], seen[e.To*n+e.From] = true, true
	}

	return adj, nil
}

// Degrees returns the weighted degree d[i] = Σ_j A[i][j] of every vertex.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
func Degrees(adj matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, err
	}
	ones := make([]float64, adj.Cols())
	for i := range ones {
		ones[i] = 1
	}

	return matrix.MatVec(adj, ones)
}

// NormalizedLaplacian returns L = I − D^−½·A·D^−½ for a symmetric,
// non-negative adjacency A.
//
// An isolated vertex (degree 0) keeps L[i][i] = 1 and a zero row/column.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// ErrAsymmetric, ErrInvalidWeight.
// Complexity: Time O(n²), Space O(n²).
func NormalizedLaplacian(adj matrix.Matrix) (*matrix.Dense, error) {
	a, err := symmetricDense(opLaplacian, adj)
	if err != nil {
		return nil, err
	}
	for _, v := range a.Data() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, spectralErrorf(opLaplacian, ErrInvalidWeight)
		}
	}
	deg, err := Degrees(a)
	if err != nil {
		return nil, spectralErrorf(opLaplacian, err)
	}

	n := a.Rows()
	invSqrt := make([]float64, n)
	for i, d := range deg {
		if d > 0 {
			invSqrt[i] = 1 / math.Sqrt(d)
		}
	}

	// D^−½·A·D^−½ = row-scale then column-scale.
	norm, err := matrix.ScaleRows(a, invSqrt)
	if err != nil {
		return nil, spectralErrorf(opLaplacian, err)
	}
	if norm, err = matrix.ScaleCols(norm, invSqrt); err != nil {
		return nil, spectralErrorf(opLaplacian, err)
	}
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, spectralErrorf(opLaplacian, err)
	}
	lap, err := matrix.Sub(id, norm)
	if err != nil {
		return nil, spectralErrorf(opLaplacian, err)
	}

	return lap, nil
}

// symmetryTol is the relative tolerance of the symmetry check; it absorbs the
// rounding of the two-sided degree scaling.
const symmetryTol = 1e-12

// symmetricDense validates that m is square and symmetric within symmetryTol
// and returns its Dense form.
func symmetricDense(op string, m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, spectralErrorf(op, err)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, spectralErrorf(op, err)
	}
	n, data := d.Rows(), d.Data()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := data[i*n+j], data[j*n+i]
			if !(math.Abs(a-b) <= symmetryTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))) {
				return nil, spectralErrorf(op, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetric))
			}
		}
	}

	return d, nil
}
