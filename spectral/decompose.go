package spectral

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/matrix"
)

const opDecompose = "Decompose"

// Basis is a spectral decomposition L = Vectors·diag(Values)·Vectorsᵀ.
//   - Values : eigenvalues in ascending order (the e input of a model).
//   - Vectors: N×N, column i is the unit eigenvector of Values[i] (the u input).
type Basis struct {
	Values  []float64
	Vectors *matrix.Dense
}

// N returns the number of vertices (eigenpairs).
func (b Basis) N() int { return len(b.Values) }

// Decompose factorizes a symmetric matrix with gonum's EigenSym.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// ErrAsymmetric, ErrEigenFailed.
// Complexity: Time O(n³), Space O(n²).
func Decompose(l matrix.Matrix) (Basis, error) {
	d, err := symmetricDense(opDecompose, l)
	if err != nil {
		return Basis{}, err
	}
	n := d.Rows()
	sym := mat.NewSymDense(n, append([]float64(nil), d.Data()...))

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Basis{}, spectralErrorf(opDecompose, ErrEigenFailed)
	}
	values := es.Values(nil)

	var ev mat.Dense
	es.VectorsTo(&ev)
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return Basis{}, spectralErrorf(opDecompose, err)
	}
	out := vectors.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = ev.At(i, j)
		}
	}

	return Basis{Values: values, Vectors: vectors}, nil
}

// FromEdges builds the normalized Laplacian of an n-vertex edge list and
// decomposes it.
// Errors: any error of Adjacency, NormalizedLaplacian or Decompose.
func FromEdges(n int, edges []Edge) (Basis, error) {
	adj, err := Adjacency(n, edges)
	if err != nil {
		return Basis{}, err
	}
	lap, err := NormalizedLaplacian(adj)
	if err != nil {
		return Basis{}, err
	}

	return Decompose(lap)
}
