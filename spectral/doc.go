// Package spectral turns an undirected weighted graph into the spectral inputs
// of a uniconv model: the eigenvalues e and eigenvectors u of its symmetric
// normalized Laplacian.
//
// Pipeline:
//
//	edges ──Adjacency──▶ A ──NormalizedLaplacian──▶ L = I − D^−½·A·D^−½ ──Decompose──▶ (e, u)
//
// The eigen solve is delegated to gonum's symmetric eigensolver (mat.EigenSym);
// eigenvalues are returned in ascending order and u holds one unit-norm
// eigenvector per column, so column i pairs with e[i].
//
// For a normalized Laplacian every eigenvalue lies in [0, 2], and the number
// of zero eigenvalues equals the number of connected components that contain
// at least one edge. Isolated vertices contribute an eigenvalue of 1.
package spectral
