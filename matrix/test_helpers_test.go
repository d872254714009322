// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels.
//   - Force the non-*Dense fallback paths through the hide wrapper.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectra/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels take the interface (fallback) path instead of the *Dense one.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fromRows builds a *Dense from a literal row slice.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
}

// naiveMul is the textbook triple loop used as a reference for Mul.
func naiveMul(tb testing.TB, a, b matrix.Matrix) *matrix.Dense {
	tb.Helper()
	out := mustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var acc float64
			for k := 0; k < a.Cols(); k++ {
				x, _ := a.At(i, k)
				y, _ := b.At(k, j)
				acc += x * y
			}
			_ = out.Set(i, j, acc)
		}
	}

	return out
}
