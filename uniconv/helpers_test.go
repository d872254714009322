package uniconv_test

import (
	"testing"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
	"github.com/katalvlaran/spectra/spectral"
	"github.com/katalvlaran/spectra/uniconv"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *matrix.Dense type of an input.
type hide struct{ matrix.Matrix }

// smallConfig is a fast configuration for tests.
func smallConfig() uniconv.Config {
	cfg := uniconv.DefaultConfig()
	cfg.HiddenDim = 8
	cfg.SignalDim = 6
	cfg.FilterDim = 4
	cfg.NLayer = 2
	cfg.Seed = 42

	return cfg
}

// ringInputs returns the spectrum of an n-ring and deterministic n×f features.
func ringInputs(t testing.TB, n, f int) ([]float64, *matrix.Dense, *matrix.Dense) {
	t.Helper()
	edges := make([]spectral.Edge, n)
	for i := range edges {
		edges[i] = spectral.Edge{From: i, To: (i + 1) % n}
	}
	basis, err := spectral.FromEdges(n, edges)
	require.NoError(t, err)

	return basis.Values, basis.Vectors, features(t, n, f, 5)
}

// features builds n×f values in [-1, 1) from seed.
func features(t testing.TB, n, f int, seed int64) *matrix.Dense {
	t.Helper()
	x, err := matrix.NewDense(n, f)
	require.NoError(t, err)
	rng := nn.NewRNG(seed)
	for i := range x.Data() {
		x.Data()[i] = 2*rng.Float64() - 1
	}

	return x
}

// identityInputs returns e, an identity eigenbasis and features.
func identityInputs(t testing.TB, e []float64, f int) ([]float64, *matrix.Dense, *matrix.Dense) {
	t.Helper()
	u, err := matrix.NewIdentity(len(e))
	require.NoError(t, err)

	return e, u, features(t, len(e), f, 3)
}
