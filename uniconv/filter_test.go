package uniconv_test

import (
	"testing"

	"github.com/katalvlaran/spectra/nn"
	"github.com/katalvlaran/spectra/uniconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilter_Shape checks one coefficient per eigenvalue for several N.
func TestFilter_Shape(t *testing.T) {
	f, err := uniconv.NewFilter("filter", 8, 2, 0.1, nn.NewRNG(3))
	require.NoError(t, err)

	for _, n := range []int{1, 3, 7} {
		e := make([]float64, n)
		for i := range e {
			e[i] = 2 * float64(i) / float64(n)
		}
		coeffs, err := f.Forward(nn.Eval(), e)
		require.NoError(t, err)
		assert.Equal(t, n, coeffs.Rows())
		assert.Equal(t, 1, coeffs.Cols())
	}
}

// TestFilter_DependsOnWholeSpectrum checks that the coefficient of an
// eigenvalue changes when another eigenvalue changes.
func TestFilter_DependsOnWholeSpectrum(t *testing.T) {
	f, err := uniconv.NewFilter("filter", 4, 1, 0, nn.NewRNG(3))
	require.NoError(t, err)

	a, err := f.Forward(nn.Eval(), []float64{0, 1})
	require.NoError(t, err)
	b, err := f.Forward(nn.Eval(), []float64{0, 2})
	require.NoError(t, err)
	assert.NotEqual(t, a.Data()[0], b.Data()[0])
}

// TestFilter_Parameters checks names and that the forward pass leaves them intact.
func TestFilter_Parameters(t *testing.T) {
	f, err := uniconv.NewFilter("filter", 4, 1, 0.2, nn.NewRNG(3))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, p := range f.Parameters() {
		names[p.Name] = true
	}
	for _, want := range []string{
		"filter.eig_encoder.weight",
		"filter.decoder.bias",
		"filter.mha_norm.weight",
		"filter.ffn_norm.bias",
		"filter.mha.in_proj.weight",
		"filter.mha.out_proj.bias",
		"filter.ffn.0.weight",
		"filter.ffn.2.bias",
	} {
		assert.True(t, names[want], want)
	}

	before := f.Decoder.Weight.Value.Copy()
	_, err = f.Forward(nn.Train(1), []float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, before.Data(), f.Decoder.Weight.Value.Data())
}
