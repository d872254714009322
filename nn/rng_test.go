package nn_test

import (
	"testing"

	"github.com/katalvlaran/spectra/nn"
	"github.com/stretchr/testify/assert"
)

// TestNewRNG_ZeroSeedPolicy checks that seed 0 maps to the default seed.
func TestNewRNG_ZeroSeedPolicy(t *testing.T) {
	a, b := nn.NewRNG(0), nn.NewRNG(1)
	assert.Equal(t, a.Int63(), b.Int63())

	c, d := nn.NewRNG(42), nn.NewRNG(42)
	assert.Equal(t, c.Float64(), d.Float64())
}

// TestDeriveSeed checks determinism and stream separation.
func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, nn.DeriveSeed(7, 1), nn.DeriveSeed(7, 1))
	assert.NotEqual(t, nn.DeriveSeed(7, 0), nn.DeriveSeed(7, 1))
	assert.NotEqual(t, nn.DeriveSeed(7, 1), nn.DeriveSeed(8, 1))
}

// TestDeriveRNG checks that derived streams are reproducible from the same base.
func TestDeriveRNG(t *testing.T) {
	x := nn.DeriveRNG(nn.NewRNG(3), 5)
	y := nn.DeriveRNG(nn.NewRNG(3), 5)
	assert.Equal(t, x.Int63(), y.Int63())

	z := nn.DeriveRNG(nil, 5)
	w := nn.DeriveRNG(nil, 5)
	assert.Equal(t, z.Int63(), w.Int63())
}

// TestMode checks the train flag and Derive.
func TestMode(t *testing.T) {
	assert.False(t, nn.Eval().Training())
	assert.False(t, nn.Mode{}.Training(), "zero value is eval")
	assert.True(t, nn.Train(1).Training())
	assert.True(t, nn.TrainWith(nil).Training())
	assert.True(t, nn.Train(1).Derive(3).Training())
	assert.False(t, nn.Eval().Derive(3).Training())
}
