package nn

import (
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
)

// FeedForward is Linear(in→hidden) → GELU → Linear(hidden→out), with no
// normalization inside the block.
type FeedForward struct {
	name string
	In   *Linear
	Out  *Linear
}

// NewFeedForward allocates both projections from rng, first then second.
// Errors: ErrInvalidDim when any width is not positive.
func NewFeedForward(name string, in, hidden, out int, rng *rand.Rand) (*FeedForward, error) {
	if rng == nil {
		rng = NewRNG(0)
	}
	l1, err := NewLinear(joinName(name, "0"), in, hidden, rng)
	if err != nil {
		return nil, err
	}
	l2, err := NewLinear(joinName(name, "2"), hidden, out, rng)
	if err != nil {
		return nil, err
	}

	return &FeedForward{name: name, In: l1, Out: l2}, nil
}

// Forward maps an N×in input to N×out.
func (f *FeedForward) Forward(x matrix.Matrix) (*matrix.Dense, error) {
	h, err := f.In.Forward(x)
	if err != nil {
		return nil, err
	}
	if h, err = GELU(h); err != nil {
		return nil, err
	}

	return f.Out.Forward(h)
}

// Parameters returns the parameters of both projections.
func (f *FeedForward) Parameters() []*Param { return Collect(f.In, f.Out) }
