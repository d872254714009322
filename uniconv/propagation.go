package uniconv

import (
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
)

// PropagationLayer is Dropout → Linear(in→out) → LayerNorm(out) → GELU,
// applied to the hidden matrix after each spectral mixing step.
type PropagationLayer struct {
	Drop nn.Dropout
	Proj *nn.Linear
	Norm *nn.LayerNorm
}

// NewPropagationLayer allocates an in→out layer with the given dropout rate.
func NewPropagationLayer(name string, in, out int, dropout float64, rng *rand.Rand) (*PropagationLayer, error) {
	drop, err := nn.NewDropout(dropout)
	if err != nil {
		return nil, err
	}
	proj, err := nn.NewLinear(join(name, "proj"), in, out, rng)
	if err != nil {
		return nil, err
	}
	norm, err := nn.NewLayerNorm(join(name, "norm"), out)
	if err != nil {
		return nil, err
	}

	return &PropagationLayer{Drop: drop, Proj: proj, Norm: norm}, nil
}

// Out returns the output width.
func (p *PropagationLayer) Out() int { return p.Proj.Out() }

// Forward maps an N×in hidden matrix to N×out.
func (p *PropagationLayer) Forward(mode nn.Mode, h *matrix.Dense) (*matrix.Dense, error) {
	h, err := p.Drop.Forward(mode, h)
	if err != nil {
		return nil, err
	}
	if h, err = p.Proj.Forward(h); err != nil {
		return nil, err
	}
	if h, err = p.Norm.Forward(h); err != nil {
		return nil, err
	}

	return nn.GELU(h)
}

// Parameters returns [proj.weight, proj.bias, norm.weight, norm.bias].
func (p *PropagationLayer) Parameters() []*nn.Param { return nn.Collect(p.Proj, p.Norm) }
