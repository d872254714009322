package nn

import "github.com/katalvlaran/spectra/matrix"

// Transform is any shape-preserving sub-layer wrapped by Residual.
type Transform func(mode Mode, x *matrix.Dense) (*matrix.Dense, error)

// Residual is the pre-norm residual unit
//
//	y = x + Dropout(f(LayerNorm(x)))
//
// One Residual owns its LayerNorm and Dropout; the wrapped transform owns its
// own parameters.
type Residual struct {
	Norm *LayerNorm
	Drop Dropout
}

// NewResidual builds the norm at width dim and the dropout at rate.
// Errors: ErrInvalidDim, ErrInvalidRate.
func NewResidual(name string, dim int, rate float64) (*Residual, error) {
	norm, err := NewLayerNorm(name, dim)
	if err != nil {
		return nil, err
	}
	drop, err := NewDropout(rate)
	if err != nil {
		return nil, layerErrorf("residual", name, err)
	}

	return &Residual{Norm: norm, Drop: drop}, nil
}

// Forward wires norm, f, dropout and the skip connection around x.
func (r *Residual) Forward(mode Mode, x *matrix.Dense, f Transform) (*matrix.Dense, error) {
	h, err := r.Norm.Forward(x)
	if err != nil {
		return nil, err
	}
	if h, err = f(mode, h); err != nil {
		return nil, err
	}
	if h, err = r.Drop.Forward(mode, h); err != nil {
		return nil, err
	}

	return matrix.Add(x, h)
}

// Parameters returns the norm parameters.
func (r *Residual) Parameters() []*Param { return r.Norm.Parameters() }
