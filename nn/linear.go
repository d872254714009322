package nn

import (
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
)

// Linear is an affine map y = x·W + b with W of shape in×out and b of length out.
type Linear struct {
	name   string
	in     int
	out    int
	Weight *Param // in×out
	Bias   *Param // 1×out
}

// NewLinear allocates an in→out layer. Weight and bias are drawn from
// U(-1/√in, 1/√in) using rng (nil ⇒ default seed).
// Errors: ErrInvalidDim when in or out is not positive.
func NewLinear(name string, in, out int, rng *rand.Rand) (*Linear, error) {
	if in <= 0 || out <= 0 {
		return nil, layerErrorf("linear", name, ErrInvalidDim)
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	w, err := newParam(joinName(name, "weight"), in, out)
	if err != nil {
		return nil, layerErrorf("linear", name, err)
	}
	b, err := newParam(joinName(name, "bias"), 1, out)
	if err != nil {
		return nil, layerErrorf("linear", name, err)
	}
	bound := fanInBound(in)
	fillUniform(w, bound, rng)
	fillUniform(b, bound, rng)

	return &Linear{name: name, in: in, out: out, Weight: w, Bias: b}, nil
}

// In returns the input width.
func (l *Linear) In() int { return l.in }

// Out returns the output width.
func (l *Linear) Out() int { return l.out }

// Forward computes x·W + b for an N×in input, returning N×out.
// A width mismatch is reported as matrix.ErrDimensionMismatch.
func (l *Linear) Forward(x matrix.Matrix) (*matrix.Dense, error) {
	y, err := matrix.Mul(x, l.Weight.Value)
	if err != nil {
		return nil, layerErrorf("linear", l.name, err)
	}
	y, err = matrix.AddRowVector(y, l.Bias.Value.Data())
	if err != nil {
		return nil, layerErrorf("linear", l.name, err)
	}

	return y, nil
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Param { return []*Param{l.Weight, l.Bias} }

// zeroBias resets the bias to zero (attention projections start unbiased).
func (l *Linear) zeroBias() { fillConst(l.Bias, 0) }
