package nn

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
)

// SelfAttention is unmasked multi-head scaled dot-product self-attention over
// the rows of its input: every row attends to every row.
//
// Layout:
//   - InProj : dim → 3·dim packed [Q | K | V], Xavier-uniform weight, zero bias.
//   - heads  : dim split into Heads contiguous blocks of dim/Heads columns.
//   - OutProj: dim → dim, zero bias.
//
// Attention weights are dropped out at the configured rate in training mode.
type SelfAttention struct {
	name    string
	dim     int
	heads   int
	drop    Dropout
	InProj  *Linear
	OutProj *Linear
}

// NewSelfAttention allocates the projections from rng (InProj first).
// Errors: ErrInvalidDim, ErrHeadsMismatch, ErrInvalidRate.
func NewSelfAttention(name string, dim, heads int, rate float64, rng *rand.Rand) (*SelfAttention, error) {
	if dim <= 0 || heads <= 0 {
		return nil, layerErrorf("attention", name, ErrInvalidDim)
	}
	if dim%heads != 0 {
		return nil, layerErrorf("attention", name, ErrHeadsMismatch)
	}
	drop, err := NewDropout(rate)
	if err != nil {
		return nil, layerErrorf("attention", name, err)
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	in, err := NewLinear(joinName(name, "in_proj"), dim, 3*dim, rng)
	if err != nil {
		return nil, err
	}
	fillUniform(in.Weight, xavierBound(dim, 3*dim), rng)
	in.zeroBias()

	out, err := NewLinear(joinName(name, "out_proj"), dim, dim, rng)
	if err != nil {
		return nil, err
	}
	out.zeroBias()

	return &SelfAttention{name: name, dim: dim, heads: heads, drop: drop, InProj: in, OutProj: out}, nil
}

// Heads returns the number of attention heads.
func (a *SelfAttention) Heads() int { return a.heads }

// Forward attends over the N rows of an N×dim input and returns N×dim.
func (a *SelfAttention) Forward(mode Mode, x *matrix.Dense) (*matrix.Dense, error) {
	qkv, err := a.InProj.Forward(x)
	if err != nil {
		return nil, err
	}

	headDim := a.dim / a.heads
	scale := 1 / math.Sqrt(float64(headDim))
	outs := make([]matrix.Matrix, a.heads)
	for h := 0; h < a.heads; h++ {
		o, err := a.head(mode, qkv, h*headDim, headDim, scale)
		if err != nil {
			return nil, layerErrorf("attention", a.name, err)
		}
		outs[h] = o
	}
	joined, err := matrix.ConcatCols(outs...)
	if err != nil {
		return nil, layerErrorf("attention", a.name, err)
	}

	return a.OutProj.Forward(joined)
}

// head computes softmax((Q_h·scale)·K_hᵀ)·V_h for the column block starting at off.
func (a *SelfAttention) head(mode Mode, qkv *matrix.Dense, off, width int, scale float64) (*matrix.Dense, error) {
	q, err := matrix.Columns(qkv, off, width)
	if err != nil {
		return nil, err
	}
	k, err := matrix.Columns(qkv, a.dim+off, width)
	if err != nil {
		return nil, err
	}
	v, err := matrix.Columns(qkv, 2*a.dim+off, width)
	if err != nil {
		return nil, err
	}

	if q, err = matrix.Scale(q, scale); err != nil {
		return nil, err
	}
	kt, err := matrix.Transpose(k)
	if err != nil {
		return nil, err
	}
	scores, err := matrix.Mul(q, kt)
	if err != nil {
		return nil, err
	}
	weights, err := matrix.SoftmaxRows(scores)
	if err != nil {
		return nil, err
	}
	if weights, err = a.drop.Forward(mode, weights); err != nil {
		return nil, err
	}

	return matrix.Mul(weights, v)
}

// Parameters returns the input and output projection parameters.
func (a *SelfAttention) Parameters() []*Param { return Collect(a.InProj, a.OutProj) }
