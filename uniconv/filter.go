package uniconv

import (
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
)

// Filter maps a spectrum e (length N) to one coefficient per eigenvalue:
//
//	eig    = SineEncoding(e)
//	eig    = eig + Dropout(SelfAttention(LayerNorm(eig)))
//	eig    = eig + Dropout(FeedForward(LayerNorm(eig)))
//	coeffs = Decoder(eig)                                  (N×1)
//
// Because of the attention step, the coefficient of each eigenvalue depends
// on the whole spectrum, not only on its own value.
type Filter struct {
	Encoder   *SineEncoding
	Decoder   *nn.Linear
	AttnBlock *nn.Residual
	FFNBlock  *nn.Residual
	Attn      *nn.SelfAttention
	FFN       *nn.FeedForward
}

// NewFilter allocates a filter of width dim with the given head count and
// dropout rate. Parameters are drawn from rng in declaration order.
func NewFilter(name string, dim, heads int, dropout float64, rng *rand.Rand) (*Filter, error) {
	enc, err := NewSineEncoding(join(name, "eig_encoder"), dim, rng)
	if err != nil {
		return nil, err
	}
	dec, err := nn.NewLinear(join(name, "decoder"), dim, 1, rng)
	if err != nil {
		return nil, err
	}
	attnBlock, err := nn.NewResidual(join(name, "mha_norm"), dim, dropout)
	if err != nil {
		return nil, err
	}
	ffnBlock, err := nn.NewResidual(join(name, "ffn_norm"), dim, dropout)
	if err != nil {
		return nil, err
	}
	attn, err := nn.NewSelfAttention(join(name, "mha"), dim, heads, dropout, rng)
	if err != nil {
		return nil, err
	}
	ffn, err := nn.NewFeedForward(join(name, "ffn"), dim, dim, dim, rng)
	if err != nil {
		return nil, err
	}

	return &Filter{
		Encoder:   enc,
		Decoder:   dec,
		AttnBlock: attnBlock,
		FFNBlock:  ffnBlock,
		Attn:      attn,
		FFN:       ffn,
	}, nil
}

// Forward returns the N×1 filter coefficients for e.
func (f *Filter) Forward(mode nn.Mode, e []float64) (*matrix.Dense, error) {
	eig, err := f.Encoder.Forward(e)
	if err != nil {
		return nil, err
	}
	if eig, err = f.AttnBlock.Forward(mode, eig, f.Attn.Forward); err != nil {
		return nil, err
	}
	eig, err = f.FFNBlock.Forward(mode, eig, func(_ nn.Mode, x *matrix.Dense) (*matrix.Dense, error) {
		return f.FFN.Forward(x)
	})
	if err != nil {
		return nil, err
	}

	return f.Decoder.Forward(eig)
}

// Parameters returns every filter parameter.
func (f *Filter) Parameters() []*nn.Param {
	return nn.Collect(f.Encoder, f.Decoder, f.AttnBlock, f.FFNBlock, f.Attn, f.FFN)
}

// join builds a dotted name, skipping an empty prefix.
func join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
