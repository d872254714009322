package uniconv

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
)

// EigenScale multiplies every eigenvalue before the sinusoidal expansion.
const EigenScale = 100

// frequencyBase is the 10000 of the transformer positional encoding.
const frequencyBase = 10000

// SineEncoding lifts each eigenvalue to a dim-wide vector:
//
//	pe   = (EigenScale·λ) · div,  div[k] = exp(2k · −ln(10000)/dim)
//	feat = [λ, sin(pe), cos(pe)]          (1 + dim columns for even dim)
//	out  = Proj(feat)                     (Linear dim+1 → dim)
//
// It is the transformer positional encoding with the integer position
// replaced by a continuous eigenvalue.
type SineEncoding struct {
	dim  int
	div  []float64
	Proj *nn.Linear
}

// NewSineEncoding allocates the projection (dim+1 → dim) from rng.
func NewSineEncoding(name string, dim int, rng *rand.Rand) (*SineEncoding, error) {
	proj, err := nn.NewLinear(name, dim+1, dim, rng)
	if err != nil {
		return nil, err
	}

	return &SineEncoding{dim: dim, div: divisors(dim), Proj: proj}, nil
}

// divisors returns exp(idx · −ln(10000)/dim) for idx = 0, 2, 4, … < dim.
func divisors(dim int) []float64 {
	div := make([]float64, 0, (dim+1)/2)
	step := -math.Log(frequencyBase) / float64(dim)
	for idx := 0; idx < dim; idx += 2 {
		div = append(div, math.Exp(float64(idx)*step))
	}

	return div
}

// Features returns the N×(1+2·len(div)) matrix [λ, sin(pe), cos(pe)] before
// the learned projection.
// Errors: matrix.ErrInvalidDimensions for an empty spectrum.
func (s *SineEncoding) Features(e []float64) (*matrix.Dense, error) {
	half := len(s.div)
	width := 1 + 2*half
	feat, err := matrix.NewDense(len(e), width)
	if err != nil {
		return nil, err
	}
	var row []float64
	var phase float64
	for i, lambda := range e {
		row, _ = feat.RowView(i)
		row[0] = lambda
		for k, d := range s.div {
			phase = lambda * EigenScale * d
			row[1+k] = math.Sin(phase)
			row[1+half+k] = math.Cos(phase)
		}
	}

	return feat, nil
}

// Forward encodes e into an N×dim matrix.
// An odd dim gives dim+2 feature columns and fails at the projection with
// matrix.ErrDimensionMismatch.
func (s *SineEncoding) Forward(e []float64) (*matrix.Dense, error) {
	feat, err := s.Features(e)
	if err != nil {
		return nil, err
	}

	return s.Proj.Forward(feat)
}

// Parameters returns the projection parameters.
func (s *SineEncoding) Parameters() []*nn.Param { return s.Proj.Parameters() }
