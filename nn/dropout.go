package nn

import (
	"github.com/katalvlaran/spectra/matrix"
)

// Dropout zeroes each entry with probability Rate during training and scales
// survivors by 1/(1-Rate). It is the identity in evaluation mode.
type Dropout struct {
	rate float64
}

// NewDropout validates rate ∈ [0, 1).
// Errors: ErrInvalidRate.
func NewDropout(rate float64) (Dropout, error) {
	if !(rate >= 0 && rate < 1) {
		return Dropout{}, ErrInvalidRate
	}

	return Dropout{rate: rate}, nil
}

// Rate returns the drop probability.
func (d Dropout) Rate() float64 { return d.rate }

// Forward applies the dropout mask. In evaluation mode, or with rate 0, x is
// returned as-is without drawing from the RNG.
// One uniform draw is consumed per entry, in row-major order.
func (d Dropout) Forward(mode Mode, x *matrix.Dense) (*matrix.Dense, error) {
	if !mode.train || d.rate == 0 {
		return x, nil
	}
	if x == nil {
		return nil, layerErrorf("dropout", "", matrix.ErrNilMatrix)
	}
	mask, err := matrix.NewDense(x.Rows(), x.Cols())
	if err != nil {
		return nil, layerErrorf("dropout", "", err)
	}
	keep := 1 / (1 - d.rate)
	m := mask.Data()
	for i := range m {
		if mode.rng.Float64() >= d.rate {
			m[i] = keep
		}
	}
	y, err := matrix.Hadamard(x, mask)
	if err != nil {
		return nil, layerErrorf("dropout", "", err)
	}

	return y, nil
}
