package nn

import "github.com/katalvlaran/spectra/matrix"

// LayerNormEps is the variance stabilizer used by every LayerNorm.
const LayerNormEps = 1e-5

// LayerNorm normalizes each row to zero mean and unit variance, then applies
// a learned per-column scale (Gain, init 1) and shift (Shift, init 0).
type LayerNorm struct {
	name  string
	dim   int
	Gain  *Param // 1×dim
	Shift *Param // 1×dim
}

// NewLayerNorm allocates a LayerNorm over rows of width dim.
// Errors: ErrInvalidDim when dim is not positive.
func NewLayerNorm(name string, dim int) (*LayerNorm, error) {
	if dim <= 0 {
		return nil, layerErrorf("layernorm", name, ErrInvalidDim)
	}
	g, err := newParam(joinName(name, "weight"), 1, dim)
	if err != nil {
		return nil, layerErrorf("layernorm", name, err)
	}
	s, err := newParam(joinName(name, "bias"), 1, dim)
	if err != nil {
		return nil, layerErrorf("layernorm", name, err)
	}
	fillConst(g, 1)

	return &LayerNorm{name: name, dim: dim, Gain: g, Shift: s}, nil
}

// Forward normalizes an N×dim input. A width-1 row normalizes to Shift.
// A width other than dim fails with matrix.ErrDimensionMismatch at the gain step.
func (ln *LayerNorm) Forward(x matrix.Matrix) (*matrix.Dense, error) {
	y, err := matrix.StandardizeRows(x, LayerNormEps)
	if err != nil {
		return nil, layerErrorf("layernorm", ln.name, err)
	}
	if y, err = matrix.ScaleCols(y, ln.Gain.Value.Data()); err != nil {
		return nil, layerErrorf("layernorm", ln.name, err)
	}
	if y, err = matrix.AddRowVector(y, ln.Shift.Value.Data()); err != nil {
		return nil, layerErrorf("layernorm", ln.name, err)
	}

	return y, nil
}

// Parameters returns [gain, shift].
func (ln *LayerNorm) Parameters() []*Param { return []*Param{ln.Gain, ln.Shift} }
