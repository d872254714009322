package nn

import (
	"math"

	"github.com/katalvlaran/spectra/matrix"
)

// DefaultGradStep is the central-difference step used when callers pass 0.
const DefaultGradStep = 1e-5

// NumericalGradient estimates ∂loss/∂p for every entry of every parameter by
// central differences:
//
//	g = (loss(p+step) − loss(p−step)) / (2·step)
//
// Each entry is restored to its original value before the next probe, also
// when loss fails. The returned matrices have the shapes of the parameters,
// in the same order. Probing costs 2·CountParams(params) loss evaluations, so
// this is meant for small models, gradient checks and derivative-free tuning.
//
// loss must run its forward passes in evaluation mode (or with a fixed-seed
// Mode rebuilt per call), otherwise dropout noise dominates the estimate.
//
// Errors: ErrInvalidStep, or the first error returned by loss.
func NumericalGradient(params []*Param, loss func() (float64, error), step float64) ([]*matrix.Dense, error) {
	if step == 0 {
		step = DefaultGradStep
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, ErrInvalidStep
	}

	grads := make([]*matrix.Dense, len(params))
	for pi, p := range params {
		g, err := matrix.NewDense(p.Value.Rows(), p.Value.Cols())
		if err != nil {
			return nil, err
		}
		data, gd := p.Value.Data(), g.Data()
		for i := range data {
			orig := data[i]

			data[i] = orig + step
			plus, err := loss()
			if err != nil {
				data[i] = orig
				return nil, err
			}

			data[i] = orig - step
			minus, err := loss()
			data[i] = orig
			if err != nil {
				return nil, err
			}

			gd[i] = (plus - minus) / (2 * step)
		}
		grads[pi] = g
	}

	return grads, nil
}
