package uniconv

import (
	"sync"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
)

// Wrapper owns two independently parameterized cores run on the same input.
//
//   - Signal: built from cfg as given, one output column (primary prediction).
//   - Value : built from a copy of cfg with SignalDim = HiddenDim and a derived
//     seed, one output column (secondary prediction).
//
// The cores share no weights and no state besides the inputs of a call and a
// lock that keeps their hooks from running concurrently. Hooks are told which
// core called them ("signal" or "value").
type Wrapper struct {
	Signal *Model
	Value  *Model

	parallel bool
}

// NewWrapper builds both cores for nfeat input features.
// cfg is copied and never mutated. Signal draws its parameters from cfg.Seed,
// so it is identical to New(nfeat, 1, cfg); Value draws from
// nn.DeriveSeed(cfg.Seed, 1).
//
// Errors: ErrInvalidShape, ErrInvalidConfig, ErrOptionViolation.
func NewWrapper(nfeat int, cfg Config, opts ...Option) (*Wrapper, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	signal, err := newModel("signal", nfeat, 1, cfg, opts...)
	if err != nil {
		return nil, err
	}

	vcfg := cfg
	vcfg.SignalDim = cfg.HiddenDim
	vcfg.Seed = nn.DeriveSeed(cfg.Seed, 1)
	value, err := newModel("value", nfeat, 1, vcfg, opts...)
	if err != nil {
		return nil, err
	}

	hookMu := new(sync.Mutex)
	signal.hookMu, value.hookMu = hookMu, hookMu

	return &Wrapper{Signal: signal, Value: value, parallel: o.Parallel}, nil
}

// Forward runs both cores on (e, u, x) and returns (value, signal), each N×1.
//
// Sequentially, Signal runs first and then Value, both drawing dropout masks
// from mode in that order. With WithParallel the cores run concurrently on
// mode.Derive(0) and mode.Derive(1). In evaluation mode both paths give
// identical results.
func (w *Wrapper) Forward(mode nn.Mode, e []float64, u, x matrix.Matrix) (value, signal *matrix.Dense, err error) {
	if w.parallel {
		return w.forwardParallel(mode, e, u, x)
	}
	if signal, err = w.Signal.Forward(mode, e, u, x); err != nil {
		return nil, nil, err
	}
	if value, err = w.Value.Forward(mode, e, u, x); err != nil {
		return nil, nil, err
	}

	return value, signal, nil
}

// forwardParallel runs the cores on separate goroutines. When both fail, the
// Signal error is reported.
func (w *Wrapper) forwardParallel(mode nn.Mode, e []float64, u, x matrix.Matrix) (value, signal *matrix.Dense, err error) {
	signalMode, valueMode := mode.Derive(0), mode.Derive(1)

	var wg sync.WaitGroup
	var signalErr, valueErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		signal, signalErr = w.Signal.Forward(signalMode, e, u, x)
	}()
	go func() {
		defer wg.Done()
		value, valueErr = w.Value.Forward(valueMode, e, u, x)
	}()
	wg.Wait()

	if signalErr != nil {
		return nil, nil, signalErr
	}
	if valueErr != nil {
		return nil, nil, valueErr
	}

	return value, signal, nil
}

// Parameters returns the Signal parameters followed by the Value parameters.
// Names carry the "signal." and "value." prefixes.
func (w *Wrapper) Parameters() []*nn.Param { return nn.Collect(w.Signal, w.Value) }

// NumParams returns the total number of scalar parameters of both cores.
func (w *Wrapper) NumParams() int { return nn.CountParams(w.Parameters()) }
