package uniconv

import "github.com/katalvlaran/spectra/matrix"

// Option configures runtime behavior of a Model or Wrapper.
// If an Option is invalid (e.g. a nil hook), it is recorded internally and
// surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds hooks and execution switches.
//
// Hooks receive the name of the core that called them: "" for a Model built
// with New, "signal" or "value" inside a Wrapper. The two cores of a Wrapper
// never run their hooks at the same time, also under WithParallel, so a hook
// may append to a slice or print without its own locking.
type Options struct {
	// OnFilter is called once per forward pass with the N×1 filter
	// coefficients, before the first layer. It must not modify or retain them.
	OnFilter func(core string, coeffs *matrix.Dense)

	// OnLayer is called after propagation layer i with the updated hidden
	// matrix. It must not modify or retain it.
	OnLayer func(core string, layer int, h *matrix.Dense)

	// Parallel makes Wrapper.Forward run both cores concurrently.
	Parallel bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns no-op hooks and sequential execution.
func DefaultOptions() Options {
	return Options{
		OnFilter: func(string, *matrix.Dense) {},
		OnLayer:  func(string, int, *matrix.Dense) {},
	}
}

// WithFilterHook observes the filter coefficients of every forward pass.
func WithFilterHook(fn func(core string, coeffs *matrix.Dense)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.OnFilter = fn
	}
}

// WithLayerHook observes the hidden matrix after every propagation layer.
func WithLayerHook(fn func(core string, layer int, h *matrix.Dense)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.OnLayer = fn
	}
}

// WithParallel runs the two cores of a Wrapper on separate goroutines, each
// with its own dropout stream derived from the caller's Mode. Evaluation
// results are identical to sequential execution; training results are
// reproducible under a fixed seed but differ from the sequential stream.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
