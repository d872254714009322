package nn

import "math/rand"

// Mode selects training or evaluation behavior for a single forward call.
//
// In evaluation mode every Dropout is the identity and no randomness is drawn,
// so repeated calls are bit-identical. In training mode dropout masks are
// drawn from the Mode's RNG; the zero value is evaluation mode.
//
// A training Mode must not be used by two goroutines at once; call Derive to
// give each goroutine its own stream.
type Mode struct {
	train bool
	rng   *rand.Rand
}

// Eval returns the evaluation mode.
func Eval() Mode { return Mode{} }

// Train returns a training mode whose dropout stream is seeded with seed
// (seed==0 ⇒ default seed).
func Train(seed int64) Mode { return Mode{train: true, rng: NewRNG(seed)} }

// TrainWith returns a training mode drawing from rng. A nil rng falls back to
// the default seed.
func TrainWith(rng *rand.Rand) Mode {
	if rng == nil {
		rng = NewRNG(0)
	}

	return Mode{train: true, rng: rng}
}

// Training reports whether dropout is active.
func (m Mode) Training() bool { return m.train }

// Derive returns a mode with the same train flag and an independent RNG stream.
// Evaluation modes are returned unchanged.
func (m Mode) Derive(stream uint64) Mode {
	if !m.train {
		return m
	}

	return Mode{train: true, rng: DeriveRNG(m.rng, stream)}
}
