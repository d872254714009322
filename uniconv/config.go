// Package uniconv - model configuration.
//
// Config mirrors the hyperparameter mapping handed over by the preprocessing
// side (keys hidden_dim, signal_dim, filter_dim, nlayer, feat_dropout,
// prop_dropout, tran_dropout) plus nheads and seed. It can be built in code
// from DefaultConfig or loaded from YAML with the same keys.
package uniconv

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults (single source of truth for DefaultConfig).
const (
	DefaultHiddenDim   = 64
	DefaultSignalDim   = 64
	DefaultFilterDim   = 32
	DefaultNLayer      = 2
	DefaultNHeads      = 1
	DefaultFeatDropout = 0.0
	DefaultPropDropout = 0.0
	DefaultTranDropout = 0.0
)

// Config holds the hyperparameters of one convolution core.
//
// Fields:
//   - HiddenDim:   width of the working node representation.
//   - SignalDim:   width produced by the last propagation layer (classifier input).
//   - FilterDim:   width of the eigenvalue encoding inside the filter; must be even.
//   - NLayer:      number of spectral mixing + propagation steps (≥ 1).
//   - NHeads:      attention heads in the filter; 0 means a single head.
//   - FeatDropout: dropout before the feature encoder and before the classifier.
//   - PropDropout: dropout at the entry of every propagation layer.
//   - TranDropout: dropout inside the filter (attention weights and both residual branches).
//   - Seed:        parameter initialization seed; 0 selects the package default seed.
type Config struct {
	HiddenDim   int     `yaml:"hidden_dim"`
	SignalDim   int     `yaml:"signal_dim"`
	FilterDim   int     `yaml:"filter_dim"`
	NLayer      int     `yaml:"nlayer"`
	NHeads      int     `yaml:"nheads"`
	FeatDropout float64 `yaml:"feat_dropout"`
	PropDropout float64 `yaml:"prop_dropout"`
	TranDropout float64 `yaml:"tran_dropout"`
	Seed        int64   `yaml:"seed"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		HiddenDim:   DefaultHiddenDim,
		SignalDim:   DefaultSignalDim,
		FilterDim:   DefaultFilterDim,
		NLayer:      DefaultNLayer,
		NHeads:      DefaultNHeads,
		FeatDropout: DefaultFeatDropout,
		PropDropout: DefaultPropDropout,
		TranDropout: DefaultTranDropout,
	}
}

// heads resolves the 0 ⇒ single head policy.
func (c Config) heads() int {
	if c.NHeads == 0 {
		return 1
	}

	return c.NHeads
}

// configErrorf tags ErrInvalidConfig with the offending key.
func configErrorf(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...))
}

// Validate checks every field and returns the first violation, wrapped
// around ErrInvalidConfig.
//
// Rules:
//   - hidden_dim, signal_dim, filter_dim > 0; filter_dim even.
//   - nlayer ≥ 1; nheads ≥ 0 and filter_dim divisible by the resolved head count.
//   - every dropout rate in [0, 1).
func (c Config) Validate() error {
	switch {
	case c.HiddenDim <= 0:
		return configErrorf("hidden_dim", "must be > 0, got %d", c.HiddenDim)
	case c.SignalDim <= 0:
		return configErrorf("signal_dim", "must be > 0, got %d", c.SignalDim)
	case c.FilterDim <= 0:
		return configErrorf("filter_dim", "must be > 0, got %d", c.FilterDim)
	case c.FilterDim%2 != 0:
		return configErrorf("filter_dim", "must be even, got %d", c.FilterDim)
	case c.NLayer < 1:
		return configErrorf("nlayer", "must be >= 1, got %d", c.NLayer)
	case c.NHeads < 0:
		return configErrorf("nheads", "must be >= 0, got %d", c.NHeads)
	case c.FilterDim%c.heads() != 0:
		return configErrorf("nheads", "%d does not divide filter_dim %d", c.heads(), c.FilterDim)
	}
	for _, r := range []struct {
		key  string
		rate float64
	}{
		{"feat_dropout", c.FeatDropout},
		{"prop_dropout", c.PropDropout},
		{"tran_dropout", c.TranDropout},
	} {
		if !(r.rate >= 0 && r.rate < 1) {
			return configErrorf(r.key, "must be in [0, 1), got %g", r.rate)
		}
	}

	return nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates
// the result. Unknown keys are rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile opens path and delegates to LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("uniconv: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}
