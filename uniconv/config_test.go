package uniconv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spectra/uniconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig checks that the defaults are valid.
func TestDefaultConfig(t *testing.T) {
	cfg := uniconv.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uniconv.DefaultHiddenDim, cfg.HiddenDim)
	assert.Equal(t, uniconv.DefaultFilterDim, cfg.FilterDim)
}

// TestConfigValidate checks every rejection rule.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*uniconv.Config)
		key  string
	}{
		{"hidden zero", func(c *uniconv.Config) { c.HiddenDim = 0 }, "hidden_dim"},
		{"signal negative", func(c *uniconv.Config) { c.SignalDim = -1 }, "signal_dim"},
		{"filter zero", func(c *uniconv.Config) { c.FilterDim = 0 }, "filter_dim"},
		{"filter odd", func(c *uniconv.Config) { c.FilterDim = 7 }, "filter_dim"},
		{"nlayer zero", func(c *uniconv.Config) { c.NLayer = 0 }, "nlayer"},
		{"nheads negative", func(c *uniconv.Config) { c.NHeads = -2 }, "nheads"},
		{"nheads not dividing", func(c *uniconv.Config) { c.NHeads = 3 }, "nheads"},
		{"feat dropout one", func(c *uniconv.Config) { c.FeatDropout = 1 }, "feat_dropout"},
		{"prop dropout negative", func(c *uniconv.Config) { c.PropDropout = -0.1 }, "prop_dropout"},
		{"tran dropout above one", func(c *uniconv.Config) { c.TranDropout = 1.5 }, "tran_dropout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := uniconv.DefaultConfig()
			tc.mut(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, uniconv.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.key)
		})
	}

	cfg := uniconv.DefaultConfig()
	cfg.NHeads = 0 // single head
	require.NoError(t, cfg.Validate())
}

// TestLoadConfig checks YAML overrides on top of the defaults.
func TestLoadConfig(t *testing.T) {
	doc := `
hidden_dim: 16
signal_dim: 8
filter_dim: 4
nlayer: 3
nheads: 2
feat_dropout: 0.1
prop_dropout: 0.2
tran_dropout: 0.3
seed: 99
`
	cfg, err := uniconv.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, uniconv.Config{
		HiddenDim: 16, SignalDim: 8, FilterDim: 4, NLayer: 3, NHeads: 2,
		FeatDropout: 0.1, PropDropout: 0.2, TranDropout: 0.3, Seed: 99,
	}, cfg)

	cfg, err = uniconv.LoadConfig(strings.NewReader("nlayer: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.NLayer)
	assert.Equal(t, uniconv.DefaultHiddenDim, cfg.HiddenDim, "unset keys keep defaults")

	cfg, err = uniconv.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, uniconv.DefaultConfig(), cfg)
}

// TestLoadConfig_Errors checks unknown keys, bad types and invalid values.
func TestLoadConfig_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key": "hidden_dims: 3\n",
		"bad type":    "nlayer: many\n",
		"invalid":     "filter_dim: 5\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uniconv.LoadConfig(strings.NewReader(doc))
			require.ErrorIs(t, err, uniconv.ErrInvalidConfig)
		})
	}
}

// TestLoadConfigFile checks the file entry point.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hidden_dim: 12\nsignal_dim: 6\n"), 0o600))

	cfg, err := uniconv.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.HiddenDim)
	assert.Equal(t, 6, cfg.SignalDim)

	_, err = uniconv.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
