package uniconv_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
	"github.com/katalvlaran/spectra/uniconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrapper_Construction checks the two cores and that cfg is not mutated.
func TestWrapper_Construction(t *testing.T) {
	cfg := smallConfig()
	orig := cfg
	w, err := uniconv.NewWrapper(4, cfg)
	require.NoError(t, err)

	assert.Equal(t, orig, cfg)
	assert.Equal(t, cfg.SignalDim, w.Signal.Config().SignalDim)
	assert.Equal(t, cfg.HiddenDim, w.Value.Config().SignalDim)
	assert.Equal(t, cfg.HiddenDim, w.Value.Classifier.In())
	assert.Equal(t, 1, w.Signal.NClass())
	assert.Equal(t, 1, w.Value.NClass())

	var signal, value int
	for _, p := range w.Parameters() {
		switch {
		case strings.HasPrefix(p.Name, "signal."):
			signal++
		case strings.HasPrefix(p.Name, "value."):
			value++
		default:
			t.Fatalf("unprefixed parameter %q", p.Name)
		}
	}
	assert.Equal(t, len(w.Signal.Parameters()), signal)
	assert.Equal(t, len(w.Value.Parameters()), value)
	assert.Equal(t, w.Signal.NumParams()+w.Value.NumParams(), w.NumParams())

	_, err = uniconv.NewWrapper(0, cfg)
	require.ErrorIs(t, err, uniconv.ErrInvalidShape)
	_, err = uniconv.NewWrapper(4, cfg, uniconv.WithFilterHook(nil))
	require.ErrorIs(t, err, uniconv.ErrOptionViolation)
}

// TestWrapper_Forward checks shapes, output order and that the outputs differ.
func TestWrapper_Forward(t *testing.T) {
	cfg := smallConfig()
	w, err := uniconv.NewWrapper(4, cfg)
	require.NoError(t, err)
	e, u, x := ringInputs(t, 6, 4)

	value, signal, err := w.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)
	for _, out := range []*matrix.Dense{value, signal} {
		assert.Equal(t, 6, out.Rows())
		assert.Equal(t, 1, out.Cols())
	}
	assert.NotEqual(t, value.Data(), signal.Data())

	// signal is the primary core, identical to a standalone model on the same seed
	single, err := uniconv.New(4, 1, cfg)
	require.NoError(t, err)
	want, err := single.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), signal.Data())
}

// TestWrapper_NoCrossTalk perturbs the Value core and checks that the signal
// output is unchanged.
func TestWrapper_NoCrossTalk(t *testing.T) {
	w, err := uniconv.NewWrapper(4, smallConfig())
	require.NoError(t, err)
	e, u, x := ringInputs(t, 5, 4)

	value0, signal0, err := w.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)

	for _, p := range w.Value.Parameters() {
		for i := range p.Value.Data() {
			p.Value.Data()[i] += 0.1
		}
	}
	value1, signal1, err := w.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)

	assert.Equal(t, signal0.Data(), signal1.Data())
	assert.NotEqual(t, value0.Data(), value1.Data())
}

// TestWrapper_Parallel checks that parallel eval equals sequential eval and
// that parallel training is reproducible.
func TestWrapper_Parallel(t *testing.T) {
	cfg := smallConfig()
	cfg.FeatDropout, cfg.PropDropout, cfg.TranDropout = 0.2, 0.2, 0.2
	seq, err := uniconv.NewWrapper(4, cfg)
	require.NoError(t, err)
	par, err := uniconv.NewWrapper(4, cfg, uniconv.WithParallel())
	require.NoError(t, err)
	e, u, x := ringInputs(t, 6, 4)

	sv, ss, err := seq.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)
	pv, ps, err := par.Forward(nn.Eval(), e, u, x)
	require.NoError(t, err)
	assert.Equal(t, sv.Data(), pv.Data())
	assert.Equal(t, ss.Data(), ps.Data())

	av, as, err := par.Forward(nn.Train(9), e, u, x)
	require.NoError(t, err)
	bv, bs, err := par.Forward(nn.Train(9), e, u, x)
	require.NoError(t, err)
	assert.Equal(t, av.Data(), bv.Data())
	assert.Equal(t, as.Data(), bs.Data())
}

// TestWrapper_ParallelHooks shares unsynchronized hook state across both
// cores under WithParallel; run with -race. Every call must carry its core.
func TestWrapper_ParallelHooks(t *testing.T) {
	const forwards = 20
	cfg := smallConfig()
	cfg.NLayer = 2

	var filterCores []string
	layerCalls := map[string][]int{}
	w, err := uniconv.NewWrapper(4, cfg,
		uniconv.WithParallel(),
		uniconv.WithFilterHook(func(core string, _ *matrix.Dense) {
			filterCores = append(filterCores, core)
		}),
		uniconv.WithLayerHook(func(core string, i int, _ *matrix.Dense) {
			layerCalls[core] = append(layerCalls[core], i)
		}),
	)
	require.NoError(t, err)
	e, u, x := ringInputs(t, 6, 4)

	for i := 0; i < forwards; i++ {
		_, _, err = w.Forward(nn.Eval(), e, u, x)
		require.NoError(t, err)
	}

	require.Len(t, filterCores, 2*forwards)
	counts := map[string]int{}
	for _, c := range filterCores {
		counts[c]++
	}
	assert.Equal(t, map[string]int{"signal": forwards, "value": forwards}, counts)

	require.Len(t, layerCalls, 2)
	for _, core := range []string{"signal", "value"} {
		calls := layerCalls[core]
		require.Len(t, calls, forwards*cfg.NLayer, core)
		for i := 0; i < len(calls); i += cfg.NLayer {
			assert.Equal(t, []int{0, 1}, calls[i:i+cfg.NLayer], core)
		}
	}
}

// TestWrapper_ForwardError checks error propagation on both paths.
func TestWrapper_ForwardError(t *testing.T) {
	e, u, _ := ringInputs(t, 4, 4)
	bad := features(t, 4, 2, 1)

	for _, opts := range [][]uniconv.Option{nil, {uniconv.WithParallel()}} {
		w, err := uniconv.NewWrapper(4, smallConfig(), opts...)
		require.NoError(t, err)
		_, _, err = w.Forward(nn.Eval(), e, u, bad)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}
