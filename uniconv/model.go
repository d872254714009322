package uniconv

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
)

// Model is one spectral graph convolution core.
//
// Forward, for eigenvalues e (N), eigenvectors u (N×N) and features x (N×F):
//
//	h      = Encoder(FeatDropIn(x))                 N×hidden
//	filter = Filter(e)                              N×1, computed once
//	for each layer l:
//	    h = Layers[l](h + u·(filter ⊙ (uᵀ·h)))
//	pred   = Classifier(FeatDropOut(h))             N×nclass
//
// u·diag(filter)·uᵀ applies a learned function of the graph Laplacian to the
// signal. The same filter is used at every depth. Filter values are
// unconstrained and residual accumulation can grow across layers; nothing is
// clipped or checked for finiteness.
type Model struct {
	cfg    Config
	nfeat  int
	nclass int
	opts   Options
	core   string      // hook label: "" standalone, "signal"/"value" in a Wrapper
	hookMu *sync.Mutex // shared by the cores of one Wrapper; nil for New

	FeatDropIn  nn.Dropout
	FeatDropOut nn.Dropout
	Encoder     *nn.Linear
	Classifier  *nn.Linear
	Filter      *Filter
	Layers      []*PropagationLayer
}

// New builds a core for nfeat input features and nclass outputs.
// cfg is validated and copied; parameters are drawn from nn.NewRNG(cfg.Seed).
//
// Errors: ErrInvalidShape, ErrInvalidConfig, ErrOptionViolation.
func New(nfeat, nclass int, cfg Config, opts ...Option) (*Model, error) {
	return newModel("", nfeat, nclass, cfg, opts...)
}

// newModel builds a core whose parameter names start with prefix.
func newModel(prefix string, nfeat, nclass int, cfg Config, opts ...Option) (*Model, error) {
	if nfeat <= 0 || nclass <= 0 {
		return nil, ErrInvalidShape
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	m := &Model{cfg: cfg, nfeat: nfeat, nclass: nclass, opts: o, core: prefix}
	rng := nn.NewRNG(cfg.Seed)

	if m.Encoder, err = nn.NewLinear(join(prefix, "feat_encoder"), nfeat, cfg.HiddenDim, rng); err != nil {
		return nil, err
	}
	if m.Classifier, err = nn.NewLinear(join(prefix, "classifier"), cfg.SignalDim, nclass, rng); err != nil {
		return nil, err
	}
	if m.Filter, err = NewFilter(join(prefix, "filter"), cfg.FilterDim, cfg.heads(), cfg.TranDropout, rng); err != nil {
		return nil, err
	}
	if m.FeatDropIn, err = nn.NewDropout(cfg.FeatDropout); err != nil {
		return nil, err
	}
	m.FeatDropOut = m.FeatDropIn

	m.Layers = make([]*PropagationLayer, cfg.NLayer)
	out := cfg.HiddenDim
	for i := range m.Layers {
		if i == cfg.NLayer-1 {
			out = cfg.SignalDim
		}
		name := join(prefix, fmt.Sprintf("layers.%d", i))
		if m.Layers[i], err = NewPropagationLayer(name, cfg.HiddenDim, out, cfg.PropDropout, rng); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Config returns the configuration the model was built with.
func (m *Model) Config() Config { return m.cfg }

// NFeat returns the expected feature width F.
func (m *Model) NFeat() int { return m.nfeat }

// NClass returns the output width.
func (m *Model) NClass() int { return m.nclass }

// Forward predicts an N×nclass matrix from (e, u, x).
//
// No shapes are checked up front: a conflict between e, u, x and the
// configured widths fails with matrix.ErrDimensionMismatch at the first
// operation that sees it, wrapped with that stage (e.g. "layer 0: spectral
// projection"). mode selects dropout behavior for this call only.
func (m *Model) Forward(mode nn.Mode, e []float64, u, x matrix.Matrix) (*matrix.Dense, error) {
	xd, err := matrix.AsDense(x)
	if err != nil {
		return nil, stageErrorf("features", err)
	}
	h, err := m.FeatDropIn.Forward(mode, xd)
	if err != nil {
		return nil, stageErrorf("feature dropout", err)
	}
	if h, err = m.Encoder.Forward(h); err != nil {
		return nil, stageErrorf("feature encoder", err)
	}

	filter, err := m.Filter.Forward(mode, e)
	if err != nil {
		return nil, stageErrorf("filter", err)
	}
	m.onFilter(filter)
	coeffs := filter.Data() // N×1 is contiguous: one coefficient per row

	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, stageErrorf("eigenvectors", err)
	}

	var utx, y *matrix.Dense
	for i, layer := range m.Layers {
		if utx, err = matrix.Mul(ut, h); err != nil {
			return nil, layerErrorf(i, "spectral projection", err)
		}
		if utx, err = matrix.ScaleRows(utx, coeffs); err != nil {
			return nil, layerErrorf(i, "spectral filtering", err)
		}
		if y, err = matrix.Mul(u, utx); err != nil {
			return nil, layerErrorf(i, "inverse projection", err)
		}
		if h, err = matrix.Add(h, y); err != nil {
			return nil, layerErrorf(i, "residual", err)
		}
		if h, err = layer.Forward(mode, h); err != nil {
			return nil, layerErrorf(i, "propagation", err)
		}
		m.onLayer(i, h)
	}

	if h, err = m.FeatDropOut.Forward(mode, h); err != nil {
		return nil, stageErrorf("output dropout", err)
	}
	pred, err := m.Classifier.Forward(h)
	if err != nil {
		return nil, stageErrorf("classifier", err)
	}

	return pred, nil
}

// onFilter runs the filter hook, under hookMu when the model belongs to a Wrapper.
func (m *Model) onFilter(coeffs *matrix.Dense) {
	if m.hookMu != nil {
		m.hookMu.Lock()
		defer m.hookMu.Unlock()
	}
	m.opts.OnFilter(m.core, coeffs)
}

// onLayer runs the layer hook, under hookMu when the model belongs to a Wrapper.
func (m *Model) onLayer(i int, h *matrix.Dense) {
	if m.hookMu != nil {
		m.hookMu.Lock()
		defer m.hookMu.Unlock()
	}
	m.opts.OnLayer(m.core, i, h)
}

// Parameters enumerates every learned tensor in a stable order:
// feature encoder, classifier, filter, then layers 0..nlayer-1.
func (m *Model) Parameters() []*nn.Param {
	mods := []nn.Module{m.Encoder, m.Classifier, m.Filter}
	for _, l := range m.Layers {
		mods = append(mods, l)
	}

	return nn.Collect(mods...)
}

// NumParams returns the total number of scalar parameters.
func (m *Model) NumParams() int { return nn.CountParams(m.Parameters()) }
