// Package spectra is a pure-Go spectral graph neural network: it predicts
// node-level signals from a graph's Laplacian eigendecomposition and node
// features, with a spectral filter learned by attention over the eigenvalues.
//
// 🚀 What is in spectra?
//
//	A small, deterministic stack organized bottom-up:
//		• matrix  : row-major Dense matrices and the kernels the layers need
//		• nn      : Linear, LayerNorm, GELU, Dropout, self-attention, residual blocks
//		• spectral: edge list → normalized Laplacian → (eigenvalues, eigenvectors)
//		• uniconv : the UniConv model and its dual-output wrapper
//
// ✨ Why spectra?
//
//   - Explicit train/eval mode per forward call, no global switches
//   - Seeded, reproducible parameter init and dropout masks
//   - Errors, never panics, on bad shapes or configs
//   - Hooks (WithFilterHook, WithLayerHook) for observing a forward pass
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	basis, _ := spectral.FromEdges(4, []spectral.Edge{{0, 1, 0}, {1, 2, 0}, {2, 3, 0}, {3, 0, 0}})
//	model, _ := uniconv.New(nfeat, nclass, uniconv.DefaultConfig())
//	pred, _ := model.Forward(nn.Eval(), basis.Values, basis.Vectors, x)
//
// Training is driven from outside: enumerate Parameters(), update their
// values between forward calls, and use nn.NumericalGradient when no
// autodiff engine is at hand.
//
//	go get github.com/katalvlaran/spectra
package spectra
