// Package uniconv implements a spectral graph convolution network whose
// filter is learned as a function of the whole Laplacian spectrum.
//
// 🚀 What is UniConv?
//
// Given the eigendecomposition L = U·diag(e)·Uᵀ of a graph Laplacian and node
// features X, the model:
//
//  1. encodes every eigenvalue with a sinusoidal encoding (SineEncoding),
//  2. lets the eigenvalues attend to each other and decodes one coefficient
//     per eigenvalue (Filter),
//  3. mixes node signals in the spectral domain, h += U·diag(filter)·Uᵀ·h,
//     followed by a propagation layer, nlayer times (Model),
//  4. classifies each node from its final signal.
//
// Wrapper runs two independent cores on the same input and returns a
// (value, signal) pair.
//
// ✨ Key properties:
//
//   - One filter per forward call, shared by every layer.
//   - Train/eval is an explicit nn.Mode argument of Forward.
//   - Shape conflicts surface as wrapped matrix.ErrDimensionMismatch.
//   - Deterministic: same Config.Seed ⇒ same parameters; eval mode ⇒
//     bit-identical outputs.
//
// ⚙️ Usage:
//
//	cfg := uniconv.DefaultConfig()
//	cfg.Seed = 42
//	model, err := uniconv.New(nfeat, nclass, cfg)
//	if err != nil {
//	    return err
//	}
//	pred, err := model.Forward(nn.Eval(), e, u, x) // N×nclass
//
// The spectral package produces e and u from an edge list.
package uniconv
