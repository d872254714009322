// Package nn provides the small set of neural building blocks the spectral
// model is assembled from, expressed over the dense matrix layer.
//
// 🚀 What is in the box?
//
//   - Param: a named, mutable *matrix.Dense owned by exactly one layer.
//   - Linear, LayerNorm, GELU, Dropout, FeedForward.
//   - Residual: the pre-norm combinator x + Dropout(f(LayerNorm(x))).
//   - SelfAttention: unmasked multi-head scaled dot-product attention.
//   - Mode: explicit train/eval switch carrying the dropout RNG.
//   - NumericalGradient: central differences for external optimizers.
//
// ✨ Guarantees:
//
//   - Forward passes never write to parameters.
//   - Train/eval is an argument of every forward call, never global state.
//   - Given the same seed, parameter init and dropout masks are identical
//     across runs and platforms.
//
// ⚙️ Usage:
//
//	rng := nn.NewRNG(42)
//	lin, err := nn.NewLinear("proj", 16, 8, rng)
//	y, err := lin.Forward(x) // x: N×16 → y: N×8
//
//	drop, err := nn.NewDropout(0.1)
//	y, err = drop.Forward(nn.Train(7), y)
package nn
