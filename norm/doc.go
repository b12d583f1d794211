// Package norm provides the elementwise rescaling primitives that feed and
// post-process shocklet kernels and indicator arrays.
//
// 🚀 What is norm?
//
//	Four small families of deterministic array transforms:
//	  • ZeroNorm      — rescale to [-1,1] and shift to a zero sum, so a kernel
//	    cannot bias a correlation with a constant offset
//	  • Normalize / Renormalize — z-scoring with recovery parameters, letting
//	    new data be scaled consistently against a previously fit reference
//	  • RowNormalize / RowUnnormalize — per-row z-scoring of a matrix and its
//	    exact inverse (round-trip identity holds within 1e-9)
//	  • Diff          — backward difference x(n) − x(n−1); the "ghost" variant
//	    prepends a synthetic first sample so the output keeps the input length
//	    without ever looking forward in time
//
// ✨ Guarantees:
//
//   - Value semantics – inputs are never mutated; every transform returns
//     fresh storage owned by the caller
//   - Explicit failure – constant arrays, zero deviations and non-finite
//     values surface as sentinel errors, never as silent NaN/Inf
//   - Determinism – same input, same output, bit for bit
//
// Errors are matched with errors.Is against the sentinels in errors.go.
//
// Complexity: every transform is a constant number of O(n) passes.
package norm
