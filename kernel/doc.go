// Package kernel synthesizes the template shapes ("shocklets") that a
// sliding-window transform correlates against a time series to detect
// abrupt structural breaks.
//
// 🚀 What is a kernel?
//
//	A fixed-length vector sampled from a parametric shape family:
//	  • Haar              — a step: -1 on the first half, +1 on the second
//	  • PowerZeroCusp     — x^b on the first half, zero on the second
//	  • PowerLawZeroCusp  — x^(-b) on the second half, zero on the first
//	  • PowerLawCusp      — a power-law half-cusp superposed with its mirror
//	  • PowerCusp         — the direct-power half-cusp superposed with its mirror
//	  • Pitchfork         — two degree-2b tails framing a central degree-b cusp
//	  • ExpZeroCusp       — exp(a·x) on the first half, zero on the second
//	  • ExpCusp           — the exponential half-cusp superposed with its mirror
//
// Every generator samples x at L evenly spaced points in [StartPt, EndPt]
// and, unless ZeroNorm is disabled, rescales the final shape to [-1,1] and
// shifts it to a zero sum so the kernel cannot bias a correlation with a
// constant offset. Composed families zero-normalize their half-shapes and
// then re-normalize the superposition: the sum of two zero-sum halves is
// not itself rescaled, so the outer pass is always applied.
//
// Note: PowerLawCusp superposes the power-law (x^-b) half-shape, while
// PowerCusp and Pitchfork superpose the direct-power (x^b) half-shape.
// The asymmetry is part of the shape catalog, not an accident.
//
// ✨ Guarantees:
//
//   - len(result) == L for every family and every valid input
//   - deterministic: identical parameters give bit-identical kernels
//   - with ZeroNorm: |sum| ≲ 1e-9 relative to the array scale
//   - degenerate inputs (L<2, non-finite parameters, zero-width spans,
//     shapes that collapse to a constant) fail with sentinel errors —
//     no NaN or Inf ever escapes
//
// Use ParseFamily + Generate for name-driven dispatch, or call the typed
// per-family constructors directly.
//
// Complexity: O(L) time and space per kernel.
package kernel
