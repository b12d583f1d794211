// Package shocklets is a toolkit for locating abrupt, asymmetric
// transitions — spikes, cusps, forks — in one-dimensional time series.
//
// 🚀 What is shocklets?
//
//	A pure-Go library that builds the numeric core of shocklet detection:
//		• Kernel shapes: parametric, zero-mean template vectors (haar steps,
//		  power-law cusps, pitchforks, exponential cusps)
//		• Normalization: zero-sum rescaling, z-scoring with exact inverses,
//		  causal backward differencing
//		• Weighting: an ordered registry of scalar scoring functions for
//		  ranking indicator arrays
//		• Windows: per-window peak extraction, top-k selection, and
//		  moving-window sequence embedding
//
// ✨ Why choose shocklets?
//
//   - Deterministic – every kernel is a pure function of its parameters
//   - Explicit errors – degenerate numeric inputs fail fast, never NaN
//   - Pure Go – no cgo; gonum supplies the numeric primitives
//   - Extensible – register custom weighting functions alongside the built-ins
//
// Everything is organized under four subpackages:
//
//	kernel/    — template-shape generators for each kernel family
//	norm/      — array rescaling, z-scoring and differencing primitives
//	weighting/ — ordered catalog of indicator scoring functions
//	window/    — window-local extrema, top-k ranking, sequence embedding
//
// A detection pipeline correlates a kernel against a series (the transform
// driver lives outside this module), then feeds the indicator array to
// window/ and weighting/ to locate and rank the structural breaks.
//
//	go get github.com/katalvlaran/shocklets
package shocklets
