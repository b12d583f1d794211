// Package weighting maintains the ordered catalog of scoring functions
// that rank shocklet indicator arrays.
//
// 🚀 What is a weighting function?
//
//	A pure mapping from an indicator array (the response of correlating a
//	kernel against a series) to a single scalar: the larger the score, the
//	more significant the detected pattern. Built-ins:
//	  • max_change     — max(arr) − min(arr)
//	  • max_rel_change — spread of the backward-differenced log10 series,
//	    after shifting the array so its minimum is 1
//
// ✨ Design:
//
//   - Registry is an explicit, ordered, append-only catalog object — inject
//     it where scoring is needed instead of reaching for ambient state
//   - A package-level default registry is built once at init and holds the
//     built-ins; Register appends to it and hands the function back, so a
//     definition can be cataloged and used in one motion
//   - Post-init registration is allowed and mutex-serialized; entries are
//     never removed, so observed order is stable
//   - Scoring never propagates NaN or Inf: non-finite indicators fail with
//     ErrNonFinite, values outside the log domain with ErrNonPositiveLog
//
// Contract for any registered function: pure, no side effects, defined for
// arrays of length ≥ 2.
package weighting
