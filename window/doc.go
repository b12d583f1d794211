// Package window post-processes shocklet indicator arrays: it locates the
// strongest point inside each detection window, ranks labeled series by
// indicator value, and builds the moving-window tensors consumed by
// downstream sequence models.
//
// 🚀 What is a window?
//
//	An ordered set of indices into a data array — contiguous or not,
//	overlapping or not — marking a region where a detector fired. Windows
//	in a set are independent of each other.
//
// ✨ Operations:
//
//   - ArgMaxes — per-window argmax reported in the original data
//     coordinates, one index per window, window order preserved
//   - TopK     — the k largest indicator values with their labels,
//     descending; selection is a partial quickselect (O(n) expected)
//     followed by a sort of just the k survivors (O(k log k))
//   - Embed / SupervisedSplit — moving-window embedding of a sequence into
//     a matrix, and the aligned (input, target) pair used for sequence
//     regression and classification
//
// Ties: ArgMaxes reports the first index attaining the maximum; TopK
// breaks equal values arbitrarily.
//
// All failures are sentinel errors (errors.go); out-of-range window
// indices, empty windows and nonsensical k/lag values are rejected before
// any result is produced.
package window
