package weighting

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/shocklets/norm"
)

// MaxChange scores an indicator array by its total spread,
// max(arr) − min(arr). Registered as "max_change".
//
// Errors:
//   - ErrTooShort  — len(arr) < 2.
//   - ErrNonFinite — arr contains NaN or ±Inf.
//
// Complexity: O(n).
func MaxChange(arr []float64) (float64, error) {
	if len(arr) < 2 {
		return 0, ErrTooShort
	}
	if err := checkFinite(arr); err != nil {
		return 0, err
	}

	return floats.Max(arr) - floats.Min(arr), nil
}

// MaxRelChange scores an indicator array by the spread of its backward
// log10 returns: shift the array so its minimum is 1 (when shift is true),
// take base-10 logarithms, difference them, and return max − min of the
// differences. Registered as "max_rel_change" with shift=true.
//
// With shift=false the caller vouches that every value is already
// strictly positive.
//
// Errors:
//   - ErrTooShort       — len(arr) < 2.
//   - ErrNonFinite      — arr contains NaN or ±Inf.
//   - ErrNonPositiveLog — a value ≤ 0 reaches the logarithm; with
//     shift=true the shift guarantees positivity, so this only fires in
//     raw mode.
//
// Complexity: O(n).
func MaxRelChange(arr []float64, shift bool) (float64, error) {
	if len(arr) < 2 {
		return 0, ErrTooShort
	}
	if err := checkFinite(arr); err != nil {
		return 0, err
	}

	work := make([]float64, len(arr))
	copy(work, arr)
	if shift {
		// arr − min(arr) + 1 keeps every value ≥ 1 for the logarithm.
		floats.AddConst(1-floats.Min(work), work)
	}

	for i, v := range work {
		if v <= 0 {
			return 0, ErrNonPositiveLog
		}
		work[i] = math.Log10(v)
	}

	logret, err := norm.Diff(work, false)
	if err != nil {
		return 0, err
	}

	return floats.Max(logret) - floats.Min(logret), nil
}

// checkFinite returns ErrNonFinite when arr contains NaN or ±Inf.
func checkFinite(arr []float64) error {
	for _, v := range arr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
