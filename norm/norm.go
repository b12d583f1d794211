package norm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ZeroNorm rescales arr into [-1,1] via 2·(v−min)/(max−min) − 1, then
// subtracts the mean of the rescaled values so the result sums to
// (numerically) zero. The input is not mutated.
//
// Returns:
//   - a fresh slice of the same length, summing to ~0.
//
// Errors:
//   - ErrEmptyInput    — len(arr) == 0.
//   - ErrNonFinite     — arr contains NaN or ±Inf.
//   - ErrConstantInput — max(arr) == min(arr); the rescale would divide by zero.
//
// Complexity: O(n) time, O(n) space.
func ZeroNorm(arr []float64) ([]float64, error) {
	if len(arr) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkFinite(arr); err != nil {
		return nil, err
	}

	lo, hi := floats.Min(arr), floats.Max(arr)
	if lo == hi {
		return nil, ErrConstantInput
	}

	out := make([]float64, len(arr))
	span := hi - lo
	for i, v := range arr {
		out[i] = 2*(v-lo)/span - 1
	}

	// Shift to a zero sum; the rescale above guarantees a finite mean.
	floats.AddConst(-stat.Mean(out, nil), out)

	return out, nil
}

// Normalize z-scores arr to zero mean and unit variance using the
// population standard deviation, returning the scored slice together with
// the (mean, std) recovery parameters. The input is not mutated.
//
// Errors:
//   - ErrEmptyInput — len(arr) == 0.
//   - ErrNonFinite  — arr contains NaN or ±Inf.
//   - ErrZeroStd    — arr is constant; z-scoring would divide by zero.
//
// Complexity: O(n) time, O(n) space.
func Normalize(arr []float64) ([]float64, float64, float64, error) {
	if len(arr) == 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	if err := checkFinite(arr); err != nil {
		return nil, 0, 0, err
	}

	mean := stat.Mean(arr, nil)
	std := stat.PopStdDev(arr, nil)
	if std == 0 {
		return nil, 0, 0, ErrZeroStd
	}

	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = (v - mean) / std
	}

	return out, mean, std, nil
}

// Renormalize z-scores arr against externally supplied (mean, std), e.g.
// the recovery parameters of a previous Normalize call, so that new data is
// scaled consistently with a fitted reference. The input is not mutated.
//
// Errors:
//   - ErrEmptyInput — len(arr) == 0.
//   - ErrNonFinite  — arr, mean or std contains NaN or ±Inf.
//   - ErrZeroStd    — std == 0.
//
// Complexity: O(n) time, O(n) space.
func Renormalize(arr []float64, mean, std float64) ([]float64, error) {
	if len(arr) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkFinite(arr); err != nil {
		return nil, err
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, ErrNonFinite
	}
	if std == 0 {
		return nil, ErrZeroStd
	}

	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = (v - mean) / std
	}

	return out, nil
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
