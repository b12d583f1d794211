package norm

import "fmt"

// RowNormalize z-scores every row of X independently (population standard
// deviation), returning the normalized matrix together with the per-row
// (means, stds) recovery vectors. X is not mutated: the result is fresh
// storage owned by the caller, and RowUnnormalize inverts it exactly:
//
//	Z, means, stds, _ := norm.RowNormalize(X)
//	Y, _ := norm.RowUnnormalize(Z, means, stds)   // Y ≈ X within 1e-9
//
// Rows may have differing lengths; each is scored on its own.
//
// Errors (wrapped with the offending row index):
//   - ErrEmptyInput — X has no rows, or a row has no elements.
//   - ErrNonFinite  — a row contains NaN or ±Inf.
//   - ErrZeroStd    — a row is constant.
//
// Complexity: O(r·c) time and space.
func RowNormalize(X [][]float64) ([][]float64, []float64, []float64, error) {
	if len(X) == 0 {
		return nil, nil, nil, ErrEmptyInput
	}

	Z := make([][]float64, len(X))
	means := make([]float64, len(X))
	stds := make([]float64, len(X))
	for i, row := range X {
		z, mean, std, err := Normalize(row)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		Z[i], means[i], stds[i] = z, mean, std
	}

	return Z, means, stds, nil
}

// RowUnnormalize reverses RowNormalize: every row of Z is scaled by its std
// and shifted by its mean. Z is not mutated.
//
// Errors:
//   - ErrEmptyInput        — Z has no rows.
//   - ErrDimensionMismatch — len(means) or len(stds) differs from len(Z).
//   - ErrZeroStd           — a stds entry is zero (wrapped with its row index);
//     such a row cannot have come from RowNormalize.
//
// Complexity: O(r·c) time and space.
func RowUnnormalize(Z [][]float64, means, stds []float64) ([][]float64, error) {
	if len(Z) == 0 {
		return nil, ErrEmptyInput
	}
	if len(means) != len(Z) || len(stds) != len(Z) {
		return nil, ErrDimensionMismatch
	}

	X := make([][]float64, len(Z))
	for i, row := range Z {
		if stds[i] == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrZeroStd)
		}
		out := make([]float64, len(row))
		for j, v := range row {
			out[j] = v*stds[i] + means[i]
		}
		X[i] = out
	}

	return X, nil
}
