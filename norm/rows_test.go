package norm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shocklets/norm"
)

// TestRowNormalize_RoundTrip verifies the identity
// RowUnnormalize(RowNormalize(X)) == X within floating-point tolerance.
func TestRowNormalize_RoundTrip(t *testing.T) {
	X := [][]float64{
		{1, 2, 3, 4},
		{-5, 0, 5, 10},
		{0.1, 0.4, 0.9, 1.6},
	}

	Z, means, stds, err := norm.RowNormalize(X)
	require.NoError(t, err)
	require.Len(t, Z, 3)
	require.Len(t, means, 3)
	require.Len(t, stds, 3)

	Y, err := norm.RowUnnormalize(Z, means, stds)
	require.NoError(t, err)
	for i := range X {
		for j := range X[i] {
			assert.InDelta(t, X[i][j], Y[i][j], 1e-9, "round-trip row %d col %d", i, j)
		}
	}
}

// TestRowNormalize_DoesNotMutateInput guards the value-semantics contract:
// the caller keeps ownership of X, untouched.
func TestRowNormalize_DoesNotMutateInput(t *testing.T) {
	X := [][]float64{{1, 2, 3}}
	_, _, _, err := norm.RowNormalize(X)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}}, X)
}

// TestRowNormalize_RowMoments checks each row independently has zero mean.
func TestRowNormalize_RowMoments(t *testing.T) {
	Z, _, _, err := norm.RowNormalize([][]float64{
		{10, 20, 30},
		{1, 1, 4},
	})
	require.NoError(t, err)

	for i, row := range Z {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "row %d mean", i)
	}
}

// TestRowNormalize_Errors covers empty input and constant rows.
func TestRowNormalize_Errors(t *testing.T) {
	_, _, _, err := norm.RowNormalize(nil)
	assert.ErrorIs(t, err, norm.ErrEmptyInput)

	_, _, _, err = norm.RowNormalize([][]float64{{1, 2}, {}})
	assert.ErrorIs(t, err, norm.ErrEmptyInput, "empty row must be rejected")

	_, _, _, err = norm.RowNormalize([][]float64{{1, 2}, {3, 3, 3}})
	assert.ErrorIs(t, err, norm.ErrZeroStd, "constant row must be rejected")
}

// TestRowUnnormalize_Errors covers recovery-vector validation.
func TestRowUnnormalize_Errors(t *testing.T) {
	Z := [][]float64{{0, 0}, {1, -1}}

	_, err := norm.RowUnnormalize(Z, []float64{0}, []float64{1, 1})
	assert.ErrorIs(t, err, norm.ErrDimensionMismatch)

	_, err = norm.RowUnnormalize(Z, []float64{0, 0}, []float64{1, 0})
	assert.ErrorIs(t, err, norm.ErrZeroStd)

	_, err = norm.RowUnnormalize(nil, nil, nil)
	assert.ErrorIs(t, err, norm.ErrEmptyInput)
}
