package window_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shocklets/window"
)

// TestTopK_Canonical pins the canonical case: top 2 of {5,1,9,3,7}.
func TestTopK_Canonical(t *testing.T) {
	got, err := window.TopK(
		[]float64{5, 1, 9, 3, 7},
		[]string{"a", "b", "c", "d", "e"},
		2,
	)
	require.NoError(t, err)
	assert.Equal(t, []window.Ranked{{Label: "c", Value: 9}, {Label: "e", Value: 7}}, got)
}

// TestTopK_FullSelection: k == n degrades to a plain descending sort.
func TestTopK_FullSelection(t *testing.T) {
	got, err := window.TopK([]float64{2, -1, 4}, []string{"x", "y", "z"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []window.Ranked{
		{Label: "z", Value: 4},
		{Label: "x", Value: 2},
		{Label: "y", Value: -1},
	}, got)
}

// TestTopK_AgainstSortOracle cross-checks the quickselect path against a
// full sort on a larger, adversarially ordered candidate set.
func TestTopK_AgainstSortOracle(t *testing.T) {
	const n = 257
	values := make([]float64, n)
	labels := make([]string, n)
	for i := range values {
		// Deterministic scatter: ascending runs with sign flips and repeats.
		values[i] = float64((i*37)%101) - float64(i%7)
		labels[i] = string(rune('A' + i%26))
	}

	for _, k := range []int{1, 2, 13, 101, n} {
		got, err := window.TopK(values, labels, k)
		require.NoError(t, err, "k=%d", k)
		require.Len(t, got, k)

		oracle := append([]float64(nil), values...)
		sort.Sort(sort.Reverse(sort.Float64Slice(oracle)))
		for i := 0; i < k; i++ {
			assert.Equal(t, oracle[i], got[i].Value, "k=%d rank=%d", k, i)
		}
	}
}

// TestTopK_DoesNotMutateInputs guards the value-semantics contract.
func TestTopK_DoesNotMutateInputs(t *testing.T) {
	values := []float64{5, 1, 9}
	labels := []string{"a", "b", "c"}
	_, err := window.TopK(values, labels, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 9}, values)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

// TestTopK_Errors covers the k and length validation surface.
func TestTopK_Errors(t *testing.T) {
	_, err := window.TopK([]float64{1, 2}, []string{"a", "b"}, 0)
	assert.ErrorIs(t, err, window.ErrBadK)

	_, err = window.TopK([]float64{1, 2}, []string{"a", "b"}, -3)
	assert.ErrorIs(t, err, window.ErrBadK)

	_, err = window.TopK([]float64{1, 2}, []string{"a", "b"}, 3)
	assert.ErrorIs(t, err, window.ErrBadK, "k beyond the candidate set")

	_, err = window.TopK([]float64{1, 2}, []string{"a"}, 1)
	assert.ErrorIs(t, err, window.ErrLengthMismatch)
}
