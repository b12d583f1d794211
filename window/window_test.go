package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shocklets/window"
)

// TestArgMaxes_GlobalCoordinates pins the canonical case: the returned
// indices live in the data coordinate space, not window-local space.
func TestArgMaxes_GlobalCoordinates(t *testing.T) {
	got, err := window.ArgMaxes([][]int{{0, 1, 2}, {3, 4}}, []float64{1, 5, 2, 9, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

// TestArgMaxes_OverlapAndGaps: windows are independent — overlap and
// non-contiguous index sets are legal.
func TestArgMaxes_OverlapAndGaps(t *testing.T) {
	data := []float64{3, 8, -2, 8, 7, 11}

	got, err := window.ArgMaxes([][]int{{0, 2, 4}, {1, 4}, {4, 1}, {5}}, data)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 1, 5}, got,
		"ties resolve to the first window position attaining the maximum")
}

// TestArgMaxes_NoWindows: an empty window set yields an empty result.
func TestArgMaxes_NoWindows(t *testing.T) {
	got, err := window.ArgMaxes(nil, []float64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestArgMaxes_Errors covers empty windows and out-of-range indices.
func TestArgMaxes_Errors(t *testing.T) {
	_, err := window.ArgMaxes([][]int{{0}, {}}, []float64{1, 2})
	assert.ErrorIs(t, err, window.ErrEmptyWindow)

	_, err = window.ArgMaxes([][]int{{0, 5}}, []float64{1, 2})
	assert.ErrorIs(t, err, window.ErrIndexOutOfRange)

	_, err = window.ArgMaxes([][]int{{-1}}, []float64{1, 2})
	assert.ErrorIs(t, err, window.ErrIndexOutOfRange)
}
