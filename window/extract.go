package window

import "fmt"

// ArgMaxes finds, for each window, the index of the maximum data value
// among the entries the window selects — reported in the original data
// coordinate space, not window-local. One index is returned per window,
// in window order. Windows are processed independently: they may overlap,
// repeat indices, or be non-contiguous.
//
// Ties resolve to the first window position attaining the maximum.
//
// Errors (wrapped with the offending window position):
//   - ErrEmptyWindow     — a window selects nothing.
//   - ErrIndexOutOfRange — a window index is outside [0, len(data)).
//
// Complexity: O(total window length) time, O(len(windows)) space.
func ArgMaxes(windows [][]int, data []float64) ([]int, error) {
	out := make([]int, len(windows))
	for w, win := range windows {
		if len(win) == 0 {
			return nil, fmt.Errorf("window %d: %w", w, ErrEmptyWindow)
		}

		best := -1
		var bestVal float64
		for _, idx := range win {
			if idx < 0 || idx >= len(data) {
				return nil, fmt.Errorf("window %d: index %d: %w", w, idx, ErrIndexOutOfRange)
			}
			if best == -1 || data[idx] > bestVal {
				best, bestVal = idx, data[idx]
			}
		}
		out[w] = best
	}

	return out, nil
}
