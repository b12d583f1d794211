package norm

// Diff computes the backward difference x(n) − x(n−1), the causal
// differencing used throughout shocklet scoring: it never looks forward in
// time. The input is not mutated.
//
// With ghost=true a synthetic leading sample equal to seq[0] is prepended
// before differencing, so the result keeps the input length and its first
// element is always 0. With ghost=false the result has length len(seq)−1,
// starting at the difference into index 1.
//
// Errors:
//   - ErrEmptyInput — len(seq) == 0.
//
// Complexity: O(n) time, O(n) space.
func Diff(seq []float64, ghost bool) ([]float64, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}

	if !ghost {
		out := make([]float64, len(seq)-1)
		for n := 1; n < len(seq); n++ {
			out[n-1] = seq[n] - seq[n-1]
		}

		return out, nil
	}

	out := make([]float64, len(seq))
	out[0] = 0 // seq[0] minus the ghost copy of itself
	for n := 1; n < len(seq); n++ {
		out[n] = seq[n] - seq[n-1]
	}

	return out, nil
}
