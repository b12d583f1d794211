package window

import "sort"

// Ranked pairs a label with its indicator value in a TopK result.
type Ranked struct {
	Label string
	Value float64
}

// TopK selects the k largest indicator values and returns them with their
// labels, sorted descending by value. Selection is a partial quickselect —
// O(n) expected — so only the k survivors pay the O(k log k) sort; the
// full candidate set is never ordered. Equal values break arbitrarily.
//
// The inputs are not mutated.
//
// Errors:
//   - ErrLengthMismatch — len(values) != len(labels).
//   - ErrBadK           — k ≤ 0 or k > len(values).
//
// Complexity: O(n + k log k) expected time, O(n) space.
func TopK(values []float64, labels []string, k int) ([]Ranked, error) {
	if len(values) != len(labels) {
		return nil, ErrLengthMismatch
	}
	if k <= 0 || k > len(values) {
		return nil, ErrBadK
	}

	// Select on positions so labels travel with their values.
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	selectTop(idx, values, k)

	top := make([]Ranked, k)
	for i, pos := range idx[:k] {
		top[i] = Ranked{Label: labels[pos], Value: values[pos]}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Value > top[j].Value })

	return top, nil
}

// selectTop partitions idx so its first k positions hold the k largest
// values — in no particular order. Iterative quickselect with a
// median-of-three pivot for determinism and resistance to sorted inputs.
func selectTop(idx []int, values []float64, k int) {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partition(idx, values, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition arranges idx[lo..hi] around a median-of-three pivot so that
// larger values land left of the returned pivot position.
func partition(idx []int, values []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	// Order lo, mid, hi descending so idx[mid] is the median candidate.
	if values[idx[mid]] > values[idx[lo]] {
		idx[lo], idx[mid] = idx[mid], idx[lo]
	}
	if values[idx[hi]] > values[idx[lo]] {
		idx[lo], idx[hi] = idx[hi], idx[lo]
	}
	if values[idx[hi]] > values[idx[mid]] {
		idx[mid], idx[hi] = idx[hi], idx[mid]
	}
	idx[mid], idx[hi] = idx[hi], idx[mid] // park the pivot at hi
	pivot := values[idx[hi]]

	store := lo
	for i := lo; i < hi; i++ {
		if values[idx[i]] > pivot {
			idx[store], idx[i] = idx[i], idx[store]
			store++
		}
	}
	idx[store], idx[hi] = idx[hi], idx[store]

	return store
}
