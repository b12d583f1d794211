package window

// Embed builds the moving-window embedding of a sequence: row n holds
// seq[n : n+lag]. There are exactly len(seq)−lag rows — the trailing full
// window is deliberately dropped, so an embedding aligned with a target
// (see SupervisedSplit) never peeks past the data. Rows are fresh copies;
// seq is not mutated and not aliased.
//
// Errors:
//   - ErrBadLag — lag < 1 or lag > len(seq).
//
// Complexity: O((n−lag)·lag) time and space.
func Embed(seq []float64, lag int) ([][]float64, error) {
	if lag < 1 || lag > len(seq) {
		return nil, ErrBadLag
	}

	rows := len(seq) - lag
	X := make([][]float64, rows)
	for n := 0; n < rows; n++ {
		row := make([]float64, lag)
		copy(row, seq[n:n+lag])
		X[n] = row
	}

	return X, nil
}

// SupervisedSplit builds aligned (input, target) tensors for sequence
// regression or classification: X row n is the xLag samples starting at n,
// and Y row n is the yLag samples that immediately follow them,
//
//	X[n] = seq[n : n+xLag]
//	Y[n] = seq[n+xLag : n+xLag+yLag]
//
// Both tensors have len(seq)−xLag−yLag rows.
//
// Errors:
//   - ErrBadLag — xLag < 1, yLag < 1, or xLag+yLag > len(seq).
//
// Complexity: O(rows·(xLag+yLag)) time and space.
func SupervisedSplit(seq []float64, xLag, yLag int) ([][]float64, [][]float64, error) {
	if xLag < 1 || yLag < 1 || xLag+yLag > len(seq) {
		return nil, nil, ErrBadLag
	}

	X, err := Embed(seq[:len(seq)-yLag], xLag)
	if err != nil {
		return nil, nil, err
	}
	Y, err := Embed(seq[xLag:], yLag)
	if err != nil {
		return nil, nil, err
	}

	return X, Y, nil
}
