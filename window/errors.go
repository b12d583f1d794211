package window

import "errors"

var (
	// ErrEmptyWindow indicates a window with no indices; there is no maximum
	// to report for it.
	ErrEmptyWindow = errors.New("window: empty window")

	// ErrIndexOutOfRange indicates a window index outside the data array.
	ErrIndexOutOfRange = errors.New("window: index outside data range")

	// ErrBadK indicates a selection size k ≤ 0 or larger than the candidate set.
	ErrBadK = errors.New("window: k must satisfy 0 < k <= len(values)")

	// ErrLengthMismatch indicates values and labels of differing lengths.
	ErrLengthMismatch = errors.New("window: values and labels must have equal length")

	// ErrBadLag indicates a moving-window length outside (0, len(sequence)].
	ErrBadLag = errors.New("window: lag must satisfy 0 < lag <= len(sequence)")
)
