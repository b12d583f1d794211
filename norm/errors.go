package norm

import "errors"

var (
	// ErrEmptyInput indicates an input array or row with no elements.
	ErrEmptyInput = errors.New("norm: input must be non-empty")

	// ErrConstantInput indicates a constant array (max == min), which cannot
	// be rescaled to [-1,1] without dividing by zero.
	ErrConstantInput = errors.New("norm: constant input has no range to rescale")

	// ErrZeroStd indicates a zero standard deviation, which cannot be used
	// as a z-scoring divisor.
	ErrZeroStd = errors.New("norm: standard deviation is zero")

	// ErrNonFinite indicates a NaN or ±Inf value where finite values are required.
	ErrNonFinite = errors.New("norm: non-finite value encountered")

	// ErrDimensionMismatch indicates recovery vectors whose length does not
	// match the number of matrix rows.
	ErrDimensionMismatch = errors.New("norm: dimension mismatch")
)
