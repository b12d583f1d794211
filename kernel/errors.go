package kernel

import "errors"

var (
	// ErrLengthTooShort indicates a kernel length L < 2; every family bisects
	// the array at L/2 and needs at least one sample on each side.
	ErrLengthTooShort = errors.New("kernel: length must be at least 2")

	// ErrUnknownFamily indicates a family name or value outside the catalog.
	ErrUnknownFamily = errors.New("kernel: unknown shape family")

	// ErrParamCount indicates a shape-parameter slice whose length does not
	// match the family's arity (haar takes none, every other family takes one).
	ErrParamCount = errors.New("kernel: wrong number of shape parameters")

	// ErrNonFiniteParam indicates a NaN or ±Inf shape parameter or span endpoint.
	ErrNonFiniteParam = errors.New("kernel: shape parameter must be finite")

	// ErrDegenerateSpan indicates StartPt == EndPt: the sampling range has
	// zero width and cannot produce a usable shape.
	ErrDegenerateSpan = errors.New("kernel: sampling span has zero width")

	// ErrNonFiniteSample indicates parameters that overflow the sampled shape
	// to NaN or ±Inf (e.g. a huge exponent), detected before any value escapes.
	ErrNonFiniteSample = errors.New("kernel: sampled shape is not finite")
)
