package weighting

import "errors"

var (
	// ErrTooShort indicates an indicator array below the minimum length of 2.
	ErrTooShort = errors.New("weighting: indicator array needs at least 2 values")

	// ErrNonPositiveLog indicates a value ≤ 0 reaching a base-10 logarithm,
	// which would silently produce NaN or -Inf.
	ErrNonPositiveLog = errors.New("weighting: logarithm requires positive values")

	// ErrNonFinite indicates a NaN or ±Inf indicator value; a score computed
	// from it would be meaningless.
	ErrNonFinite = errors.New("weighting: non-finite indicator value")

	// ErrUnknownWeighting indicates a lookup for a name never registered.
	ErrUnknownWeighting = errors.New("weighting: unknown weighting function")

	// ErrDuplicateWeighting indicates a second registration under an
	// existing name; the catalog is append-only, never overwritten.
	ErrDuplicateWeighting = errors.New("weighting: name already registered")

	// ErrNilWeighting indicates an attempt to register a nil function.
	ErrNilWeighting = errors.New("weighting: nil function")
)
