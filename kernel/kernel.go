package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/shocklets/norm"
)

// Generate synthesizes a kernel of the given family and length through a
// single exhaustive dispatch, validating the shape-parameter arity first.
// params carries the family's shape parameters in order (none for haar,
// one exponent/rate for every other family). A nil opts means
// DefaultOptions.
//
// Errors:
//   - ErrUnknownFamily — f is outside the catalog.
//   - ErrParamCount    — len(params) != f.Arity().
//   - plus everything the per-family constructors return.
//
// Complexity: O(L) time and space.
func Generate(f Family, length int, params []float64, opts *Options) ([]float64, error) {
	if _, ok := familyNames[f]; !ok {
		return nil, ErrUnknownFamily
	}
	if len(params) != f.Arity() {
		return nil, fmt.Errorf("%s takes %d parameter(s), got %d: %w",
			f, f.Arity(), len(params), ErrParamCount)
	}

	switch f {
	case FamilyHaar:
		return Haar(length, opts)
	case FamilyPowerZeroCusp:
		return PowerZeroCusp(length, params[0], opts)
	case FamilyPowerLawZeroCusp:
		return PowerLawZeroCusp(length, params[0], opts)
	case FamilyPowerLawCusp:
		return PowerLawCusp(length, params[0], opts)
	case FamilyPowerCusp:
		return PowerCusp(length, params[0], opts)
	case FamilyPitchfork:
		return Pitchfork(length, params[0], opts)
	case FamilyExpZeroCusp:
		return ExpZeroCusp(length, params[0], opts)
	case FamilyExpCusp:
		return ExpCusp(length, params[0], opts)
	default:
		return nil, ErrUnknownFamily
	}
}

// Haar builds the step kernel: -1 on the first L/2 entries, +1 on the rest.
// Odd lengths bias the extra element into the positive half. Haar takes no
// shape parameters and ignores the sampling span.
//
// Errors: ErrLengthTooShort.
func Haar(length int, opts *Options) ([]float64, error) {
	o := resolve(opts)
	if length < 2 {
		return nil, ErrLengthTooShort
	}

	res := make([]float64, length)
	for i := range res {
		if i < length/2 {
			res[i] = -1
		} else {
			res[i] = 1
		}
	}

	return finish(res, o.ZeroNorm, FamilyHaar)
}

// PowerZeroCusp builds the direct-power half-cusp: x^b over the sampling
// span with the second half (index ≥ L/2) zeroed. This is the canonical
// half-shape that PowerCusp and Pitchfork superpose.
//
// Errors: ErrLengthTooShort, ErrNonFiniteParam, ErrDegenerateSpan,
// ErrNonFiniteSample, wrapped norm errors when the shape degenerates.
func PowerZeroCusp(length int, b float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	if err := validate(length, o, b); err != nil {
		return nil, err
	}

	x := sample(length, o)
	res := make([]float64, length)
	for i := 0; i < length/2; i++ {
		res[i] = math.Pow(x[i], b)
	}

	return finish(res, o.ZeroNorm, FamilyPowerZeroCusp)
}

// PowerLawZeroCusp builds the power-law half-cusp: x^(-b) over the sampling
// span with the first half (index < L/2) zeroed — the mirror convention of
// PowerZeroCusp.
//
// Errors: as PowerZeroCusp.
func PowerLawZeroCusp(length int, b float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	if err := validate(length, o, b); err != nil {
		return nil, err
	}

	x := sample(length, o)
	res := make([]float64, length)
	for i := length / 2; i < length; i++ {
		res[i] = math.Pow(x[i], -b)
	}

	return finish(res, o.ZeroNorm, FamilyPowerLawZeroCusp)
}

// PowerLawCusp superposes the power-law half-cusp with its index-reversed
// copy, a symmetric double-sided cusp peaked at the center. The half-shape
// sub-calls inherit opts (ZeroNorm included); the superposition is then
// re-normalized, since the sum of two zero-sum halves is not itself
// rescaled.
//
// Errors: as PowerLawZeroCusp.
func PowerLawCusp(length int, b float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	half, err := PowerLawZeroCusp(length, b, opts)
	if err != nil {
		return nil, err
	}

	res := make([]float64, length)
	floats.AddTo(res, half, reversed(half))

	return finish(res, o.ZeroNorm, FamilyPowerLawCusp)
}

// PowerCusp superposes the direct-power half-cusp with its index-reversed
// copy. Note the asymmetry with PowerLawCusp: this family builds on
// PowerZeroCusp (x^b), not the power-law half-shape.
//
// Errors: as PowerZeroCusp.
func PowerCusp(length int, b float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	half, err := PowerZeroCusp(length, b, opts)
	if err != nil {
		return nil, err
	}

	res := make([]float64, length)
	floats.AddTo(res, half, reversed(half))

	return finish(res, o.ZeroNorm, FamilyPowerCusp)
}

// Pitchfork builds the three-lobe shape: two symmetric direct-power tails
// of degree 2b framing a central PowerCusp of degree b.
//
// Errors: as PowerZeroCusp.
func Pitchfork(length int, b float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	tail, err := PowerZeroCusp(length, 2*b, opts)
	if err != nil {
		return nil, err
	}
	center, err := PowerCusp(length, b, opts)
	if err != nil {
		return nil, err
	}

	res := reversed(tail)
	floats.Add(res, center)
	floats.Add(res, tail)

	return finish(res, o.ZeroNorm, FamilyPitchfork)
}

// ExpZeroCusp builds the exponential half-cusp: exp(a·x) over the sampling
// span with the second half (index ≥ L/2) zeroed.
//
// Errors: as PowerZeroCusp.
func ExpZeroCusp(length int, a float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	if err := validate(length, o, a); err != nil {
		return nil, err
	}

	x := sample(length, o)
	res := make([]float64, length)
	for i := 0; i < length/2; i++ {
		res[i] = math.Exp(a * x[i])
	}

	return finish(res, o.ZeroNorm, FamilyExpZeroCusp)
}

// ExpCusp superposes the exponential half-cusp with its index-reversed copy.
//
// Errors: as ExpZeroCusp.
func ExpCusp(length int, a float64, opts *Options) ([]float64, error) {
	o := resolve(opts)
	half, err := ExpZeroCusp(length, a, opts)
	if err != nil {
		return nil, err
	}

	res := make([]float64, length)
	floats.AddTo(res, half, reversed(half))

	return finish(res, o.ZeroNorm, FamilyExpCusp)
}

// resolve applies DefaultOptions when opts is nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// validate rejects degenerate lengths, parameters and sampling spans before
// any shape is computed.
func validate(length int, o Options, params ...float64) error {
	if length < 2 {
		return ErrLengthTooShort
	}
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrNonFiniteParam
		}
	}
	if math.IsNaN(o.StartPt) || math.IsInf(o.StartPt, 0) ||
		math.IsNaN(o.EndPt) || math.IsInf(o.EndPt, 0) {
		return ErrNonFiniteParam
	}
	if o.StartPt == o.EndPt {
		return ErrDegenerateSpan
	}

	return nil
}

// sample returns length evenly spaced points spanning [StartPt, EndPt].
func sample(length int, o Options) []float64 {
	x := make([]float64, length)
	floats.Span(x, o.StartPt, o.EndPt)

	return x
}

// reversed returns a fresh index-reversed copy of src.
func reversed(src []float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}

	return out
}

// finish guards the computed shape against non-finite values and applies
// the zero-sum normalization when requested. Normalization failures (e.g.
// a shape that collapsed to a constant) are wrapped with the family name.
func finish(res []float64, zn bool, f Family) ([]float64, error) {
	for _, v := range res {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: %w", f, ErrNonFiniteSample)
		}
	}
	if !zn {
		return res, nil
	}

	out, err := norm.ZeroNorm(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}

	return out, nil
}
