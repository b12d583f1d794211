package kernel

// Family identifies one parametric shape family in the kernel catalog.
//
// Families dispatch through a single exhaustive switch in Generate; adding
// a family means adding a constant, a name, an arity and a case there.
type Family int

const (
	// FamilyHaar is the step kernel: -1 on the first half, +1 on the second.
	FamilyHaar Family = iota

	// FamilyPowerZeroCusp is the direct-power half-cusp: x^b then a zeroed
	// second half. The canonical building block for PowerCusp and Pitchfork.
	FamilyPowerZeroCusp

	// FamilyPowerLawZeroCusp is the power-law half-cusp: x^(-b) with a zeroed
	// first half — the mirror convention of FamilyPowerZeroCusp.
	FamilyPowerLawZeroCusp

	// FamilyPowerLawCusp superposes the power-law half-cusp with its reverse,
	// a symmetric double-sided cusp peaked at the center.
	FamilyPowerLawCusp

	// FamilyPowerCusp superposes the direct-power half-cusp with its reverse.
	FamilyPowerCusp

	// FamilyPitchfork frames a central PowerCusp of degree b with two
	// symmetric direct-power tails of degree 2b.
	FamilyPitchfork

	// FamilyExpZeroCusp is the exponential half-cusp: exp(a·x) then a zeroed
	// second half.
	FamilyExpZeroCusp

	// FamilyExpCusp superposes the exponential half-cusp with its reverse.
	FamilyExpCusp
)

// familyNames maps each Family to its canonical lower_snake name, the
// identity used by name-driven callers and ParseFamily.
var familyNames = map[Family]string{
	FamilyHaar:             "haar",
	FamilyPowerZeroCusp:    "power_zero_cusp",
	FamilyPowerLawZeroCusp: "power_law_zero_cusp",
	FamilyPowerLawCusp:     "power_law_cusp",
	FamilyPowerCusp:        "power_cusp",
	FamilyPitchfork:        "pitchfork",
	FamilyExpZeroCusp:      "exp_zero_cusp",
	FamilyExpCusp:          "exp_cusp",
}

// String returns the canonical family name, or "unknown" for values
// outside the catalog.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return "unknown"
}

// Arity returns the number of shape parameters the family consumes:
// 0 for haar, 1 (an exponent or rate) for every other family.
func (f Family) Arity() int {
	if f == FamilyHaar {
		return 0
	}

	return 1
}

// ParseFamily resolves a canonical family name to its Family value.
//
// Errors:
//   - ErrUnknownFamily — name is not in the catalog.
func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}

	return 0, ErrUnknownFamily
}

// Default sampling span: x runs over [DefaultStartPt, DefaultEndPt].
const (
	// DefaultStartPt is the left edge of the sampling span.
	DefaultStartPt = 1.0

	// DefaultEndPt is the right edge of the sampling span.
	DefaultEndPt = 4.0
)

// Options configures kernel generation.
//
// Fields:
//   - ZeroNorm — rescale the result to [-1,1] and shift it to a zero sum
//     (see norm.ZeroNorm). Composed families propagate the flag into their
//     half-shape sub-calls and re-normalize the superposed result.
//   - StartPt  — left edge of the x sampling span.
//   - EndPt    — right edge of the x sampling span; must differ from StartPt.
//
// Example:
//
//	opts := kernel.DefaultOptions()
//	opts.ZeroNorm = false // raw, un-normalized shape
//	k, err := kernel.PowerCusp(64, 0.5, &opts)
type Options struct {
	ZeroNorm bool
	StartPt  float64
	EndPt    float64
}

// DefaultOptions returns the canonical configuration: zero-normalization
// on, sampling span [1, 4].
func DefaultOptions() Options {
	return Options{
		ZeroNorm: true,
		StartPt:  DefaultStartPt,
		EndPt:    DefaultEndPt,
	}
}
