// Package uniform defines the boundary contracts shared by all mixture
// variants and the stitched bound.
package uniform

// Sides selects whether a boundary spends its error budget on one tail
// or splits it across both.
//
//   - OneSided — boundary for the upper tail only. A one-sided error
//     budget affords a tighter mixture (rho is tuned at 2α).
//   - TwoSided — boundary symmetric in the statistic s.
type Sides int

const (
	// OneSided spends the whole α budget on the upper tail.
	OneSided Sides = iota

	// TwoSided splits the α budget symmetrically across both tails.
	TwoSided
)

// Boundary is the shared contract every boundary construction exposes:
// a pure function from (intrinsic time, error level) to the boundary
// value s*(v, α).
type Boundary func(v, alpha float64) float64

// MixtureSupermartingale is the capability set common to the five
// mixture variants. Implementations are immutable after construction
// and safe for concurrent use.
//
// The set is closed: the variants in this package are mathematically
// complete for the supported increment families, so no open
// extensibility is intended.
type MixtureSupermartingale interface {
	// LogSuperMG returns the log of the mixture supermartingale at
	// position s and intrinsic time v. Pure; no precondition on the
	// sign of s; v must be non-negative.
	LogSuperMG(s, v float64) float64

	// SUpperBound returns a value guaranteed to upper-bound any root of
	// LogSuperMG(·, v) = t for finite t, or +Inf when no closed-form
	// bound is known. Used to seed bracketing in FindMixtureBound.
	SUpperBound(v float64) float64

	// Bound returns s* solving LogSuperMG(s*, v) = logThreshold, with
	// logThreshold = log(1/α) > 0. The result is non-negative.
	Bound(v, logThreshold float64) float64
}

// Compile-time checks: the variant set is exactly these five.
var (
	_ MixtureSupermartingale = (*TwoSidedNormalMixture)(nil)
	_ MixtureSupermartingale = (*OneSidedNormalMixture)(nil)
	_ MixtureSupermartingale = (*GammaExponentialMixture)(nil)
	_ MixtureSupermartingale = (*GammaPoissonMixture)(nil)
	_ MixtureSupermartingale = (*BetaBinomialMixture)(nil)
)

// Tuning defaults mirroring the reference parameterization. Callers who
// have no opinion pass these to the free-function surface.
const (
	// DefaultAlphaOpt is the error level mixtures are tuned for.
	DefaultAlphaOpt = 0.05

	// DefaultStitchingExponent is the polynomial decay exponent s of the
	// stitched bound. Must exceed 1 for the zeta normalization to exist.
	DefaultStitchingExponent = 1.4

	// DefaultStitchingEta is the geometric grid spacing factor of the
	// stitched bound.
	DefaultStitchingEta = 2
)
