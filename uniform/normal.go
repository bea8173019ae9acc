package uniform

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BestRhoTwoSided returns the mixture variance rho that optimizes a
// two-sided normal mixture boundary for intrinsic time v and error
// level alpha:
//
//	rho = v / (2·log(1/α) + log(1 + 2·log(1/α)))
//
// Preconditions v > 0 and α ∈ (0, 1) are validated by the mixture
// constructors, not here.
func BestRhoTwoSided(v, alpha float64) float64 {
	return v / (2*math.Log(1/alpha) + math.Log(1+2*math.Log(1/alpha)))
}

// BestRhoOneSided returns the optimal rho for a one-sided normal
// mixture: the two-sided optimum evaluated at 2α, since a one-sided
// budget affords a tighter mixture.
func BestRhoOneSided(v, alpha float64) float64 {
	return BestRhoTwoSided(v, 2*alpha)
}

// validateTuning checks the shared (v_opt, alpha_opt) contract. Tunings
// that evaluate rho at the doubled level (one-sided normal, the gamma
// mixtures, one-sided beta-binomial) must keep 2·alpha_opt inside (0, 1)
// as well, signalled by doubled.
func validateTuning(vOpt, alphaOpt float64, doubled bool) error {
	if vOpt <= 0 {
		return ErrNonPositiveVOpt
	}
	if alphaOpt <= 0 || alphaOpt >= 1 {
		return ErrAlphaOutOfRange
	}
	if doubled && 2*alphaOpt >= 1 {
		return ErrAlphaOutOfRange
	}

	return nil
}

// TwoSidedNormalMixture is a Gaussian mixture supermartingale symmetric
// in s. It is the only variant with a fully closed-form boundary, so it
// never touches the generic solver.
type TwoSidedNormalMixture struct {
	rho float64
}

// NewTwoSidedNormalMixture tunes a two-sided normal mixture to be
// tightest near intrinsic time vOpt at error level alphaOpt.
func NewTwoSidedNormalMixture(vOpt, alphaOpt float64) (*TwoSidedNormalMixture, error) {
	if err := validateTuning(vOpt, alphaOpt, false); err != nil {
		return nil, err
	}

	return &TwoSidedNormalMixture{rho: BestRhoTwoSided(vOpt, alphaOpt)}, nil
}

// LogSuperMG returns ½·log(ρ/(v+ρ)) + s²/(2(v+ρ)).
func (m *TwoSidedNormalMixture) LogSuperMG(s, v float64) float64 {
	return 0.5*math.Log(m.rho/(v+m.rho)) + s*s/(2*(v+m.rho))
}

// SUpperBound reports no finite closed-form search bound; the closed-form
// Bound below bypasses bracketing entirely.
func (m *TwoSidedNormalMixture) SUpperBound(_ float64) float64 {
	return math.Inf(1)
}

// Bound inverts LogSuperMG in closed form:
//
//	s*(v, t) = sqrt((v+ρ)·(log(1 + v/ρ) + 2t))
func (m *TwoSidedNormalMixture) Bound(v, logThreshold float64) float64 {
	return math.Sqrt((v + m.rho) * (math.Log(1+v/m.rho) + 2*logThreshold))
}

// OneSidedNormalMixture is a Gaussian mixture supermartingale spending
// its whole error budget on the upper tail. The extra normal-CDF term in
// LogSuperMG folds in the one-sidedness; no closed-form inverse exists.
type OneSidedNormalMixture struct {
	rho float64
}

// NewOneSidedNormalMixture tunes a one-sided normal mixture to be
// tightest near intrinsic time vOpt at error level alphaOpt. Requires
// alphaOpt < 1/2 since rho is evaluated at the doubled level.
func NewOneSidedNormalMixture(vOpt, alphaOpt float64) (*OneSidedNormalMixture, error) {
	if err := validateTuning(vOpt, alphaOpt, true); err != nil {
		return nil, err
	}

	return &OneSidedNormalMixture{rho: BestRhoOneSided(vOpt, alphaOpt)}, nil
}

// LogSuperMG returns ½·log(4ρ/(v+ρ)) + s²/(2(v+ρ)) + log Φ(s/√(v+ρ)).
func (m *OneSidedNormalMixture) LogSuperMG(s, v float64) float64 {
	return 0.5*math.Log(4*m.rho/(v+m.rho)) +
		s*s/(2*(v+m.rho)) +
		math.Log(distuv.UnitNormal.CDF(s/math.Sqrt(v+m.rho)))
}

// SUpperBound reports no finite closed-form search bound.
func (m *OneSidedNormalMixture) SUpperBound(_ float64) float64 {
	return math.Inf(1)
}

// Bound delegates to the generic bracketing solver.
func (m *OneSidedNormalMixture) Bound(v, logThreshold float64) float64 {
	return FindMixtureBound(m, v, logThreshold)
}
