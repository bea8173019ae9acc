package uniform

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma mixtures for sub-exponential and sub-Poisson increments. Both
// share the one-sided normal rho and precompute a leading constant at
// construction from rho/c² via log-gamma and a regularized incomplete
// gamma term: the lower tail for exponential increments, the upper tail
// for Poisson counts — the tail that bounds the respective increment
// type.

// GammaExponentialMixture models sub-exponential increments with scale
// parameter c. No closed-form inverse exists.
type GammaExponentialMixture struct {
	rho             float64
	c               float64
	leadingConstant float64
}

// NewGammaExponentialMixture tunes a gamma-exponential mixture to be
// tightest near intrinsic time vOpt at error level alphaOpt, for
// increments with sub-exponential scale c > 0.
func NewGammaExponentialMixture(vOpt, alphaOpt, c float64) (*GammaExponentialMixture, error) {
	if err := validateTuning(vOpt, alphaOpt, true); err != nil {
		return nil, err
	}
	if c <= 0 {
		return nil, ErrNonPositiveScale
	}
	rho := BestRhoOneSided(vOpt, alphaOpt)

	return &GammaExponentialMixture{
		rho:             rho,
		c:               c,
		leadingConstant: gammaExponentialLeadingConstant(rho, c),
	}, nil
}

func gammaExponentialLeadingConstant(rho, c float64) float64 {
	rhoCSq := rho / (c * c)
	lg, _ := math.Lgamma(rhoCSq)

	return rhoCSq*math.Log(rhoCSq) - lg - math.Log(mathext.GammaIncReg(rhoCSq, rhoCSq))
}

// LogSuperMG combines the cached leading constant with log-gamma and
// lower-incomplete-gamma evaluations at the shifted, scaled argument
// (c·s+v)/c².
func (m *GammaExponentialMixture) LogSuperMG(s, v float64) float64 {
	cSq := m.c * m.c
	csV := (m.c*s + v) / cSq
	vRho := (v + m.rho) / cSq
	lg, _ := math.Lgamma(vRho)

	return m.leadingConstant +
		lg +
		math.Log(mathext.GammaIncReg(vRho, csV+m.rho/cSq)) -
		vRho*math.Log(csV+m.rho/cSq) +
		csV
}

// SUpperBound reports no finite closed-form search bound.
func (m *GammaExponentialMixture) SUpperBound(_ float64) float64 {
	return math.Inf(1)
}

// Bound delegates to the generic bracketing solver.
func (m *GammaExponentialMixture) Bound(v, logThreshold float64) float64 {
	return FindMixtureBound(m, v, logThreshold)
}

// GammaPoissonMixture models sub-Poisson counting increments with scale
// parameter c. No closed-form inverse exists.
type GammaPoissonMixture struct {
	rho             float64
	c               float64
	leadingConstant float64
}

// NewGammaPoissonMixture tunes a gamma-Poisson mixture to be tightest
// near intrinsic time vOpt at error level alphaOpt, for counts with
// scale c > 0.
func NewGammaPoissonMixture(vOpt, alphaOpt, c float64) (*GammaPoissonMixture, error) {
	if err := validateTuning(vOpt, alphaOpt, true); err != nil {
		return nil, err
	}
	if c <= 0 {
		return nil, ErrNonPositiveScale
	}
	rho := BestRhoOneSided(vOpt, alphaOpt)

	return &GammaPoissonMixture{
		rho:             rho,
		c:               c,
		leadingConstant: gammaPoissonLeadingConstant(rho, c),
	}, nil
}

func gammaPoissonLeadingConstant(rho, c float64) float64 {
	rhoCSq := rho / (c * c)
	lg, _ := math.Lgamma(rhoCSq)

	return rhoCSq*math.Log(rhoCSq) - lg - math.Log(mathext.GammaIncRegComp(rhoCSq, rhoCSq))
}

// LogSuperMG combines the cached leading constant with log-gamma and
// upper-incomplete-gamma evaluations at s/c + (v+ρ)/c².
func (m *GammaPoissonMixture) LogSuperMG(s, v float64) float64 {
	cSq := m.c * m.c
	vRho := (v + m.rho) / cSq
	csVRho := s/m.c + vRho
	lg, _ := math.Lgamma(csVRho)

	return m.leadingConstant +
		lg +
		math.Log(mathext.GammaIncRegComp(csVRho, vRho)) -
		csVRho*math.Log(vRho) +
		v/cSq
}

// SUpperBound reports no finite closed-form search bound.
func (m *GammaPoissonMixture) SUpperBound(_ float64) float64 {
	return math.Inf(1)
}

// Bound delegates to the generic bracketing solver.
func (m *GammaPoissonMixture) Bound(v, logThreshold float64) float64 {
	return FindMixtureBound(m, v, logThreshold)
}
