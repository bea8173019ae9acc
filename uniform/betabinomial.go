package uniform

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BetaBinomialMixture models bounded/binomial-type increments with beta
// shape parameters g, h and a sidedness flag. It is the only variant
// with a known finite search bound, SUpperBound(v) = v/g, derived from
// the support of the binomial count process — the solver skips the
// exponential search entirely.
type BetaBinomialMixture struct {
	r     float64
	g     float64
	h     float64
	sides Sides
}

// NewBetaBinomialMixture tunes a beta-binomial mixture to be tightest
// near intrinsic time vOpt at error level alphaOpt. The derived prior
// mass r = rho − g·h must come out positive; an incompatible
// (vOpt, alphaOpt, g, h) combination is a construction error.
func NewBetaBinomialMixture(vOpt, alphaOpt, g, h float64, sides Sides) (*BetaBinomialMixture, error) {
	if err := validateTuning(vOpt, alphaOpt, sides == OneSided); err != nil {
		return nil, err
	}
	if g <= 0 || h <= 0 {
		return nil, ErrNonPositiveShape
	}
	rho := BestRhoTwoSided(vOpt, alphaOpt)
	if sides == OneSided {
		rho = BestRhoOneSided(vOpt, alphaOpt)
	}
	r := rho - g*h
	if r <= 0 {
		return nil, ErrIncompatibleTuning
	}

	return &BetaBinomialMixture{r: r, g: g, h: h, sides: sides}, nil
}

// LogSuperMG evaluates the difference of two log-incomplete-beta terms
// at x = h/(g+h) for one-sided use, x = 1 for two-sided (where the
// incomplete beta degenerates to the complete Beta function).
func (m *BetaBinomialMixture) LogSuperMG(s, v float64) float64 {
	x := 1.0
	if m.sides == OneSided {
		x = m.h / (m.g + m.h)
	}
	gh := m.g + m.h

	return v/(m.g*m.h)*math.Log(gh) -
		(v+m.h*s)/(m.h*gh)*math.Log(m.g) -
		(v-m.g*s)/(m.g*gh)*math.Log(m.h) +
		logIncompleteBeta((m.r+v-m.g*s)/(m.g*gh), (m.r+v+m.h*s)/(m.h*gh), x) -
		logIncompleteBeta(m.r/(m.g*gh), m.r/(m.h*gh), x)
}

// SUpperBound returns v/g, a tight closed-form cap on any root of
// LogSuperMG(·, v) = t for finite t.
func (m *BetaBinomialMixture) SUpperBound(v float64) float64 {
	return v / m.g
}

// Bound delegates to the generic bracketing solver, seeded with the
// finite v/g cap.
func (m *BetaBinomialMixture) Bound(v, logThreshold float64) float64 {
	return FindMixtureBound(m, v, logThreshold)
}

// logBeta returns log B(a, b) via log-gamma.
func logBeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)

	return la + lb - lab
}

// logIncompleteBeta returns the log of the unregularized incomplete
// beta function B(x; a, b). At x = 1 the incomplete beta is the
// complete Beta function; the ratio form would evaluate the regularized
// function at its boundary, so that case is taken directly.
func logIncompleteBeta(a, b, x float64) float64 {
	if x == 1 {
		return logBeta(a, b)
	}

	return math.Log(mathext.RegIncBeta(a, b, x)) + logBeta(a, b)
}
