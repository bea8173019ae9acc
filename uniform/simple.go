package uniform

import "math"

// Free-function surface: each call constructs the mixture internally
// and evaluates once. Convenient for one-off queries; construct the
// mixture yourself (object surface) when querying repeatedly, so the
// derived constants are computed once.

// NormalLogMixture evaluates the normal mixture log-supermartingale at
// (s, v), tuned for (vOpt, alphaOpt) with the given sidedness.
func NormalLogMixture(s, v, vOpt, alphaOpt float64, sides Sides) (float64, error) {
	if sides == TwoSided {
		m, err := NewTwoSidedNormalMixture(vOpt, alphaOpt)
		if err != nil {
			return 0, err
		}

		return m.LogSuperMG(s, v), nil
	}
	m, err := NewOneSidedNormalMixture(vOpt, alphaOpt)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// NormalMixtureBound returns the normal mixture boundary at intrinsic
// time v for error level alpha.
func NormalMixtureBound(v, alpha, vOpt, alphaOpt float64, sides Sides) (float64, error) {
	if sides == TwoSided {
		m, err := NewTwoSidedNormalMixture(vOpt, alphaOpt)
		if err != nil {
			return 0, err
		}

		return m.Bound(v, math.Log(1/alpha)), nil
	}
	m, err := NewOneSidedNormalMixture(vOpt, alphaOpt)
	if err != nil {
		return 0, err
	}

	return m.Bound(v, math.Log(1/alpha)), nil
}

// GammaExponentialLogMixture evaluates the gamma-exponential mixture
// log-supermartingale at (s, v) for scale c.
func GammaExponentialLogMixture(s, v, vOpt, c, alphaOpt float64) (float64, error) {
	m, err := NewGammaExponentialMixture(vOpt, alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// GammaExponentialMixtureBound returns the gamma-exponential mixture
// boundary at intrinsic time v for error level alpha.
func GammaExponentialMixtureBound(v, alpha, vOpt, c, alphaOpt float64) (float64, error) {
	m, err := NewGammaExponentialMixture(vOpt, alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.Bound(v, math.Log(1/alpha)), nil
}

// GammaPoissonLogMixture evaluates the gamma-Poisson mixture
// log-supermartingale at (s, v) for scale c.
func GammaPoissonLogMixture(s, v, vOpt, c, alphaOpt float64) (float64, error) {
	m, err := NewGammaPoissonMixture(vOpt, alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// GammaPoissonMixtureBound returns the gamma-Poisson mixture boundary
// at intrinsic time v for error level alpha.
func GammaPoissonMixtureBound(v, alpha, vOpt, c, alphaOpt float64) (float64, error) {
	m, err := NewGammaPoissonMixture(vOpt, alphaOpt, c)
	if err != nil {
		return 0, err
	}

	return m.Bound(v, math.Log(1/alpha)), nil
}

// BetaBinomialLogMixture evaluates the beta-binomial mixture
// log-supermartingale at (s, v) for shapes g, h.
func BetaBinomialLogMixture(s, v, vOpt, g, h, alphaOpt float64, sides Sides) (float64, error) {
	m, err := NewBetaBinomialMixture(vOpt, alphaOpt, g, h, sides)
	if err != nil {
		return 0, err
	}

	return m.LogSuperMG(s, v), nil
}

// BetaBinomialMixtureBound returns the beta-binomial mixture boundary
// at intrinsic time v for error level alpha.
func BetaBinomialMixtureBound(v, alpha, vOpt, g, h, alphaOpt float64, sides Sides) (float64, error) {
	m, err := NewBetaBinomialMixture(vOpt, alphaOpt, g, h, sides)
	if err != nil {
		return 0, err
	}

	return m.Bound(v, math.Log(1/alpha)), nil
}

// PolyStitchingBoundAt evaluates the closed-form stitched boundary at
// intrinsic time v for error level alpha, with minimum time vMin,
// mixing constant c, decay exponent s and grid factor eta. Pass
// DefaultStitchingExponent and DefaultStitchingEta when in doubt.
func PolyStitchingBoundAt(v, alpha, vMin, c, s, eta float64) (float64, error) {
	b, err := NewPolyStitchingBound(vMin, c, s, eta)
	if err != nil {
		return 0, err
	}

	return b.Bound(v, alpha), nil
}
