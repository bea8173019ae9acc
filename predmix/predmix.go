package predmix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Lambdas generates the predictable λ ("bets") schedule for x: each
// λ_t depends only on observations before round t, through a
// regularized running mean and variance seeded with opts.FakeObs
// pseudo-observations at the priors.
//
// With FixedN = 0 the schedule scales like sqrt(2·log(1/α) /
// (t·log(1+t)·σ²_{t−1})), the anytime-optimized rate; a positive
// FixedN replaces t·log(1+t) by FixedN. NaN entries (a degenerate
// variance estimate) become 0, and every entry is capped at
// opts.Truncation before scaling.
func Lambdas(x []float64, opts LambdaOptions) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrNoObservations
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return nil, ErrAlphaOutOfRange
	}
	if opts.Truncation <= 0 {
		return nil, ErrBadTruncation
	}
	if opts.PriorVariance <= 0 || opts.FakeObs <= 0 || opts.Scale <= 0 {
		return nil, ErrBadPrior
	}

	n := len(x)
	cumX := make([]float64, n)
	floats.CumSum(cumX, x)

	// Regularized running mean, then running variance around it.
	muHat := make([]float64, n)
	for i := range x {
		muHat[i] = (opts.FakeObs*opts.PriorMean + cumX[i]) / (float64(i+1) + opts.FakeObs)
	}
	dev2 := make([]float64, n)
	for i := range x {
		d := x[i] - muHat[i]
		dev2[i] = d * d
	}
	cumDev2 := make([]float64, n)
	floats.CumSum(cumDev2, dev2)
	sigma2 := make([]float64, n)
	for i := range x {
		sigma2[i] = (opts.FakeObs*opts.PriorVariance + cumDev2[i]) / (float64(i+1) + opts.FakeObs)
	}

	twoLog := 2 * math.Log(1/opts.Alpha)
	lambdas := make([]float64, n)
	for i := range x {
		sPrev := opts.PriorVariance
		if i > 0 {
			sPrev = sigma2[i-1]
		}
		t := float64(i + 1)
		denom := t * math.Log(1+t)
		if opts.FixedN > 0 {
			denom = float64(opts.FixedN)
		}
		l := math.Sqrt(twoLog / (denom * sPrev))
		if math.IsNaN(l) {
			l = 0
		}
		lambdas[i] = math.Min(opts.Truncation, l) * opts.Scale
	}

	return lambdas, nil
}

// HoeffdingCS returns the predictable-mixture Hoeffding confidence
// sequence for the mean of [0,1]-bounded observations: at each time t,
// [lower[t], upper[t]] covers the true mean with probability 1−α
// simultaneously over all t.
//
// The margin is (Σλ²/8 + log(2/α)) / Σλ around the λ-weighted running
// mean; both ends are clamped to [0,1].
func HoeffdingCS(x []float64, opts Options) (lower, upper []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrNoObservations
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return nil, nil, ErrAlphaOutOfRange
	}
	if opts.Lambdas != nil && len(opts.Lambdas) != len(x) {
		return nil, nil, ErrLambdaLength
	}

	n := len(x)
	log2Alpha := math.Log(2 / opts.Alpha)
	lambdas := opts.Lambdas
	if lambdas == nil {
		lambdas = make([]float64, n)
		for i := range lambdas {
			t := float64(i + 1)
			lambdas[i] = math.Min(1, math.Sqrt(8*log2Alpha/(t*math.Log(t+1))))
		}
	}

	lower = make([]float64, n)
	upper = make([]float64, n)
	var sumL, sumLX, sumL2 float64
	for i := range x {
		sumL += lambdas[i]
		sumLX += lambdas[i] * x[i]
		sumL2 += lambdas[i] * lambdas[i]

		margin := (sumL2/8 + log2Alpha) / sumL
		weightedMu := 0.5
		if sumL > 0 {
			weightedMu = sumLX / sumL
		}
		lower[i] = math.Max(weightedMu-margin, 0)
		upper[i] = math.Min(weightedMu+margin, 1)
	}
	if opts.RunningIntersection {
		intersect(lower, upper)
	}

	return lower, upper, nil
}

// EmpiricalBernsteinCS returns the predictable-mixture empirical
// Bernstein confidence sequence for the mean of [0,1]-bounded
// observations. The λ schedule comes from Lambdas at level α/2 with
// opts.Truncation as the cap; the variance adaptivity enters through
// the ψ_E weighting (x_t − μ̂_{t−1})²·(−log(1−λ_t) − λ_t).
func EmpiricalBernsteinCS(x []float64, opts Options) (lower, upper []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrNoObservations
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return nil, nil, ErrAlphaOutOfRange
	}

	lamOpts := DefaultLambdaOptions()
	lamOpts.Alpha = opts.Alpha / 2
	lamOpts.Truncation = opts.Truncation
	lamOpts.FixedN = opts.FixedN
	lambdas, err := Lambdas(x, lamOpts)
	if err != nil {
		return nil, nil, err
	}

	n := len(x)
	cumX := make([]float64, n)
	floats.CumSum(cumX, x)

	lower = make([]float64, n)
	upper = make([]float64, n)
	log2Alpha := math.Log(2 / opts.Alpha)
	var sumPsi, sumL, sumLX float64
	for i := range x {
		muPrev := 0.0
		if i > 0 {
			muPrev = cumX[i-1] / float64(i)
		}
		d := x[i] - muPrev
		sumPsi += d * d * (-math.Log(1-lambdas[i]) - lambdas[i])
		sumL += lambdas[i]
		sumLX += lambdas[i] * x[i]

		margin := (log2Alpha + sumPsi) / sumL
		weightedMu := sumLX / sumL
		lower[i] = math.Max(weightedMu-margin, 0)
		upper[i] = math.Min(weightedMu+margin, 1)
	}
	if opts.RunningIntersection {
		intersect(lower, upper)
	}

	return lower, upper, nil
}

// intersect replaces lower/upper by their running max/min in place.
func intersect(lower, upper []float64) {
	for i := 1; i < len(lower); i++ {
		lower[i] = math.Max(lower[i], lower[i-1])
		upper[i] = math.Min(upper[i], upper[i-1])
	}
}
