// Package predmix defines options for predictable-mixture confidence
// sequences.
package predmix

import "math"

// Options configures HoeffdingCS and EmpiricalBernsteinCS.
//
// Fields:
//   - Alpha — significance level in (0, 1); the sequence covers the
//     true mean with probability 1−Alpha at all times simultaneously.
//   - Truncation — cap on the λ schedule (empirical Bernstein only;
//     1/2 keeps the ψ weighting finite).
//   - FixedN — sample size the λ schedule should be optimized for;
//     0 lets λ_t scale like 1/sqrt(t·log t) for anytime use.
//   - RunningIntersection — intersect the sequence with its own past,
//     which can only tighten an anytime-valid sequence.
//   - Lambdas — optional custom λ schedule (Hoeffding only); nil uses
//     the default min(1, sqrt(8·log(2/α)/(t·log(t+1)))) schedule.
type Options struct {
	Alpha               float64
	Truncation          float64
	FixedN              int
	RunningIntersection bool
	Lambdas             []float64
}

// DefaultOptions returns the reference parameterization: α = 0.05,
// λ truncated at 1/2, anytime λ scaling, no intersection.
func DefaultOptions() Options {
	return Options{
		Alpha:      0.05,
		Truncation: 0.5,
	}
}

// LambdaOptions configures the predictable λ ("bets") generator.
//
// Fields:
//   - Alpha — significance level the schedule is tuned for.
//   - Truncation — cap on each λ value.
//   - FixedN — as in Options.
//   - PriorMean, PriorVariance — regularization targets for the running
//     mean and variance.
//   - FakeObs — number of pseudo-observations; larger values regularize
//     harder toward the priors.
//   - Scale — final multiplier, 1 for most applications.
type LambdaOptions struct {
	Alpha         float64
	Truncation    float64
	FixedN        int
	PriorMean     float64
	PriorVariance float64
	FakeObs       float64
	Scale         float64
}

// DefaultLambdaOptions returns the reference parameterization:
// α = 0.05, no truncation, anytime scaling, mean 1/2, variance 1/4,
// one pseudo-observation, unit scale.
func DefaultLambdaOptions() LambdaOptions {
	return LambdaOptions{
		Alpha:         0.05,
		Truncation:    math.Inf(1),
		PriorMean:     0.5,
		PriorVariance: 0.25,
		FakeObs:       1,
		Scale:         1,
	}
}
