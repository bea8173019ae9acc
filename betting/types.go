// Package betting defines options for betting martingales and their
// confidence sequences.
package betting

// MartingaleFunc produces a capital process for observations x under
// candidate mean m, as consumed by CSFromMartingale.
type MartingaleFunc func(x []float64, m float64) ([]float64, error)

// Options configures Martingale and ConfidenceSequence.
//
// Fields:
//   - Alpha — significance level in (0, 1); capital above 1/Alpha
//     rejects the candidate mean.
//   - Theta — weight of the positive capital process in [0, 1]; 1 bets
//     only upward, 0 only downward.
//   - ConvexComb — combine the two capital processes as
//     θ·pos + (1−θ)·neg instead of max(θ·pos, (1−θ)·neg).
//   - TruncScale — factor in (0, 1] applied to the bet truncation.
//   - MTrunc — truncate bets at TruncScale/m and TruncScale/(1−m)
//     (the capital can then never go negative); false truncates at
//     TruncScale flat.
//   - N — finite population size when sampling without replacement;
//     0 means with replacement. Must be at least len(x) when set.
//   - BetsPositive, BetsNegative — optional per-round bets; nil uses
//     the predictable-mixture schedule from package predmix, and
//     BetsNegative defaults to BetsPositive.
//   - Breaks — grid resolution for ConfidenceSequence; the interval is
//     widened by one grid step to cover the truth between grid points.
//   - RunningIntersection — intersect the sequence with its own past.
type Options struct {
	Alpha               float64
	Theta               float64
	ConvexComb          bool
	TruncScale          float64
	MTrunc              bool
	N                   int
	BetsPositive        []float64
	BetsNegative        []float64
	Breaks              int
	RunningIntersection bool
}

// DefaultOptions returns the reference parameterization: α = 0.05,
// equal weight on both betting sides combined by max, m-dependent
// truncation at scale 1/2, with-replacement sampling, a 1000-point
// inversion grid.
func DefaultOptions() Options {
	return Options{
		Alpha:      0.05,
		Theta:      0.5,
		TruncScale: 0.5,
		MTrunc:     true,
		Breaks:     1000,
	}
}
