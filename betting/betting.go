package betting

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/avlab/confseq/predmix"
)

// infiniteTruncStandIn replaces an infinite bet truncation (candidate
// mean exactly at an endpoint) with a large finite cap.
const infiniteTruncStandIn = 1000

// Martingale returns the betting capital process for observations x
// under candidate mean m. The process starts at 1; under the null it
// is a nonnegative supermartingale, so values above 1/α are
// anytime-valid evidence against m.
//
// With N > 0 the candidate mean is adjusted each round for sampling
// without replacement. A candidate at an endpoint (the adjusted mean
// reaching 0 or 1) is unfalsifiable only vacuously, and the capital is
// reported as +Inf there.
func Martingale(x []float64, m float64, opts Options) ([]float64, error) {
	if err := validate(x, opts); err != nil {
		return nil, err
	}
	if m < 0 || m > 1 {
		return nil, ErrBadNull
	}

	n := len(x)
	betsPos := opts.BetsPositive
	if betsPos == nil {
		lamOpts := predmix.DefaultLambdaOptions()
		lamOpts.Alpha = opts.Alpha
		var err error
		betsPos, err = predmix.Lambdas(x, lamOpts)
		if err != nil {
			return nil, err
		}
	}
	betsNeg := opts.BetsNegative
	if betsNeg == nil {
		betsNeg = betsPos
	}
	if len(betsPos) != n || len(betsNeg) != n {
		return nil, ErrBetsLength
	}

	// Per-round null mean: constant, or the without-replacement
	// adjustment (N·m − S_{t−1}) / (N − (t−1)).
	mu := make([]float64, n)
	if opts.N > 0 {
		var prior float64
		for i := range x {
			mu[i] = (float64(opts.N)*m - prior) / float64(opts.N-i)
			prior += x[i]
		}
	} else {
		for i := range mu {
			mu[i] = m
		}
	}

	capital := make([]float64, n)
	capPos, capNeg := 1.0, 1.0
	for i := range x {
		upperTrunc, lowerTrunc := opts.TruncScale, opts.TruncScale
		if opts.MTrunc {
			upperTrunc = opts.TruncScale / mu[i]
			lowerTrunc = opts.TruncScale / (1 - mu[i])
			if math.IsInf(upperTrunc, 1) {
				upperTrunc = infiniteTruncStandIn
			}
			if math.IsInf(lowerTrunc, 1) {
				lowerTrunc = infiniteTruncStandIn
			}
		}
		betPos := math.Min(upperTrunc, math.Max(-lowerTrunc, betsPos[i]))
		betNeg := math.Min(lowerTrunc, math.Max(-upperTrunc, betsNeg[i]))

		capPos *= 1 + betPos*(x[i]-mu[i])
		capNeg *= 1 - betNeg*(x[i]-mu[i])

		switch {
		case opts.Theta == 1:
			capital[i] = capPos
		case opts.Theta == 0:
			capital[i] = capNeg
		case opts.ConvexComb:
			capital[i] = opts.Theta*capPos + (1-opts.Theta)*capNeg
		default:
			capital[i] = math.Max(opts.Theta*capPos, (1-opts.Theta)*capNeg)
		}
		if mu[i] <= 0 || mu[i] >= 1 {
			capital[i] = math.Inf(1)
		}
	}

	return capital, nil
}

// ConfidenceSequence inverts the betting martingale over a uniform
// grid of candidate means: every m whose capital has stayed at or
// below 1/α remains in [lower[t], upper[t]]. The interval is widened
// by one grid step to cover the truth between grid points; with N > 0
// it is intersected with the logical without-replacement bounds.
func ConfidenceSequence(x []float64, opts Options) (lower, upper []float64, err error) {
	martFn := func(xx []float64, m float64) ([]float64, error) {
		return Martingale(xx, m, opts)
	}

	return CSFromMartingale(x, martFn, opts)
}

// CSFromMartingale performs the grid inversion for any capital process
// generator, assuming the parameter lives in [0, 1]. Times at which the
// whole grid is rejected come back as NaN.
func CSFromMartingale(x []float64, martFn MartingaleFunc, opts Options) (lower, upper []float64, err error) {
	if err := validate(x, opts); err != nil {
		return nil, nil, err
	}
	if opts.Breaks <= 0 {
		return nil, nil, ErrBadBreaks
	}

	n := len(x)
	breaks := float64(opts.Breaks)
	threshold := 1 / opts.Alpha

	// included[i][j]: grid point i survives at time j.
	included := make([][]bool, opts.Breaks+1)
	for i := 0; i <= opts.Breaks; i++ {
		capital, err := martFn(x, float64(i)/breaks)
		if err != nil {
			return nil, nil, err
		}
		row := make([]bool, n)
		for j, c := range capital {
			row[j] = c <= threshold
		}
		included[i] = row
	}

	lower = make([]float64, n)
	upper = make([]float64, n)
	for j := 0; j < n; j++ {
		first, last := -1, -1
		for i := 0; i <= opts.Breaks; i++ {
			if included[i][j] {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first < 0 {
			lower[j] = math.NaN()
			upper[j] = math.NaN()

			continue
		}
		lower[j] = math.Max(0, float64(first)/breaks-1/breaks)
		upper[j] = math.Min(1, float64(last)/breaks+1/breaks)
	}

	if opts.N > 0 {
		logicalL, logicalU, err := LogicalCS(x, opts.N)
		if err != nil {
			return nil, nil, err
		}
		for j := range lower {
			lower[j] = math.Max(lower[j], logicalL[j])
			upper[j] = math.Min(upper[j], logicalU[j])
		}
	}
	if opts.RunningIntersection {
		for j := 1; j < n; j++ {
			lower[j] = math.Max(lower[j], lower[j-1])
			upper[j] = math.Min(upper[j], upper[j-1])
		}
	}

	return lower, upper, nil
}

// LogicalCS returns the deterministic confidence sequence implied by a
// finite population of size n: after seeing cumulative sum S_t of t
// observations in [0, 1], the population mean cannot be below S_t/n
// nor above 1 − (t − S_t)/n, regardless of any martingale.
func LogicalCS(x []float64, n int) (lower, upper []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrNoObservations
	}
	if n < len(x) {
		return nil, nil, ErrSmallPopulation
	}

	cumX := make([]float64, len(x))
	floats.CumSum(cumX, x)
	lower = make([]float64, len(x))
	upper = make([]float64, len(x))
	for i := range x {
		lower[i] = cumX[i] / float64(n)
		upper[i] = 1 - (float64(i+1)-cumX[i])/float64(n)
	}

	return lower, upper, nil
}

// validate checks the contracts shared by every entry point.
func validate(x []float64, opts Options) error {
	if len(x) == 0 {
		return ErrNoObservations
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return ErrAlphaOutOfRange
	}
	if opts.Theta < 0 || opts.Theta > 1 {
		return ErrBadTheta
	}
	if opts.TruncScale <= 0 || opts.TruncScale > 1 {
		return ErrBadTruncScale
	}
	if opts.N > 0 && opts.N < len(x) {
		return ErrSmallPopulation
	}

	return nil
}
