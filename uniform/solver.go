package uniform

import "math"

// Bracketing and bisection for mixtures without a closed-form inverse.
//
// FindMixtureBound relies on an unverified precondition:
//
//	LogSuperMG(0, v) ≤ logThreshold < LogSuperMG(sUpper, v)
//
// i.e. the log-supermartingale is monotone increasing in s on the
// bracket for fixed v. This holds by construction for every mixture in
// this package, but is not independently checked: a tuning outside the
// monotone regime yields an unverified (not necessarily wrong) result,
// never an error. See the package doc's numeric contract.

const (
	// maxDoublings caps the exponential bracket search.
	maxDoublings = 50

	// bisectBits is the relative precision of the bisection, in bits.
	bisectBits = 40

	// maxBisectSteps caps the bisection loop; the relative tolerance is
	// normally reached long before this.
	maxBisectSteps = 200
)

// FindMixtureBound inverts m's log-supermartingale at intrinsic time v:
// it returns s* with LogSuperMG(s*, v) ≈ logThreshold, to ~40 bits of
// relative precision in s.
//
// When m has no finite closed-form search bound, the bracket's upper end
// is found by doubling from trial = v. If all maxDoublings steps fail to
// cross the threshold the final doubled value is handed to the bisection
// anyway, which then converges to an endpoint of a rootless bracket —
// preserved behavior, documented precondition (see above).
func FindMixtureBound(m MixtureSupermartingale, v, logThreshold float64) float64 {
	sUpper := m.SUpperBound(v)
	if math.IsInf(sUpper, 1) {
		sUpper = findSUpperBound(m, v, logThreshold)
	}
	rootFn := func(s float64) float64 {
		return m.LogSuperMG(s, v) - logThreshold
	}
	lo, hi := bisect(rootFn, 0, sUpper, bisectBits)

	return (lo + hi) / 2
}

// findSUpperBound doubles trial = v until the log-supermartingale
// crosses logThreshold, up to maxDoublings times.
func findSUpperBound(m MixtureSupermartingale, v, logThreshold float64) float64 {
	trial := v
	for i := 0; i < maxDoublings; i++ {
		if m.LogSuperMG(trial, v) > logThreshold {
			return trial
		}
		trial *= 2
	}

	return trial // bisect converges to an endpoint; see precondition note
}

// bisect halves [lo, hi] until the bracket width falls below the
// relative eps tolerance 2^-bits (or maxBisectSteps is hit) and returns
// the final bracket. The sign of f at lo decides which half survives;
// f must change sign on the initial bracket for the result to be a root.
func bisect(f func(float64) float64, lo, hi float64, bits uint) (float64, float64) {
	eps := math.Ldexp(1, -int(bits))
	fLo := f(lo)
	for i := 0; i < maxBisectSteps; i++ {
		if hi-lo <= eps*math.Min(math.Abs(lo), math.Abs(hi)) {
			break
		}
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break // bracket collapsed to adjacent floats
		}
		if f(mid)*fLo > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, hi
}
