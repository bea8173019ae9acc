// Package uniform computes time-uniform confidence boundaries from
// mixture supermartingales, plus a closed-form polynomial stitched
// alternative.
//
// 🚀 What is a uniform boundary?
//
//	A curve s*(v) over "intrinsic time" v (accumulated variance) such
//	that an accumulated statistic s crosses the curve with probability
//	at most α — uniformly over every stopping rule. Each mixture here
//	defines a log-supermartingale value LogSuperMG(s, v); the boundary
//	at time v for threshold t = log(1/α) is the root s* of
//
//	  LogSuperMG(s*, v) = t.
//
// ✨ What ships in this package:
//
//   - TwoSidedNormalMixture — Gaussian mixture, symmetric in s, with a
//     fully closed-form boundary (no root-finding)
//   - OneSidedNormalMixture — Gaussian mixture with a normal-CDF term
//     folding in one-sidedness; numerically inverted
//   - GammaExponentialMixture / GammaPoissonMixture — gamma mixtures for
//     sub-exponential and Poisson-type increments, scale parameter c
//   - BetaBinomialMixture — beta mixture for bounded/binomial increments,
//     the only variant with a finite closed-form search bound (v/g)
//   - PolyStitchingBound — closed-form stitched boundary over a geometric
//     grid of time scales, normalized by the Riemann zeta function
//   - MixtureBoundary — adapter exposing any mixture as (v, α) → bound
//
// ⚙️ Usage:
//
//	import "github.com/avlab/confseq/uniform"
//
//	m, err := uniform.NewTwoSidedNormalMixture(100, 0.05)
//	if err != nil { ... }
//	b := m.Bound(250, math.Log(1/0.05)) // boundary at v=250, α=0.05
//
//	// or, behind the uniform (v, alpha) contract:
//	mb := uniform.NewMixtureBoundary(m)
//	b = mb.Bound(250, 0.05)
//
// Every instance is immutable after construction and safe for
// concurrent use. Evaluation never allocates and never blocks.
//
// Numeric contract: out-of-domain special-function input (for example a
// negative intrinsic time) is not checked; it propagates as NaN or ±Inf
// through the arithmetic, exactly like the underlying formulas.
package uniform
