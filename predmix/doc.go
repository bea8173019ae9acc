// Package predmix builds predictable-mixture confidence sequences for
// the running mean of [0,1]-bounded observations.
//
// 🚀 What is a predictable mixture?
//
//	Instead of mixing over a prior (package uniform), a predictable
//	mixture tunes its weight λ_t for each round from data seen strictly
//	before that round. The result is still a supermartingale under the
//	null, so the confidence sequence is anytime-valid: it covers the
//	true mean at level 1−α simultaneously at every sample size.
//
// ✨ What ships in this package:
//
//   - Lambdas — the predictable λ ("bets") schedule driven by a
//     regularized running mean and variance, used here and as the
//     default bet generator in package betting
//   - HoeffdingCS — predictable-mixture Hoeffding confidence sequence;
//     variance-free, widest, never wrong about the [0,1] support
//   - EmpiricalBernsteinCS — predictable-mixture empirical Bernstein
//     confidence sequence; adapts to the observed variance and
//     dominates Hoeffding once enough data has arrived
//
// ⚙️ Usage:
//
//	import "github.com/avlab/confseq/predmix"
//
//	opts := predmix.DefaultOptions()
//	lower, upper, err := predmix.EmpiricalBernsteinCS(x, opts)
//
// Both sequences clamp to [0,1] and optionally take the running
// intersection, which can only tighten an anytime-valid sequence.
//
// Observations outside [0,1] are not rejected: they propagate NaN/±Inf
// through the arithmetic, matching the numeric contract of the rest of
// the module.
package predmix
