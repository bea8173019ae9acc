// Package betting tests candidate means of [0,1]-bounded observations
// by betting against them, and inverts those tests into confidence
// sequences.
//
// 🚀 What is a betting martingale?
//
//	Fix a candidate mean m. A gambler starts with unit capital and at
//	each round stakes a predictable fraction λ_t on the observation
//	exceeding (or falling short of) m. If m is the true mean the
//	capital process is a nonnegative martingale, so by Ville's
//	inequality it exceeds 1/α with probability at most α — ever.
//	Large capital is therefore anytime-valid evidence against m.
//
// ✨ What ships in this package:
//
//   - Martingale — the capital process for one candidate mean, with
//     positive and negative betting sides combined by max or by convex
//     combination, m-dependent bet truncation, and optional
//     without-replacement adjustment for finite populations
//   - ConfidenceSequence — grid inversion: every m whose capital stays
//     below 1/α remains in the interval
//   - CSFromMartingale — the same inversion for any caller-supplied
//     capital process
//   - LogicalCS — the deterministic bounds implied by a finite
//     population, intersected automatically when sampling without
//     replacement
//
// ⚙️ Usage:
//
//	import "github.com/avlab/confseq/betting"
//
//	opts := betting.DefaultOptions()
//	lower, upper, err := betting.ConfidenceSequence(x, opts)
//
// The default bets come from the predictable-mixture λ schedule in
// package predmix; callers may supply their own per-round bets.
package betting
