// Package confseq builds anytime-valid confidence boundaries and
// confidence sequences — statistical guarantees that hold uniformly
// over all stopping times, not just at a fixed sample size.
//
// 🚀 What is confseq?
//
//	A pure-Go library for sequential statistics that brings together:
//		• Uniform boundaries: mixture supermartingale curves you can
//		  query at any intrinsic time without invalidating the guarantee
//		• Closed-form stitching: polynomial stitched bounds with
//		  zeta-function normalization, no root-finding required
//		• Predictable mixtures: Hoeffding and empirical-Bernstein
//		  confidence sequences for bounded observations
//		• Betting martingales: capital-process tests and grid-inverted
//		  confidence sequences
//
// ✨ Why choose confseq?
//
//   - Anytime-valid – peek at your data whenever you like, the α-level
//     error guarantee survives optional stopping
//   - Deterministic – every query is a pure function of its inputs;
//     instances are immutable and safe for concurrent use
//   - Small surface – a handful of constructors and plain float64 math
//
// Everything is organized under three subpackages:
//
//	uniform/ — mixture supermartingale boundaries, the generic bound
//	           solver, the polynomial stitching bound and the adapter
//	predmix/ — predictable-mixture confidence sequences (Hoeffding,
//	           empirical Bernstein) for [0,1]-bounded data
//	betting/ — betting capital processes and confidence sequences by
//	           martingale inversion over a candidate grid
//
// Dive into each package's doc.go for formulas, usage and examples.
package confseq
