package uniform_test

import (
	"math"
	"testing"

	"github.com/avlab/confseq/uniform"
)

// benchmarkBound is a helper that queries m's boundary across a sweep of
// intrinsic times. It resets the timer after construction so only
// evaluation cost is measured.
func benchmarkBound(b *testing.B, m uniform.MixtureSupermartingale) {
	thr := math.Log(1 / 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := 1 + float64(i%100)
		_ = m.Bound(v, thr)
	}
}

// BenchmarkTwoSidedNormalBound measures the closed-form inverse.
func BenchmarkTwoSidedNormalBound(b *testing.B) {
	m, err := uniform.NewTwoSidedNormalMixture(10, 0.05)
	if err != nil {
		b.Fatalf("construct: %v", err)
	}
	benchmarkBound(b, m)
}

// BenchmarkOneSidedNormalBound measures doubling search + bisection.
func BenchmarkOneSidedNormalBound(b *testing.B) {
	m, err := uniform.NewOneSidedNormalMixture(10, 0.05)
	if err != nil {
		b.Fatalf("construct: %v", err)
	}
	benchmarkBound(b, m)
}

// BenchmarkGammaExponentialBound measures the incomplete-gamma path.
func BenchmarkGammaExponentialBound(b *testing.B) {
	m, err := uniform.NewGammaExponentialMixture(10, 0.05, 1)
	if err != nil {
		b.Fatalf("construct: %v", err)
	}
	benchmarkBound(b, m)
}

// BenchmarkBetaBinomialBound measures bisection seeded by the finite
// v/g cap (no exponential search).
func BenchmarkBetaBinomialBound(b *testing.B) {
	m, err := uniform.NewBetaBinomialMixture(10, 0.05, 0.1, 0.1, uniform.OneSided)
	if err != nil {
		b.Fatalf("construct: %v", err)
	}
	benchmarkBound(b, m)
}

// BenchmarkPolyStitchingBound measures the closed-form stitched bound.
func BenchmarkPolyStitchingBound(b *testing.B) {
	psb, err := uniform.NewPolyStitchingBound(1, 0.5, 1.4, 2)
	if err != nil {
		b.Fatalf("construct: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = psb.Bound(1+float64(i%100), 0.05)
	}
}
