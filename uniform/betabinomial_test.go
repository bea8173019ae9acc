package uniform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlab/confseq/uniform"
)

// TestBetaBinomial_ConstructionErrors: shape and derived-r contracts.
// With v_opt=1, alpha_opt=0.05 the one-sided rho is ≈ 0.158, so any
// g·h ≥ 0.158 is an incompatible tuning.
func TestBetaBinomial_ConstructionErrors(t *testing.T) {
	_, err := uniform.NewBetaBinomialMixture(1, 0.05, 0, 0.1, uniform.OneSided)
	assert.ErrorIs(t, err, uniform.ErrNonPositiveShape, "g = 0 must fail")

	_, err = uniform.NewBetaBinomialMixture(1, 0.05, 0.1, -2, uniform.OneSided)
	assert.ErrorIs(t, err, uniform.ErrNonPositiveShape, "negative h must fail")

	_, err = uniform.NewBetaBinomialMixture(1, 0.05, 1, 1, uniform.OneSided)
	assert.ErrorIs(t, err, uniform.ErrIncompatibleTuning,
		"g·h = 1 exceeds rho, derived r must be rejected")

	_, err = uniform.NewBetaBinomialMixture(1, 0.05, 0.1, 0.1, uniform.OneSided)
	assert.NoError(t, err, "g·h = 0.01 leaves r positive")
}

// TestBetaBinomial_SUpperBound: the closed-form v/g cap, and its
// tightness — the log-supermartingale at the cap must exceed any
// threshold reachable for realistic alpha.
func TestBetaBinomial_SUpperBound(t *testing.T) {
	m, err := uniform.NewBetaBinomialMixture(1, 0.05, 0.1, 0.1, uniform.OneSided)
	require.NoError(t, err)

	assert.Equal(t, 20.0, m.SUpperBound(2), "cap is v/g")
	assert.Equal(t, 5.0, m.SUpperBound(0.5), "cap is v/g")

	for _, alpha := range []float64{0.05, 1e-6, 1e-10} {
		assert.Greater(t, m.LogSuperMG(m.SUpperBound(2), 2), math.Log(1/alpha),
			"cap must bracket the root for alpha=%v", alpha)
	}
}

// TestBetaBinomial_RootProperty inverts both sidedness variants and
// feeds the bound back through LogSuperMG.
func TestBetaBinomial_RootProperty(t *testing.T) {
	one, err := uniform.NewBetaBinomialMixture(1, 0.05, 0.1, 0.1, uniform.OneSided)
	require.NoError(t, err)
	two, err := uniform.NewBetaBinomialMixture(1, 0.05, 0.1, 0.1, uniform.TwoSided)
	require.NoError(t, err)

	b := one.Bound(2, log20)
	assert.InDelta(t, 3.944317140540666, b, 1e-6, "one-sided bound value")
	assert.InDelta(t, log20, one.LogSuperMG(b, 2), 1e-6, "one-sided round trip")

	b = two.Bound(2, log20)
	assert.InDelta(t, 4.322675211721895, b, 1e-6, "two-sided bound value")
	assert.InDelta(t, log20, two.LogSuperMG(b, 2), 1e-5, "two-sided round trip")

	for _, v := range []float64{0.5, 1, 8} {
		for _, alpha := range []float64{0.01, 0.1} {
			thr := math.Log(1 / alpha)
			b := one.Bound(v, thr)
			assert.InDelta(t, thr, one.LogSuperMG(b, v), 1e-5,
				"root property at v=%v alpha=%v", v, alpha)
		}
	}
}

// TestBetaBinomial_Monotonicity: the boundary widens with intrinsic
// time and with shrinking error level.
func TestBetaBinomial_Monotonicity(t *testing.T) {
	m, err := uniform.NewBetaBinomialMixture(1, 0.05, 0.1, 0.1, uniform.OneSided)
	require.NoError(t, err)

	prev := m.Bound(0.25, log20)
	for _, v := range []float64{0.5, 1, 4, 16} {
		cur := m.Bound(v, log20)
		assert.GreaterOrEqual(t, cur, prev, "bound must not decrease in v")
		prev = cur
	}

	prev = m.Bound(2, math.Log(1/0.2))
	for _, alpha := range []float64{0.05, 0.01} {
		cur := m.Bound(2, math.Log(1/alpha))
		assert.GreaterOrEqual(t, cur, prev, "bound must not decrease as alpha shrinks")
		prev = cur
	}
}
