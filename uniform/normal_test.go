package uniform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlab/confseq/uniform"
)

// log(1/0.05), the threshold used by most concrete scenarios below.
var log20 = math.Log(20)

// TestBestRho_OneTwoSidedConsistency verifies the exact identity
// BestRhoOneSided(v, α) == BestRhoTwoSided(v, 2α).
func TestBestRho_OneTwoSidedConsistency(t *testing.T) {
	for _, v := range []float64{0.5, 1, 10, 1000} {
		for _, alpha := range []float64{0.001, 0.025, 0.05, 0.2} {
			assert.Equal(t,
				uniform.BestRhoTwoSided(v, 2*alpha),
				uniform.BestRhoOneSided(v, alpha),
				"one-sided rho must equal two-sided rho at the doubled level")
		}
	}
}

// TestTwoSidedNormal_ConcreteScenario pins the closed-form boundary for
// v_opt = 1, alpha_opt = 0.05: the bound at (v=1, α=0.05) and its
// round-trip through LogSuperMG.
func TestTwoSidedNormal_ConcreteScenario(t *testing.T) {
	m, err := uniform.NewTwoSidedNormalMixture(1, 0.05)
	require.NoError(t, err, "valid tuning must construct")

	b := m.Bound(1, log20)
	assert.InDelta(t, 3.0352089903762534, b, 1e-9, "closed-form bound value")
	assert.InDelta(t, log20, m.LogSuperMG(b, 1), 1e-6,
		"bound must be the root of LogSuperMG = log(20)")
}

// TestTwoSidedNormal_RootProperty checks the root property over a grid
// of intrinsic times and thresholds.
func TestTwoSidedNormal_RootProperty(t *testing.T) {
	m, err := uniform.NewTwoSidedNormalMixture(10, 0.05)
	require.NoError(t, err)

	for _, v := range []float64{0.1, 1, 10, 500} {
		for _, alpha := range []float64{0.001, 0.05, 0.3} {
			thr := math.Log(1 / alpha)
			b := m.Bound(v, thr)
			assert.GreaterOrEqual(t, b, 0.0, "bound is non-negative")
			assert.InDelta(t, thr, m.LogSuperMG(b, v), 1e-6,
				"root property at v=%v alpha=%v", v, alpha)
		}
	}
}

// TestOneSidedNormal_RootProperty exercises the bracketing solver: the
// numerically inverted bound must reproduce the threshold.
func TestOneSidedNormal_RootProperty(t *testing.T) {
	m, err := uniform.NewOneSidedNormalMixture(1, 0.05)
	require.NoError(t, err)

	b := m.Bound(1, log20)
	assert.InDelta(t, 2.7660708830673206, b, 1e-6, "solver-inverted bound value")
	assert.InDelta(t, log20, m.LogSuperMG(b, 1), 1e-6, "round trip through LogSuperMG")

	for _, v := range []float64{0.5, 2, 100} {
		for _, alpha := range []float64{0.01, 0.05, 0.2} {
			thr := math.Log(1 / alpha)
			b := m.Bound(v, thr)
			assert.InDelta(t, thr, m.LogSuperMG(b, v), 1e-6,
				"root property at v=%v alpha=%v", v, alpha)
		}
	}
}

// TestNormalMixtures_Monotonicity: widening intrinsic time or shrinking
// the error level must not shrink the boundary.
func TestNormalMixtures_Monotonicity(t *testing.T) {
	two, err := uniform.NewTwoSidedNormalMixture(5, 0.05)
	require.NoError(t, err)
	one, err := uniform.NewOneSidedNormalMixture(5, 0.05)
	require.NoError(t, err)

	for _, m := range []uniform.MixtureSupermartingale{two, one} {
		prev := m.Bound(0.5, log20)
		for _, v := range []float64{1, 2, 8, 64} {
			cur := m.Bound(v, log20)
			assert.GreaterOrEqual(t, cur, prev, "bound must not decrease in v")
			prev = cur
		}

		prev = m.Bound(10, math.Log(1/0.5))
		for _, alpha := range []float64{0.1, 0.05, 0.001} {
			cur := m.Bound(10, math.Log(1/alpha))
			assert.GreaterOrEqual(t, cur, prev, "bound must not decrease as alpha shrinks")
			prev = cur
		}
	}
}

// TestNormalMixtures_ConstructionErrors checks the fail-fast contract.
func TestNormalMixtures_ConstructionErrors(t *testing.T) {
	_, err := uniform.NewTwoSidedNormalMixture(0, 0.05)
	assert.ErrorIs(t, err, uniform.ErrNonPositiveVOpt, "v_opt = 0 must fail")

	_, err = uniform.NewTwoSidedNormalMixture(-3, 0.05)
	assert.ErrorIs(t, err, uniform.ErrNonPositiveVOpt, "negative v_opt must fail")

	_, err = uniform.NewTwoSidedNormalMixture(1, 0)
	assert.ErrorIs(t, err, uniform.ErrAlphaOutOfRange, "alpha_opt = 0 must fail")

	_, err = uniform.NewTwoSidedNormalMixture(1, 1)
	assert.ErrorIs(t, err, uniform.ErrAlphaOutOfRange, "alpha_opt = 1 must fail")

	// One-sided rho is evaluated at 2·alpha_opt, so 0.6 is out of range.
	_, err = uniform.NewOneSidedNormalMixture(1, 0.6)
	assert.ErrorIs(t, err, uniform.ErrAlphaOutOfRange, "doubled alpha_opt >= 1 must fail")

	m, err := uniform.NewTwoSidedNormalMixture(1, 0.95)
	require.NoError(t, err, "two-sided tuning tolerates alpha_opt >= 1/2")
	assert.False(t, math.IsNaN(m.Bound(1, log20)), "bound stays finite")
}
