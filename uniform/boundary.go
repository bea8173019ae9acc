package uniform

import "math"

// MixtureBoundary adapts one mixture to the shared Boundary contract
// (v, alpha) → bound, folding in the α ↦ log(1/α) transform so callers
// need not know which mixture backs it. The adapter is the sole owner
// of the wrapped mixture.
type MixtureBoundary struct {
	superMG MixtureSupermartingale
}

// NewMixtureBoundary wraps m under the uniform (v, alpha) contract.
func NewMixtureBoundary(m MixtureSupermartingale) *MixtureBoundary {
	return &MixtureBoundary{superMG: m}
}

// Bound returns the boundary at intrinsic time v for error level alpha.
func (b *MixtureBoundary) Bound(v, alpha float64) float64 {
	return b.superMG.Bound(v, math.Log(1/alpha))
}

// Func exposes the adapter as a plain Boundary function value.
func (b *MixtureBoundary) Func() Boundary {
	return b.Bound
}
