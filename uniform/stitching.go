package uniform

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// PolyStitchingBound is a closed-form boundary that stitches together a
// geometric grid of sub-Gaussian bounds at scales v_min·η^k, with the
// Riemann zeta value ζ(s) supplying the union-bound normalization
// across the infinite grid. It involves no mixture and no root-finding,
// and admits a sub-exponential mixing constant c for heavy-tailed
// increments.
type PolyStitchingBound struct {
	vMin float64
	c    float64
	s    float64
	eta  float64

	// derived once at construction
	k1 float64
	k2 float64
	a  float64
}

// NewPolyStitchingBound precomputes the stitching constants
//
//	k1 = (η^¼ + η^-¼)/√2
//	k2 = (√η + 1)/2
//	A  = log(ζ(s) / log(η)^s)
//
// for minimum intrinsic time vMin > 0, mixing constant c ≥ 0, decay
// exponent s > 1 and grid factor eta > 1.
func NewPolyStitchingBound(vMin, c, s, eta float64) (*PolyStitchingBound, error) {
	if vMin <= 0 {
		return nil, ErrNonPositiveVMin
	}
	if s <= 1 || eta <= 1 || c < 0 {
		return nil, ErrBadStitchingShape
	}

	return &PolyStitchingBound{
		vMin: vMin,
		c:    c,
		s:    s,
		eta:  eta,
		k1:   (math.Pow(eta, 0.25) + math.Pow(eta, -0.25)) / math.Sqrt2,
		k2:   (math.Sqrt(eta) + 1) / 2,
		a:    math.Log(mathext.Zeta(s, 1) / math.Pow(math.Log(eta), s)),
	}, nil
}

// Bound evaluates the stitched boundary at intrinsic time v and error
// level alpha. Below vMin the bound is flat: it evaluates at vMin.
func (b *PolyStitchingBound) Bound(v, alpha float64) float64 {
	useV := math.Max(v, b.vMin)
	ell := b.s*math.Log(math.Log(b.eta*useV/b.vMin)) + b.a + math.Log(1/alpha)
	term2 := b.k2 * b.c * ell

	return math.Sqrt(b.k1*b.k1*useV*ell+term2*term2) + term2
}
