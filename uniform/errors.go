package uniform

import "errors"

// Construction-time contract violations. Mixtures and stitched bounds
// refuse to exist with invalid tuning; evaluation itself never returns
// an error (out-of-domain input propagates as NaN/±Inf instead).
var (
	// ErrNonPositiveVOpt indicates v_opt ≤ 0.
	ErrNonPositiveVOpt = errors.New("uniform: v_opt must be positive")

	// ErrAlphaOutOfRange indicates the optimized error level is outside
	// (0, 1). One-sided tunings evaluate rho at 2·alpha_opt, so they
	// additionally require alpha_opt < 1/2.
	ErrAlphaOutOfRange = errors.New("uniform: alpha_opt must lie in (0, 1)")

	// ErrNonPositiveScale indicates a gamma mixture scale c ≤ 0.
	ErrNonPositiveScale = errors.New("uniform: scale parameter c must be positive")

	// ErrNonPositiveShape indicates a beta-binomial shape g ≤ 0 or h ≤ 0.
	ErrNonPositiveShape = errors.New("uniform: shape parameters g, h must be positive")

	// ErrIncompatibleTuning indicates a beta-binomial parameter set whose
	// derived prior mass r = rho − g·h is not positive; the requested
	// (v_opt, alpha_opt) cannot be reached with these shapes.
	ErrIncompatibleTuning = errors.New("uniform: derived r = rho - g*h must be positive")

	// ErrNonPositiveVMin indicates a stitched bound with v_min ≤ 0.
	ErrNonPositiveVMin = errors.New("uniform: v_min must be positive")

	// ErrBadStitchingShape indicates a stitched bound whose decay exponent
	// s ≤ 1 or grid factor eta ≤ 1, or a negative mixing constant c; the
	// zeta normalization over the geometric grid does not exist there.
	ErrBadStitchingShape = errors.New("uniform: stitching requires s > 1, eta > 1 and c >= 0")
)
