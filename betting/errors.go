package betting

import "errors"

var (
	// ErrNoObservations indicates an empty observation slice.
	ErrNoObservations = errors.New("betting: observations must be non-empty")

	// ErrAlphaOutOfRange indicates a significance level outside (0, 1).
	ErrAlphaOutOfRange = errors.New("betting: alpha must lie in (0, 1)")

	// ErrBadNull indicates a candidate mean outside [0, 1].
	ErrBadNull = errors.New("betting: candidate mean must lie in [0, 1]")

	// ErrBadTheta indicates a capital-process weight outside [0, 1].
	ErrBadTheta = errors.New("betting: theta must lie in [0, 1]")

	// ErrBadTruncScale indicates a truncation scale outside (0, 1].
	ErrBadTruncScale = errors.New("betting: trunc_scale must lie in (0, 1]")

	// ErrSmallPopulation indicates a finite population smaller than the
	// observed sample.
	ErrSmallPopulation = errors.New("betting: population N must be at least len(x)")

	// ErrBetsLength indicates caller-supplied bets whose length does not
	// match the observations.
	ErrBetsLength = errors.New("betting: custom bets must match observations in length")

	// ErrBadBreaks indicates a non-positive inversion grid resolution.
	ErrBadBreaks = errors.New("betting: breaks must be positive")
)
