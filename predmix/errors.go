package predmix

import "errors"

var (
	// ErrNoObservations indicates an empty observation slice.
	ErrNoObservations = errors.New("predmix: observations must be non-empty")

	// ErrAlphaOutOfRange indicates a significance level outside (0, 1).
	ErrAlphaOutOfRange = errors.New("predmix: alpha must lie in (0, 1)")

	// ErrBadTruncation indicates a non-positive λ truncation level.
	ErrBadTruncation = errors.New("predmix: truncation must be positive")

	// ErrBadPrior indicates a non-positive prior variance, pseudo-count
	// or scale in the λ generator.
	ErrBadPrior = errors.New("predmix: prior variance, fake_obs and scale must be positive")

	// ErrLambdaLength indicates a custom λ schedule whose length does not
	// match the observations.
	ErrLambdaLength = errors.New("predmix: custom lambdas must match observations in length")
)
