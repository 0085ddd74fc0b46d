package stochastic

import "errors"

// ErrNoScenarios is returned when a problem carries an empty scenario set.
var ErrNoScenarios = errors.New("stochastic: no scenarios")

// ErrBadProbability is returned when a scenario probability lies outside (0, 1].
var ErrBadProbability = errors.New("stochastic: scenario probability outside (0, 1]")

// ErrBadProbabilitySum is returned when scenario probabilities do not sum to
// one within ProbabilitySumTol.
var ErrBadProbabilitySum = errors.New("stochastic: scenario probabilities do not sum to 1")

// ErrDimensionMismatch is returned when the first-stage or scenario shapes
// disagree with each other.
var ErrDimensionMismatch = errors.New("stochastic: dimension mismatch")

// ErrNonFinite is returned when problem data contains NaN or infinite values.
var ErrNonFinite = errors.New("stochastic: non-finite problem data")
