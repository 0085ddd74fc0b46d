package lp

import "errors"

// ErrDimensionMismatch is returned when the cost, constraint, RHS or bound
// shapes of a Problem disagree.
var ErrDimensionMismatch = errors.New("lp: dimension mismatch")

// ErrBadBounds is returned when a lower bound exceeds its upper bound, or a
// bound carries the wrong infinity.
var ErrBadBounds = errors.New("lp: invalid variable bounds")

// ErrNonFinite is returned when a cost, constraint or RHS entry is NaN or
// infinite.
var ErrNonFinite = errors.New("lp: non-finite coefficient")

// ErrSingular is returned when a basis matrix cannot be factorized.
var ErrSingular = errors.New("lp: singular basis matrix")

// ErrPivotLimit is returned when the simplex exceeds its pivot budget,
// which indicates cycling or severe ill-conditioning.
var ErrPivotLimit = errors.New("lp: simplex pivot limit exceeded")
