package lp

import "gonum.org/v1/gonum/mat"

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal means an optimal basic solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies the constraints and bounds.
	StatusInfeasible
	// StatusUnbounded means the objective decreases without limit.
	StatusUnbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Problem is a bounded linear minimization:
//
//	min  Cost·y
//	s.t. Constraints·y ≤ RHS
//	     Lower ≤ y ≤ Upper
//
// Constraints may be nil when RHS is empty. Bounds accept ±Inf; a variable
// with Lower = -Inf and Upper = +Inf is free.
type Problem struct {
	Cost        []float64
	Constraints *mat.Dense
	RHS         []float64
	Lower       []float64
	Upper       []float64
}

// Result carries the primal solution and the dual information of an optimal
// basis. X, ConstraintDuals and ReducedCosts are only meaningful when Status
// is StatusOptimal.
//
// Sign conventions for a minimization over ≤ rows: a binding constraint row
// has a non-positive dual, and a variable resting on a binding upper bound
// has a negative reduced cost. ReducedCosts[i] = Cost[i] − π·column(i) over
// the constraint rows only; bound rows do not contribute.
type Result struct {
	Status          Status
	X               []float64
	Objective       float64
	ConstraintDuals []float64
	ReducedCosts    []float64
}

// IsOptimal reports whether the solve ended at an optimal basis.
func (r Result) IsOptimal() bool { return r.Status == StatusOptimal }

// Solver is the oracle contract: a blocking, stateless solve of one Problem.
// Implementations must be safe for concurrent use.
type Solver interface {
	Solve(Problem) (Result, error)
}
