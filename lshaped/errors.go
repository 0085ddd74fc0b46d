package lshaped

import "errors"

// ErrNilProblem is returned when Solve receives a nil problem.
var ErrNilProblem = errors.New("lshaped: nil problem")

// ErrSubproblemInfeasible is returned when a scenario recourse LP has no
// feasible point at the current first-stage decision. The iteration aborts;
// there is no feasibility-cut fallback.
var ErrSubproblemInfeasible = errors.New("lshaped: subproblem infeasible")

// ErrSubproblemUnbounded is returned when a scenario recourse LP is
// unbounded below, which indicates broken recourse data.
var ErrSubproblemUnbounded = errors.New("lshaped: subproblem unbounded")

// ErrMasterInfeasible is returned when the master problem has no feasible
// point, typically because first-stage constraints and bounds conflict.
var ErrMasterInfeasible = errors.New("lshaped: master problem infeasible")

// ErrMasterUnbounded is returned when the master problem is unbounded below.
var ErrMasterUnbounded = errors.New("lshaped: master problem unbounded")
