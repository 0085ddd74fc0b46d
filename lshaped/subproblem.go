package lshaped

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slp/lp"
	"github.com/katalvlaran/slp/stochastic"
)

// SolveScenario solves one scenario's recourse LP at the first-stage point x
// and converts its duals into a probability-weighted cut contribution.
//
// Steps:
//  1. Evaluate the full right-hand side h − T·x; only its constraint rows
//     (the first sc.Rows() entries) reach the oracle.
//  2. Solve  min Q·y  s.t.  W·y ≤ rhs,  0 ≤ y ≤ D. Any status other than
//     optimal aborts the iteration with a sentinel error.
//  3. Package the raw dual vector [constraint duals | len(Q) zeros |
//     at-upper-bound |reduced cost| entries] and canonicalize it.
//  4. Weight by the scenario probability: Rhs = p·(π·h), E = p·(πᵀT),
//     W = Rhs − E·x.
//
// The scenario must satisfy stochastic validation; Solve checks the whole
// problem once up front.
func SolveScenario(solver lp.Solver, x []float64, sc stochastic.Scenario, eps float64) (ScenarioCut, error) {
	rhs := stochastic.RHS(sc.H, sc.T, x)
	rows := sc.Rows()

	res, err := solver.Solve(lp.Problem{
		Cost:        sc.Q,
		Constraints: sc.W,
		RHS:         rhs[:rows],
		Lower:       make([]float64, sc.Vars()),
		Upper:       append([]float64(nil), sc.D...),
	})
	if err != nil {
		return ScenarioCut{}, fmt.Errorf("lshaped: subproblem solve: %w", err)
	}
	switch res.Status {
	case lp.StatusInfeasible:
		return ScenarioCut{}, ErrSubproblemInfeasible
	case lp.StatusUnbounded:
		return ScenarioCut{}, ErrSubproblemUnbounded
	}

	pi := CanonicalDuals(rawDuals(res, sc.D, eps), res.X, sc.D, rows, eps)

	e := sc.Probability * floats.Dot(pi, sc.H)
	var et mat.VecDense
	et.MulVec(sc.T.T(), mat.NewVecDense(len(pi), pi))
	ev := make([]float64, len(x))
	copy(ev, et.RawVector().Data)
	floats.Scale(sc.Probability, ev)

	return ScenarioCut{
		Probability: sc.Probability,
		Objective:   res.Objective,
		Y:           res.X,
		Duals:       pi,
		E:           ev,
		Rhs:         e,
		W:           e - floats.Dot(ev, x),
	}, nil
}

// rawDuals lays the oracle's dual information out in the raw vector shape
// the canonicalizer consumes: constraint duals, a zero block for lower
// bounds, then per-variable upper-bound magnitudes taken from negative
// reduced costs at binding bounds.
func rawDuals(res lp.Result, upper []float64, eps float64) []float64 {
	rows := len(res.ConstraintDuals)
	p := len(upper)
	raw := make([]float64, rows+2*p)
	copy(raw, res.ConstraintDuals)
	for i := 0; i < p; i++ {
		if math.Abs(res.X[i]-upper[i]) < eps && res.ReducedCosts[i] < 0 {
			raw[rows+p+i] = math.Abs(res.ReducedCosts[i])
		}
	}
	return raw
}
