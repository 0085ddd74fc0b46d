package lshaped

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slp/stochastic"
)

// Solve runs the L-shaped decomposition until convergence or the iteration
// limit.
//
// Each iteration solves the master over the cuts accumulated so far, solves
// every scenario at the master's x, aggregates the scenario duals into a
// candidate cut, and then decides:
//
//  1. candidate duplicates an existing cut (elementwise within
//     Options.Epsilon) → stop, converged;
//  2. |w − θ| ≤ Options.Tolerance → stop, converged;
//  3. otherwise append the cut and iterate.
//
// The duplicate check runs first: a repeated cut cannot tighten the master,
// so iterating further would loop forever on degenerate instances where the
// gap never closes numerically.
//
// Exhausting MaxIterations returns the last iterate with Converged=false and
// a nil error; a non-optimal master or scenario solve returns a wrapped
// sentinel error instead. Result.Objective is C·x + Result.Recourse, the
// expected total cost of the final decision.
func Solve(problem *stochastic.Problem, opts Options) (Result, error) {
	if problem == nil {
		return Result{}, ErrNilProblem
	}
	if err := problem.Validate(); err != nil {
		return Result{}, err
	}
	o := opts.normalize()

	var (
		cuts    []Cut
		history []IterationRecord
		res     Result
	)
	for iter := 1; iter <= o.MaxIterations; iter++ {
		master, err := SolveMaster(o.Solver, problem.First, cuts)
		if err != nil {
			return Result{}, err
		}
		o.Observer.OnMaster(iter, master)

		parts, err := solveScenarios(o, problem.Scenarios, master.X)
		if err != nil {
			return Result{}, err
		}
		for i := range parts {
			o.Observer.OnScenario(iter, parts[i])
		}

		agg := AggregateCuts(parts, master.X)
		gap := agg.W - master.Theta
		o.Observer.OnAggregate(iter, agg, gap)

		history = append(history, IterationRecord{
			Iteration:         iter,
			X:                 master.X,
			Theta:             master.Theta,
			W:                 agg.W,
			Gap:               gap,
			MasterObjective:   master.Objective,
			RecourseObjective: agg.Objective,
		})
		res = Result{
			X:          master.X,
			Theta:      master.Theta,
			Objective:  floats.Dot(problem.First.C, master.X) + agg.Objective,
			Recourse:   agg.Objective,
			Iterations: iter,
			History:    history,
		}

		candidate := Cut{E: agg.E, Rhs: agg.Rhs}
		switch {
		case containsCut(cuts, candidate, o.Epsilon):
			res.Converged = true
			res.Cuts = cuts
			o.Observer.OnStop(iter, StopDuplicateCut)
			return res, nil
		case math.Abs(gap) <= o.Tolerance:
			res.Converged = true
			res.Cuts = cuts
			o.Observer.OnStop(iter, StopGapClosed)
			return res, nil
		default:
			cuts = append(cuts, candidate)
			o.Observer.OnCut(iter, candidate)
		}
	}
	res.Cuts = cuts
	o.Observer.OnStop(res.Iterations, StopIterationLimit)
	return res, nil
}

// solveScenarios evaluates every scenario at x, sequentially or on an
// errgroup bounded by Options.Workers. Results land in scenario order either
// way; the first failure wins and carries its scenario index.
func solveScenarios(o Options, scens []stochastic.Scenario, x []float64) ([]ScenarioCut, error) {
	parts := make([]ScenarioCut, len(scens))
	if o.Workers > 1 && len(scens) > 1 {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for k := range scens {
			k := k
			g.Go(func() error {
				part, err := SolveScenario(o.Solver, x, scens[k], o.Epsilon)
				if err != nil {
					return fmt.Errorf("lshaped: scenario %d: %w", k, err)
				}
				part.Scenario = k
				parts[k] = part
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return parts, nil
	}
	for k := range scens {
		part, err := SolveScenario(o.Solver, x, scens[k], o.Epsilon)
		if err != nil {
			return nil, fmt.Errorf("lshaped: scenario %d: %w", k, err)
		}
		part.Scenario = k
		parts[k] = part
	}
	return parts, nil
}

// containsCut reports whether candidate matches any existing cut
// elementwise within eps, on both E and Rhs.
func containsCut(cuts []Cut, candidate Cut, eps float64) bool {
	for i := range cuts {
		if math.Abs(cuts[i].Rhs-candidate.Rhs) >= eps {
			continue
		}
		same := true
		for j := range candidate.E {
			if math.Abs(cuts[i].E[j]-candidate.E[j]) >= eps {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
