package lshaped_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slp/lp"
	"github.com/katalvlaran/slp/lshaped"
	"github.com/katalvlaran/slp/stochastic"
)

// TestSolve_FarmRegression pins the end-to-end behavior on the reference
// farm problem: convergence in at most five iterations to
// x ≈ (46.67, 36.25) with expected recourse cost ≈ −10960.
func TestSolve_FarmRegression(t *testing.T) {
	opts := lshaped.DefaultOptions()
	opts.MaxIterations = 10

	res, err := lshaped.Solve(stochastic.FarmProblem(), opts)
	require.NoError(t, err)
	require.True(t, res.Converged, "must converge")
	assert.LessOrEqual(t, res.Iterations, 5)

	assert.InDelta(t, 46.6667, res.X[0], 1e-3)
	assert.InDelta(t, 36.25, res.X[1], 1e-3)
	assert.InDelta(t, -10960.0, res.Recourse, 1.0, "expected recourse cost")
	assert.InDelta(t, res.Recourse, res.Theta, 1e-3, "proxy meets recourse at convergence")
	cx := 100*res.X[0] + 150*res.X[1]
	assert.InDelta(t, cx+res.Recourse, res.Objective, 1e-9, "objective composition")

	require.Len(t, res.History, res.Iterations)
	first := res.History[0]
	assert.InDelta(t, 40.0, first.X[0], 1e-9, "iteration 1 starts on the lower bounds")
	assert.InDelta(t, 20.0, first.X[1], 1e-9)
	assert.True(t, math.IsInf(first.Theta, -1))
	assert.InDelta(t, -7470.4, first.W, 1e-6, "iteration 1 certificate value")
	assert.NotEmpty(t, res.Cuts)
}

// TestSolve_IterationLimit: exhausting MaxIterations is not an error; the
// last iterate is returned with Converged=false.
func TestSolve_IterationLimit(t *testing.T) {
	opts := lshaped.DefaultOptions()
	opts.MaxIterations = 3

	res, err := lshaped.Solve(stochastic.FarmProblem(), opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.History, 3)
	assert.Len(t, res.Cuts, 3, "one cut appended per non-final iteration")
}

// TestSolve_ParallelMatchesSequential: the fan-out changes scheduling only;
// aggregation stays index-ordered, so every number must match exactly.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	seqOpts := lshaped.DefaultOptions()
	seq, err := lshaped.Solve(stochastic.FarmProblem(), seqOpts)
	require.NoError(t, err)

	parOpts := lshaped.DefaultOptions()
	parOpts.Workers = 4
	par, err := lshaped.Solve(stochastic.FarmProblem(), parOpts)
	require.NoError(t, err)

	assert.Equal(t, seq.Iterations, par.Iterations)
	assert.Equal(t, seq.Converged, par.Converged)
	assert.Equal(t, seq.X, par.X)
	assert.Equal(t, seq.Theta, par.Theta)
	assert.Equal(t, seq.Recourse, par.Recourse)
	assert.Equal(t, seq.Cuts, par.Cuts)
}

// scriptSolver replays a fixed sequence of oracle results, ignoring the
// submitted problems. It drives loop-control tests that need behaviors a
// real engine will not produce on demand.
type scriptSolver struct {
	results []lp.Result
	call    int
}

func (s *scriptSolver) Solve(lp.Problem) (lp.Result, error) {
	res := s.results[s.call%len(s.results)]
	s.call++
	return res, nil
}

// stubProblem is a minimal valid instance for scripted runs: one first-stage
// variable, one scenario, one recourse variable.
func stubProblem() *stochastic.Problem {
	return &stochastic.Problem{
		First: stochastic.FirstStage{
			C:     []float64{1},
			A:     mat.NewDense(1, 1, []float64{1}),
			B:     []float64{100},
			Lower: []float64{0},
		},
		Scenarios: []stochastic.Scenario{{
			Probability: 1,
			Q:           []float64{-1},
			H:           []float64{10, 5},
			T:           mat.NewDense(2, 1, []float64{2, 0}),
			W:           mat.NewDense(1, 1, []float64{1}),
			D:           []float64{5},
		}},
	}
}

// TestSolve_DuplicateCutStops scripts an oracle whose scenario duals never
// change: the second iteration reproduces the first cut and the loop must
// stop converged even though the gap is still huge.
func TestSolve_DuplicateCutStops(t *testing.T) {
	scenario := lp.Result{
		Status:          lp.StatusOptimal,
		X:               []float64{5},
		Objective:       -5,
		ConstraintDuals: []float64{-1},
		ReducedCosts:    []float64{-2},
	}
	solver := &scriptSolver{results: []lp.Result{
		// iteration 1: master without theta, then the scenario
		{Status: lp.StatusOptimal, X: []float64{0}, Objective: 0,
			ConstraintDuals: []float64{0}, ReducedCosts: []float64{1}},
		scenario,
		// iteration 2: master with theta far below the cut, same scenario
		{Status: lp.StatusOptimal, X: []float64{0, -1000}, Objective: -1000,
			ConstraintDuals: []float64{0, 0}, ReducedCosts: []float64{1, 1}},
		scenario,
	}}

	opts := lshaped.DefaultOptions()
	opts.Solver = solver

	res, err := lshaped.Solve(stubProblem(), opts)
	require.NoError(t, err)
	assert.True(t, res.Converged, "duplicate cut terminates the loop")
	assert.Equal(t, 2, res.Iterations)
	require.Len(t, res.Cuts, 1)
	assert.InDelta(t, -20.0, res.Cuts[0].Rhs, 1e-9)
	assert.InDelta(t, -2.0, res.Cuts[0].E[0], 1e-9)
	assert.Greater(t, math.Abs(res.History[1].Gap), opts.Tolerance,
		"gap alone would not have stopped here")
}

// TestSolve_SubproblemFailureAborts: a non-optimal scenario solve fails the
// whole run with the scenario's index in the message.
func TestSolve_SubproblemFailureAborts(t *testing.T) {
	solver := &scriptSolver{results: []lp.Result{
		{Status: lp.StatusOptimal, X: []float64{0}, Objective: 0,
			ConstraintDuals: []float64{0}, ReducedCosts: []float64{1}},
		{Status: lp.StatusInfeasible},
	}}

	opts := lshaped.DefaultOptions()
	opts.Solver = solver

	_, err := lshaped.Solve(stubProblem(), opts)
	require.ErrorIs(t, err, lshaped.ErrSubproblemInfeasible)
	assert.Contains(t, err.Error(), "scenario 0")
}

func TestSolve_NilProblem(t *testing.T) {
	_, err := lshaped.Solve(nil, lshaped.DefaultOptions())
	assert.ErrorIs(t, err, lshaped.ErrNilProblem)
}

func TestSolve_InvalidProblem(t *testing.T) {
	p := stochastic.FarmProblem()
	p.Scenarios[0].Probability = 0.5
	_, err := lshaped.Solve(p, lshaped.DefaultOptions())
	assert.ErrorIs(t, err, stochastic.ErrBadProbabilitySum)
}

func BenchmarkSolve_Farm(b *testing.B) {
	p := stochastic.FarmProblem()
	opts := lshaped.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lshaped.Solve(p, opts); err != nil {
			b.Fatal(err)
		}
	}
}
