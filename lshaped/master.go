package lshaped

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slp/lp"
	"github.com/katalvlaran/slp/stochastic"
)

// SolveMaster builds and solves the current master problem
//
//	min  C·x + θ    s.t.  A·x ≤ B,  E·x + θ ≥ Rhs per cut,  x ≥ Lower,
//
// with θ as a free column that exists only once at least one cut does; until
// then the recourse proxy is reported as −Inf. Cut rows enter the ≤ oracle
// form as −E·x − θ ≤ −Rhs. A non-optimal master is a hard failure: the loop
// has no meaningful continuation from an infeasible or unbounded relaxation.
func SolveMaster(solver lp.Solver, fs stochastic.FirstStage, cuts []Cut) (MasterResult, error) {
	n := fs.Vars()
	m := len(fs.B)
	hasTheta := len(cuts) > 0

	colsN := n
	if hasTheta {
		colsN++
	}
	rowsN := m + len(cuts)

	var a *mat.Dense
	rhs := make([]float64, rowsN)
	if rowsN > 0 {
		a = mat.NewDense(rowsN, colsN, nil)
		for j := 0; j < m; j++ {
			for i := 0; i < n; i++ {
				a.Set(j, i, fs.A.At(j, i))
			}
			rhs[j] = fs.B[j]
		}
		for k, cut := range cuts {
			for i := 0; i < n; i++ {
				a.Set(m+k, i, -cut.E[i])
			}
			a.Set(m+k, n, -1)
			rhs[m+k] = -cut.Rhs
		}
	}

	cost := make([]float64, colsN)
	lower := make([]float64, colsN)
	upper := make([]float64, colsN)
	copy(cost, fs.C)
	copy(lower, fs.Lower)
	for i := range upper {
		upper[i] = math.Inf(1)
	}
	if hasTheta {
		cost[n] = 1
		lower[n] = math.Inf(-1)
	}

	res, err := solver.Solve(lp.Problem{
		Cost:        cost,
		Constraints: a,
		RHS:         rhs,
		Lower:       lower,
		Upper:       upper,
	})
	if err != nil {
		return MasterResult{}, fmt.Errorf("lshaped: master solve: %w", err)
	}
	switch res.Status {
	case lp.StatusInfeasible:
		return MasterResult{}, ErrMasterInfeasible
	case lp.StatusUnbounded:
		return MasterResult{}, ErrMasterUnbounded
	}

	theta := math.Inf(-1)
	if hasTheta {
		theta = res.X[n]
	}
	return MasterResult{
		X:         res.X[:n:n],
		Theta:     theta,
		Objective: res.Objective,
	}, nil
}
