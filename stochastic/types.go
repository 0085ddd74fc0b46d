package stochastic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FirstStage is the deterministic part of the program:
//
//	min  C·x    s.t.  A·x ≤ B,  x ≥ Lower.
//
// A may be nil when B is empty. First-stage variables are unbounded above.
type FirstStage struct {
	C     []float64
	A     *mat.Dense
	B     []float64
	Lower []float64
}

// Vars returns the number of first-stage variables.
func (f FirstStage) Vars() int { return len(f.C) }

// Scenario is one realization of the uncertainty with its recourse program
//
//	min  Q·y    s.t.  W·y ≤ h − T·x,  0 ≤ y ≤ D.
//
// H and T carry rows(W) recourse constraint rows first, then len(Q)
// bookkeeping rows, one per recourse variable, mirroring its upper bound
// (typically the tail of H repeats D and the tail rows of T are zero). Only
// the constraint rows reach the LP oracle; the full vectors drive the cut
// arithmetic.
type Scenario struct {
	Probability float64
	Q           []float64
	H           []float64
	T           *mat.Dense
	W           *mat.Dense
	D           []float64
}

// Vars returns the number of recourse variables.
func (s Scenario) Vars() int { return len(s.Q) }

// Rows returns the number of recourse constraint rows.
func (s Scenario) Rows() int {
	if s.W == nil {
		return 0
	}
	r, _ := s.W.Dims()
	return r
}

// Problem is a complete two-stage instance.
type Problem struct {
	First     FirstStage
	Scenarios []Scenario
}

// RHS evaluates h − T·x, the scenario right-hand side at a fixed first-stage
// decision.
func RHS(h []float64, t *mat.Dense, x []float64) []float64 {
	var tx mat.VecDense
	tx.MulVec(t, mat.NewVecDense(len(x), x))
	out := make([]float64, len(h))
	floats.SubTo(out, h, tx.RawVector().Data)
	return out
}
