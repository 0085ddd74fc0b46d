package stochastic

import "gonum.org/v1/gonum/mat"

// FarmProblem returns a two-crop planning instance with two demand
// scenarios, the worked example used across this module's tests, examples
// and documentation.
//
// The farmer chooses acreage x = (x1, x2) at cost 100 and 150 per acre,
// with x1 + x2 ≤ 120, x1 ≥ 40 and x2 ≥ 20. Yields are 60 and 80 units per
// acre. Each scenario sells the harvest through two channels with
// scenario-dependent prices and sales caps:
//
//	scenario 1 (p = 0.4): prices (24, 28), caps (500, 100)
//	scenario 2 (p = 0.6): prices (28, 32), caps (300, 300)
//
// subject to the shared channel capacity 6y1 + 10y2 ≤ 60·x1 and
// 8y1 + 5y2 ≤ 80·x2. Selling is a negative cost, so each recourse objective
// minimizes −price·y.
func FarmProblem() *Problem {
	// Constraint rows first, then one bookkeeping row per recourse variable.
	tech := func() *mat.Dense {
		return mat.NewDense(4, 2, []float64{
			-60, 0,
			0, -80,
			0, 0,
			0, 0,
		})
	}
	recourse := func() *mat.Dense {
		return mat.NewDense(2, 2, []float64{
			6, 10,
			8, 5,
		})
	}
	return &Problem{
		First: FirstStage{
			C:     []float64{100, 150},
			A:     mat.NewDense(1, 2, []float64{1, 1}),
			B:     []float64{120},
			Lower: []float64{40, 20},
		},
		Scenarios: []Scenario{
			{
				Probability: 0.4,
				Q:           []float64{-24, -28},
				H:           []float64{0, 0, 500, 100},
				T:           tech(),
				W:           recourse(),
				D:           []float64{500, 100},
			},
			{
				Probability: 0.6,
				Q:           []float64{-28, -32},
				H:           []float64{0, 0, 300, 300},
				T:           tech(),
				W:           recourse(),
				D:           []float64{300, 300},
			},
		},
	}
}
