package lshaped

import "gonum.org/v1/gonum/floats"

// AggregateCuts sums the per-scenario contributions of one iteration into
// the candidate optimality cut E·x + θ ≥ Rhs, its certificate value
// W = Rhs − E·x at the current point, and the expected recourse objective.
// The parts are already probability-weighted except for Objective, which is
// weighted here.
func AggregateCuts(parts []ScenarioCut, x []float64) Aggregate {
	agg := Aggregate{E: make([]float64, len(x))}
	for i := range parts {
		agg.Rhs += parts[i].Rhs
		floats.Add(agg.E, parts[i].E)
		agg.Objective += parts[i].Probability * parts[i].Objective
	}
	agg.W = agg.Rhs - floats.Dot(agg.E, x)
	return agg
}
