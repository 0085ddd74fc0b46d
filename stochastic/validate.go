package stochastic

import (
	"fmt"
	"math"
)

// ProbabilitySumTol is the slack allowed on Σ probability = 1.
const ProbabilitySumTol = 1e-9

// Validate checks the whole instance: first-stage shapes, every scenario's
// shapes against the first stage, probability ranges and their sum. It
// returns the first violation found, wrapped with enough position context to
// locate the offending scenario.
func (p *Problem) Validate() error {
	if err := p.First.validate(); err != nil {
		return err
	}
	if len(p.Scenarios) == 0 {
		return ErrNoScenarios
	}
	sum := 0.0
	for k := range p.Scenarios {
		if err := p.Scenarios[k].validate(p.First.Vars()); err != nil {
			return fmt.Errorf("scenario %d: %w", k, err)
		}
		sum += p.Scenarios[k].Probability
	}
	if math.Abs(sum-1) > ProbabilitySumTol {
		return fmt.Errorf("%w: got %v", ErrBadProbabilitySum, sum)
	}
	return nil
}

func (f FirstStage) validate() error {
	n := f.Vars()
	if n == 0 || len(f.Lower) != n {
		return ErrDimensionMismatch
	}
	if f.A == nil {
		if len(f.B) != 0 {
			return ErrDimensionMismatch
		}
	} else {
		r, c := f.A.Dims()
		if r != len(f.B) || c != n {
			return ErrDimensionMismatch
		}
	}
	if !allFinite(f.C) || !allFinite(f.B) || !allFinite(f.Lower) {
		return ErrNonFinite
	}
	return nil
}

func (s Scenario) validate(firstStageVars int) error {
	if s.Probability <= 0 || s.Probability > 1 || math.IsNaN(s.Probability) {
		return ErrBadProbability
	}
	p := s.Vars()
	if p == 0 || len(s.D) != p {
		return ErrDimensionMismatch
	}
	if s.W == nil || s.T == nil {
		return ErrDimensionMismatch
	}
	rc, wc := s.W.Dims()
	if wc != p {
		return ErrDimensionMismatch
	}
	if len(s.H) != rc+p {
		return ErrDimensionMismatch
	}
	tr, tc := s.T.Dims()
	if tr != len(s.H) || tc != firstStageVars {
		return ErrDimensionMismatch
	}
	if !allFinite(s.Q) || !allFinite(s.H) || !allFinite(s.D) {
		return ErrNonFinite
	}
	return nil
}

// allFinite reports whether every entry is a regular float64.
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
