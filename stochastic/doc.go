// Package stochastic holds the data model of a two-stage stochastic linear
// program: the deterministic first stage and a finite set of probability-
// weighted recourse scenarios.
//
// The first stage is
//
//	min  C·x    s.t.  A·x ≤ B,  x ≥ Lower,
//
// and each scenario k contributes a recourse program
//
//	min  Q·y    s.t.  W·y ≤ h_k − T_k·x,  0 ≤ y ≤ D,
//
// where the scenario right-hand side H and technology matrix T carry the
// recourse constraint rows first, followed by one bookkeeping row per
// recourse variable mirroring its upper bound (those rows feed the dual
// arithmetic of the decomposition, not the oracle).
//
// Validate catches malformed instances up front: probabilities must lie in
// (0, 1] and sum to one within ProbabilitySumTol, and every dimension
// relation between C, A, B, Q, H, D, T and W must hold.
//
// FarmProblem returns a small two-crop planning instance with two demand
// scenarios, used throughout the examples and tests.
package stochastic
