// Package slp solves two-stage stochastic linear programs by the L-shaped
// method, the cutting-plane decomposition known as Benders decomposition
// when specialised to recourse problems.
//
// 🚀 What is the L-shaped method?
//
//	A two-stage stochastic program picks a first-stage decision x before
//	uncertainty resolves, then pays an expected second-stage (recourse) cost
//	over a finite set of scenarios. Instead of assembling one giant LP, the
//	L-shaped method keeps a small master problem over x plus a scalar proxy θ
//	for the recourse cost, solves every scenario subproblem at the current x,
//	and turns the scenarios' shadow prices into linear optimality cuts
//	E·x + θ ≥ e that tighten the proxy until it matches reality.
//
// ✨ Key features:
//
//   - Pure in-memory decomposition loop with full per-iteration history
//   - Pluggable LP oracle behind a narrow Solver contract
//   - Bundled dense bounded-variable simplex with dual extraction
//   - Optional parallel scenario fan-out with deterministic aggregation
//   - Observer hook for structured per-iteration reporting
//
// Everything is organized under three subpackages:
//
//	lp/         — LP oracle contract + the bundled simplex engine
//	stochastic/ — first-stage and scenario data model + validation
//	lshaped/    — the decomposition core: duals, cuts, master, loop
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/slp/lshaped"
//		"github.com/katalvlaran/slp/stochastic"
//	)
//
//	res, err := lshaped.Solve(stochastic.FarmProblem(), lshaped.DefaultOptions())
//	// res.X, res.Theta, res.Objective, res.History, ...
//
// Runnable demos live under examples/; each package also ships an
// example_test.go with verified output.
package slp
