// Package lshaped implements the L-shaped decomposition loop for two-stage
// stochastic linear programs.
//
// 🚀 How one iteration works:
//
//	1. Solve the master  min C·x + θ  s.t. A·x ≤ B, x ≥ lb and one row
//	   E·x + θ ≥ e per accumulated optimality cut. Until the first cut
//	   exists the master omits θ and reports it as −Inf.
//	2. Solve every scenario's recourse LP at the master's x and recover its
//	   shadow prices, including the implicit duals of binding variable
//	   upper bounds (CanonicalDuals).
//	3. Turn each scenario's duals into a probability-weighted cut
//	   contribution e_k = p·(π·h), E_k = p·(πᵀT), and sum the contributions
//	   into a candidate cut and the certificate value w = e − E·x.
//	4. Stop when the candidate duplicates an existing cut or the gap
//	   |w − θ| falls within tolerance; otherwise append the cut and repeat.
//
// ✨ Key features:
//
//   - Hard failure on any non-optimal master or scenario solve; the loop
//     never substitutes a fallback point
//   - Duplicate-cut detection checked before the gap, so degenerate
//     instances terminate instead of looping on an unchanged cut
//   - Per-iteration history (x, θ, w, gap, objectives) in the Result
//   - Options with documented defaults; Workers > 1 fans scenarios out on
//     an errgroup with deterministic index-ordered aggregation
//   - Observer hook with a ready-made TraceWriter for verbose runs
//
// ⚙️ Usage:
//
//	res, err := lshaped.Solve(stochastic.FarmProblem(), lshaped.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Converged, res.X, res.Theta)
//
// Complexity per iteration: one master LP of len(C)+1 columns and
// len(B)+len(cuts) rows, plus K scenario LPs; the cut list grows by at most
// one row per iteration.
package lshaped
