// Package lp defines the linear-programming oracle contract consumed by the
// decomposition packages, together with a small dense simplex engine that
// implements it.
//
// The contract is intentionally narrow:
//
//	solve   min  Cost·y
//	        s.t. Constraints·y ≤ RHS
//	             Lower ≤ y ≤ Upper
//
// A Result reports the primal solution together with the dual information the
// cutting-plane machinery consumes: one shadow price per constraint row
// (non-positive on a binding ≤ row of a minimization) and one reduced cost per
// variable (negative when the variable sits on a binding upper bound).
//
// Simplex is a bounded-variable revised simplex built on gonum/mat dense
// factorizations: Bland's rule, a Phase I with artificial variables only on
// rows that need them, and dual recovery from the final basis via
// πᵀ = c_B·B⁻¹. It targets the small, well-conditioned programs that arise as
// decomposition masters and scenario subproblems; any engine satisfying
// Solver can replace it.
package lp
