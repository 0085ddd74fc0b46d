package lshaped_test

import (
	"fmt"

	"github.com/katalvlaran/slp/lshaped"
	"github.com/katalvlaran/slp/stochastic"
)

// ExampleSolve runs the decomposition on the bundled farm problem and prints
// the converged plan.
func ExampleSolve() {
	res, err := lshaped.Solve(stochastic.FarmProblem(), lshaped.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("converged in %d iterations\n", res.Iterations)
	fmt.Printf("x = [%.2f %.2f]\n", res.X[0], res.X[1])
	fmt.Printf("expected recourse cost = %.0f\n", res.Recourse)
	fmt.Printf("total objective = %.2f\n", res.Objective)
	// Output:
	// converged in 5 iterations
	// x = [46.67 36.25]
	// expected recourse cost = -10960
	// total objective = -855.83
}

// ExampleSolveMaster shows the theta sentinel before any cut exists.
func ExampleSolveMaster() {
	opts := lshaped.DefaultOptions()
	res, err := lshaped.SolveMaster(opts.Solver, stochastic.FarmProblem().First, nil)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("x = [%.0f %.0f], theta = %v\n", res.X[0], res.X[1], res.Theta)
	// Output:
	// x = [40 20], theta = -Inf
}
