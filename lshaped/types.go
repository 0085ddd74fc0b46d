package lshaped

// Cut is one optimality cut E·x + θ ≥ Rhs in first-stage space.
type Cut struct {
	E   []float64
	Rhs float64
}

// MasterResult is the outcome of one master solve. Theta is −Inf until the
// first cut exists; Objective includes θ whenever it is present.
type MasterResult struct {
	X         []float64
	Theta     float64
	Objective float64
}

// ScenarioCut is one scenario's contribution to the iteration, already
// weighted by its probability: Rhs = p·(π·h), E = p·(πᵀT) and
// W = Rhs − E·x. Objective and Y are the scenario's own (unweighted)
// recourse optimum; Duals is the canonical dual vector over constraint rows
// and variable upper bounds.
type ScenarioCut struct {
	Scenario    int
	Probability float64
	Objective   float64
	Y           []float64
	Duals       []float64
	E           []float64
	Rhs         float64
	W           float64
}

// Aggregate sums the scenario contributions of one iteration: the candidate
// cut (E, Rhs), the certificate value W = Rhs − E·x, and the expected
// recourse objective Σ p_k·objective_k.
type Aggregate struct {
	E         []float64
	Rhs       float64
	W         float64
	Objective float64
}

// IterationRecord captures one loop iteration for the Result history.
type IterationRecord struct {
	Iteration         int
	X                 []float64
	Theta             float64
	W                 float64
	Gap               float64
	MasterObjective   float64
	RecourseObjective float64
}

// Result is the outcome of a full decomposition run.
//
// Objective composes the first-stage cost with the expected recourse cost at
// the final x (C·x + Recourse); Theta is the master's recourse proxy at the
// last iteration and meets Recourse at convergence.
type Result struct {
	X          []float64
	Theta      float64
	Objective  float64
	Recourse   float64
	Iterations int
	Converged  bool
	Cuts       []Cut
	History    []IterationRecord
}

// StopReason tells an Observer why the loop ended.
type StopReason int

const (
	// StopGapClosed: |w − θ| fell within Options.Tolerance.
	StopGapClosed StopReason = iota
	// StopDuplicateCut: the candidate cut matched an existing one.
	StopDuplicateCut
	// StopIterationLimit: MaxIterations ran out before convergence.
	StopIterationLimit
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopGapClosed:
		return "gap within tolerance"
	case StopDuplicateCut:
		return "duplicate cut"
	case StopIterationLimit:
		return "iteration limit reached"
	default:
		return "unknown"
	}
}
