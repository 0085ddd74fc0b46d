package lshaped

import "github.com/katalvlaran/slp/lp"

const (
	// DefaultMaxIterations bounds the decomposition loop.
	DefaultMaxIterations = 100
	// DefaultTolerance is the convergence threshold on |w − θ|.
	DefaultTolerance = 1e-6
	// DefaultEpsilon is the matching threshold for dual canonicalization and
	// duplicate-cut detection.
	DefaultEpsilon = 1e-6
	// DefaultWorkers keeps scenario solves sequential.
	DefaultWorkers = 1
)

// Options configures a decomposition run.
//   - MaxIterations: loop bound; exhausting it is not an error
//     (default DefaultMaxIterations).
//   - Tolerance: convergence threshold on |w − θ| (default DefaultTolerance).
//   - Epsilon: at-bound and duplicate-cut matching threshold
//     (default DefaultEpsilon).
//   - Workers: scenario solves run on min(Workers, scenarios) goroutines;
//     ≤ 1 means sequential (default DefaultWorkers).
//   - Solver: the LP oracle (default the bundled lp.Simplex).
//   - Observer: per-iteration reporting hook (default NopObserver).
type Options struct {
	MaxIterations int
	Tolerance     float64
	Epsilon       float64
	Workers       int
	Solver        lp.Solver
	Observer      Observer
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Epsilon:       DefaultEpsilon,
		Workers:       DefaultWorkers,
		Solver:        lp.NewSimplex(),
		Observer:      NopObserver{},
	}
}

// normalize fills zero-valued fields with their defaults.
func (o Options) normalize() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Workers < 1 {
		o.Workers = DefaultWorkers
	}
	if o.Solver == nil {
		o.Solver = lp.NewSimplex()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	return o
}
