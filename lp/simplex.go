package lp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultTol is the pricing tolerance: a reduced cost above -DefaultTol
	// counts as non-negative.
	DefaultTol = 1e-9
	// feasTol bounds the Phase I objective of a feasible program.
	feasTol = 1e-7
	// ratioTol is the smallest pivot magnitude accepted by the ratio test.
	ratioTol = 1e-9
	// pivotLimit caps pivots per phase; Bland's rule terminates finitely, so
	// hitting the cap signals numeric trouble rather than a big program.
	pivotLimit = 100000
)

// Simplex is a dense bounded-variable revised simplex with dual recovery.
// The zero value is ready to use; NewSimplex sets the default tolerance
// explicitly. Solve is pure, so a single Simplex may serve many goroutines.
type Simplex struct {
	// Tol is the pricing tolerance; non-positive values fall back to
	// DefaultTol.
	Tol float64
}

// NewSimplex returns an engine with default tolerances.
func NewSimplex() *Simplex { return &Simplex{Tol: DefaultTol} }

// colKind tags how a standard-form column maps back to an original variable.
type colKind uint8

const (
	colShifted  colKind = iota // y = offset + z, z ≥ 0
	colMirrored                // y = offset − z, z ≥ 0 (lower bound is -Inf)
	colFreePos                 // positive part of a free variable
	colFreeNeg                 // negative part of a free variable
)

// column is one standard-form structural column.
type column struct {
	vr     int
	kind   colKind
	offset float64
}

// Solve minimizes p by the revised simplex method.
//
// Steps:
//  1. Convert to standard equality form: shift finite lower bounds to zero,
//     mirror variables with only an upper bound, split free variables into
//     two non-negative parts, and add one extra row per finite upper bound.
//  2. Negate rows with a negative right-hand side (the sign is remembered
//     for dual recovery) and give every row a slack; negated rows also get
//     an artificial variable.
//  3. Phase I: minimize the artificial sum with Bland's rule. A residual
//     above feasTol means the program is infeasible.
//  4. Phase II: minimize the true objective from the feasible basis.
//  5. Recover x from the basic values, π from the final basis transpose
//     solve, and reduced costs over the original constraint rows.
//
// Complexity per pivot: O(rows³) for the dense factorizations, which is the
// right trade for the small decomposition LPs this engine serves.
func (s *Simplex) Solve(p Problem) (Result, error) {
	if err := validate(p); err != nil {
		return Result{}, err
	}
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultTol
	}

	n := len(p.Cost)
	m := len(p.RHS)

	// Structural columns plus one bookkeeping row per finite upper bound of
	// a below-bounded variable (mirrored variables encode theirs directly).
	cols := make([]column, 0, n+1)
	varCol := make([]int, n)
	var bound []int
	for i := 0; i < n; i++ {
		lo, up := p.Lower[i], p.Upper[i]
		varCol[i] = len(cols)
		switch {
		case math.IsInf(lo, -1) && math.IsInf(up, 1):
			cols = append(cols,
				column{vr: i, kind: colFreePos},
				column{vr: i, kind: colFreeNeg})
		case math.IsInf(lo, -1):
			cols = append(cols, column{vr: i, kind: colMirrored, offset: up})
		default:
			cols = append(cols, column{vr: i, kind: colShifted, offset: lo})
			if !math.IsInf(up, 1) {
				bound = append(bound, i)
			}
		}
	}
	structural := len(cols)
	rows := m + len(bound)

	if rows == 0 {
		return s.solveUnconstrained(p, cols, tol)
	}

	// Right-hand side after the change of variables.
	b := make([]float64, rows)
	for j := 0; j < m; j++ {
		v := p.RHS[j]
		for _, col := range cols {
			if col.kind == colShifted || col.kind == colMirrored {
				v -= p.Constraints.At(j, col.vr) * col.offset
			}
		}
		b[j] = v
	}
	for t, i := range bound {
		b[m+t] = p.Upper[i] - p.Lower[i]
	}

	// Rows with negative RHS are negated; remember signs for dual recovery.
	sign := make([]float64, rows)
	art := 0
	for j := range b {
		sign[j] = 1
		if b[j] < 0 {
			sign[j] = -1
			b[j] = -b[j]
			art++
		}
	}

	width := structural + rows + art
	a := mat.NewDense(rows, width, nil)
	for j := 0; j < m; j++ {
		for k, col := range cols {
			v := p.Constraints.At(j, col.vr)
			if col.kind == colMirrored || col.kind == colFreeNeg {
				v = -v
			}
			if v != 0 {
				a.Set(j, k, sign[j]*v)
			}
		}
	}
	for t, i := range bound {
		// Upper−Lower ≥ 0, so bound rows are never negated.
		a.Set(m+t, varCol[i], 1)
	}
	for j := 0; j < rows; j++ {
		a.Set(j, structural+j, sign[j])
	}

	// Initial basis: the slack on each kept row, an artificial on each
	// negated row.
	basis := make([]int, rows)
	art = 0
	for j := 0; j < rows; j++ {
		if sign[j] < 0 {
			basis[j] = structural + rows + art
			a.Set(j, basis[j], 1)
			art++
		} else {
			basis[j] = structural + j
		}
	}

	c := make([]float64, width)
	for k, col := range cols {
		v := p.Cost[col.vr]
		if col.kind == colMirrored || col.kind == colFreeNeg {
			v = -v
		}
		c[k] = v
	}

	// Artificials may never (re)enter the basis.
	barFrom := structural + rows

	if art > 0 {
		phase := make([]float64, width)
		for j := barFrom; j < width; j++ {
			phase[j] = 1
		}
		xb, _, unbounded, err := s.pivot(a, b, phase, basis, barFrom, tol)
		if err != nil {
			return Result{}, err
		}
		if unbounded {
			// Phase I is bounded below by zero.
			return Result{}, ErrSingular
		}
		infeas := 0.0
		for i, idx := range basis {
			if idx >= barFrom {
				infeas += math.Max(xb[i], 0)
			}
		}
		if infeas > feasTol {
			return Result{Status: StatusInfeasible}, nil
		}
		if err := s.evictArtificials(a, basis, barFrom); err != nil {
			return Result{}, err
		}
	}

	xb, pi, unbounded, err := s.pivot(a, b, c, basis, barFrom, tol)
	if err != nil {
		return Result{}, err
	}
	if unbounded {
		return Result{Status: StatusUnbounded}, nil
	}

	// Map basic values back onto the original variables.
	z := make([]float64, width)
	for i, idx := range basis {
		z[idx] = math.Max(xb[i], 0)
	}
	x := make([]float64, n)
	for k, col := range cols {
		switch col.kind {
		case colShifted:
			x[col.vr] = col.offset + z[k]
		case colMirrored:
			x[col.vr] = col.offset - z[k]
		case colFreePos:
			x[col.vr] += z[k]
		case colFreeNeg:
			x[col.vr] -= z[k]
		}
	}

	duals := make([]float64, m)
	for j := 0; j < m; j++ {
		duals[j] = sign[j] * pi[j]
	}
	reduced := make([]float64, n)
	for i := 0; i < n; i++ {
		r := p.Cost[i]
		for j := 0; j < m; j++ {
			r -= duals[j] * p.Constraints.At(j, i)
		}
		reduced[i] = r
	}

	return Result{
		Status:          StatusOptimal,
		X:               x,
		Objective:       floats.Dot(p.Cost, x),
		ConstraintDuals: duals,
		ReducedCosts:    reduced,
	}, nil
}

// solveUnconstrained handles the degenerate case of no constraint and no
// bound rows: every column rests on its bound, or the program is unbounded.
func (s *Simplex) solveUnconstrained(p Problem, cols []column, tol float64) (Result, error) {
	for _, col := range cols {
		v := p.Cost[col.vr]
		if col.kind == colMirrored || col.kind == colFreeNeg {
			v = -v
		}
		if v < -tol {
			return Result{Status: StatusUnbounded}, nil
		}
	}
	x := make([]float64, len(p.Cost))
	for _, col := range cols {
		if col.kind == colShifted || col.kind == colMirrored {
			x[col.vr] = col.offset
		}
	}
	return Result{
		Status:          StatusOptimal,
		X:               x,
		Objective:       floats.Dot(p.Cost, x),
		ConstraintDuals: []float64{},
		ReducedCosts:    append([]float64(nil), p.Cost...),
	}, nil
}

// pivot runs Bland-rule simplex iterations on the standard-form tableau until
// the basis is optimal for c, the program proves unbounded, or the pivot
// budget runs out. basis is updated in place; xb and pi are the basic values
// and row multipliers of the final basis. Columns at or beyond barFrom never
// enter.
func (s *Simplex) pivot(a *mat.Dense, b, c []float64, basis []int, barFrom int, tol float64) (xb, pi []float64, unbounded bool, err error) {
	rows, width := a.Dims()
	inBasis := make([]bool, width)
	for _, idx := range basis {
		inBasis[idx] = true
	}

	bm := mat.NewDense(rows, rows, nil)
	col := make([]float64, rows)
	bVec := mat.NewVecDense(rows, b)
	cb := mat.NewVecDense(rows, nil)
	xbVec := mat.NewVecDense(rows, nil)
	piVec := mat.NewVecDense(rows, nil)
	dVec := mat.NewVecDense(rows, nil)

	for pivots := 0; pivots <= pivotLimit; pivots++ {
		for i, idx := range basis {
			mat.Col(col, idx, a)
			bm.SetCol(i, col)
		}
		if err := solveVec(xbVec, bm, bVec); err != nil {
			return nil, nil, false, err
		}
		for i, idx := range basis {
			cb.SetVec(i, c[idx])
		}
		if err := solveVec(piVec, bm.T(), cb); err != nil {
			return nil, nil, false, err
		}

		// Pricing: lowest-index column with a negative reduced cost.
		enter := -1
		for j := 0; j < barFrom && enter < 0; j++ {
			if inBasis[j] {
				continue
			}
			mat.Col(col, j, a)
			if c[j]-floats.Dot(piVec.RawVector().Data, col) < -tol {
				enter = j
			}
		}
		if enter < 0 {
			return copyVec(xbVec), copyVec(piVec), false, nil
		}

		mat.Col(col, enter, a)
		if err := solveVec(dVec, bm, mat.NewVecDense(rows, col)); err != nil {
			return nil, nil, false, err
		}

		// Ratio test; ties break toward the lowest basic column index.
		leave := -1
		best := math.Inf(1)
		for i := 0; i < rows; i++ {
			d := dVec.AtVec(i)
			if d <= ratioTol {
				continue
			}
			r := math.Max(xbVec.AtVec(i), 0) / d
			switch {
			case r < best-ratioTol:
				best, leave = r, i
			case r < best+ratioTol && leave >= 0 && basis[i] < basis[leave]:
				leave = i
			}
		}
		if leave < 0 {
			return nil, nil, true, nil
		}

		inBasis[basis[leave]] = false
		inBasis[enter] = true
		basis[leave] = enter
	}
	return nil, nil, false, ErrPivotLimit
}

// evictArtificials drives artificial variables that finished Phase I basic at
// zero out of the basis, swapping in any admissible column with a non-zero
// pivot on that row. A row whose artificial cannot be replaced is redundant;
// its artificial stays basic at zero and remains barred from pricing.
func (s *Simplex) evictArtificials(a *mat.Dense, basis []int, barFrom int) error {
	rows, width := a.Dims()
	inBasis := make([]bool, width)
	for _, idx := range basis {
		inBasis[idx] = true
	}
	bm := mat.NewDense(rows, rows, nil)
	col := make([]float64, rows)
	dVec := mat.NewVecDense(rows, nil)

	for pos := 0; pos < rows; pos++ {
		if basis[pos] < barFrom {
			continue
		}
		for i, idx := range basis {
			mat.Col(col, idx, a)
			bm.SetCol(i, col)
		}
		for j := 0; j < barFrom; j++ {
			if inBasis[j] {
				continue
			}
			mat.Col(col, j, a)
			if err := solveVec(dVec, bm, mat.NewVecDense(rows, col)); err != nil {
				return err
			}
			if math.Abs(dVec.AtVec(pos)) > ratioTol {
				inBasis[basis[pos]] = false
				inBasis[j] = true
				basis[pos] = j
				break
			}
		}
	}
	return nil
}

// solveVec is dst = a⁻¹·b, tolerating gonum's ill-conditioning warning and
// converting hard factorization failures into ErrSingular.
func solveVec(dst *mat.VecDense, a mat.Matrix, b *mat.VecDense) error {
	if err := dst.SolveVec(a, b); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return ErrSingular
		}
	}
	return nil
}

// copyVec snapshots a reused work vector.
func copyVec(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawVector().Data)
	return out
}

// validate checks shapes, bound ordering and finiteness before any work.
func validate(p Problem) error {
	n := len(p.Cost)
	if n == 0 || len(p.Lower) != n || len(p.Upper) != n {
		return ErrDimensionMismatch
	}
	m := len(p.RHS)
	if p.Constraints == nil {
		if m != 0 {
			return ErrDimensionMismatch
		}
	} else {
		r, c := p.Constraints.Dims()
		if r != m || c != n {
			return ErrDimensionMismatch
		}
		for j := 0; j < r; j++ {
			for i := 0; i < c; i++ {
				if !isFinite(p.Constraints.At(j, i)) {
					return ErrNonFinite
				}
			}
		}
	}
	for _, v := range p.Cost {
		if !isFinite(v) {
			return ErrNonFinite
		}
	}
	for _, v := range p.RHS {
		if !isFinite(v) {
			return ErrNonFinite
		}
	}
	for i := 0; i < n; i++ {
		lo, up := p.Lower[i], p.Upper[i]
		if math.IsNaN(lo) || math.IsNaN(up) {
			return ErrNonFinite
		}
		if math.IsInf(lo, 1) || math.IsInf(up, -1) || lo > up {
			return ErrBadBounds
		}
	}
	return nil
}

// isFinite reports whether v is a regular float64.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
