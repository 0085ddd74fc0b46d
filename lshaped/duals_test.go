package lshaped_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slp/lshaped"
)

const eps = 1e-6

// TestCanonicalDuals_UpperBoundRecovery replays a solver dual vector whose
// bound block carries one live magnitude: variable 1 rests on its upper
// bound, so the first non-zero tail entry becomes its negative dual.
func TestCanonicalDuals_UpperBoundRecovery(t *testing.T) {
	raw := []float64{-3.2, 0.0, 0, 8.8, 0, 0}
	got := lshaped.CanonicalDuals(raw, []float64{300, 60}, []float64{300, 300}, 2, eps)
	assert.Equal(t, []float64{-3.2, 0, -8.8, 0}, got)
}

// TestCanonicalDuals_Shape: the output length is always
// numConstraints + len(y), whatever the raw layout held.
func TestCanonicalDuals_Shape(t *testing.T) {
	tests := []struct {
		name  string
		raw   []float64
		y, up []float64
		rows  int
	}{
		{"no bounds binding", []float64{-1, -2, 0, 0, 0, 0}, []float64{1, 2}, []float64{9, 9}, 2},
		{"raw shorter than canonical", []float64{-1}, []float64{1, 2, 3}, []float64{9, 9, 9}, 4},
		{"single variable", []float64{0, 0, 5}, []float64{7}, []float64{7}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lshaped.CanonicalDuals(tc.raw, tc.y, tc.up, tc.rows, eps)
			assert.Len(t, got, tc.rows+len(tc.y))
		})
	}
}

// TestCanonicalDuals_AwayFromBound: a variable below its upper bound keeps a
// zero slot even when the tail holds live magnitudes.
func TestCanonicalDuals_AwayFromBound(t *testing.T) {
	raw := []float64{-2.32, -1.76, 0, 0, 0, 0}
	got := lshaped.CanonicalDuals(raw, []float64{80, 192}, []float64{300, 300}, 2, eps)
	assert.Equal(t, []float64{-2.32, -1.76, 0, 0}, got)
}

// TestCanonicalDuals_ConsumedOnce: with two variables at their bounds the
// tail entries are claimed left to right, one per variable.
func TestCanonicalDuals_ConsumedOnce(t *testing.T) {
	raw := []float64{-1, 0, 0, 4, 5, 0}
	got := lshaped.CanonicalDuals(raw, []float64{10, 20}, []float64{10, 20}, 2, eps)
	assert.Equal(t, []float64{-1, 0, -4, -5}, got)
}

// TestCanonicalDuals_DegenerateBound: at a binding bound with an exhausted
// tail the slot stays zero rather than borrowing a consumed entry.
func TestCanonicalDuals_DegenerateBound(t *testing.T) {
	raw := []float64{-1, 0, 0, 4, 0, 0}
	got := lshaped.CanonicalDuals(raw, []float64{10, 20}, []float64{10, 20}, 2, eps)
	assert.Equal(t, []float64{-1, 0, -4, 0}, got)
}

// TestCanonicalDuals_InputUntouched: the caller's raw vector must survive
// canonicalization bit for bit.
func TestCanonicalDuals_InputUntouched(t *testing.T) {
	raw := []float64{-3.2, 0.0, 0, 8.8, 0, 0}
	orig := append([]float64(nil), raw...)
	_ = lshaped.CanonicalDuals(raw, []float64{300, 60}, []float64{300, 300}, 2, eps)
	require.Equal(t, orig, raw)
}
