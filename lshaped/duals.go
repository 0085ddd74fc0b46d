package lshaped

import "math"

// CanonicalDuals compresses a raw dual vector of length
// numConstraints + 2·len(y) into the canonical layout
// [constraint duals | one upper-bound dual per recourse variable] of length
// numConstraints + len(y).
//
// Raw vectors carry the constraint duals first, followed by bound entries
// whose arrangement varies between oracles. For every variable y[i] resting
// on its upper bound (within eps), the tail beyond the constraint block is
// scanned left to right for the first entry of magnitude above eps; that
// magnitude is recorded as a negative dual in slot numConstraints+i and the
// tail entry is consumed so it cannot serve a second variable. Variables
// away from their bound, or at a degenerate bound with no surviving tail
// entry, keep a zero slot.
//
// The matching is positional, not identity-keyed, which is exactly as strong
// as the raw layouts it consumes: with at most one variable at a bound it is
// exact, and with several it relies on the oracle emitting bound entries in
// variable order. The input slice is never modified.
func CanonicalDuals(raw, y, upper []float64, numConstraints int, eps float64) []float64 {
	p := len(y)
	out := make([]float64, numConstraints+p)
	copy(out, raw[:min(numConstraints, len(raw))])

	var tail []float64
	if len(raw) > numConstraints {
		tail = append(tail, raw[numConstraints:]...)
	}
	for i := 0; i < p; i++ {
		if math.Abs(y[i]-upper[i]) >= eps {
			continue
		}
		for j := range tail {
			if math.Abs(tail[j]) > eps {
				out[numConstraints+i] = -math.Abs(tail[j])
				tail[j] = 0
				break
			}
		}
	}
	return out
}
