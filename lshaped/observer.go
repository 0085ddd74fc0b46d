package lshaped

import (
	"fmt"
	"io"
	"strings"
)

// Observer receives structured per-iteration events from the decomposition
// loop. Callbacks run on the loop goroutine, in deterministic order
// (scenarios by index), regardless of Options.Workers.
type Observer interface {
	OnMaster(iteration int, master MasterResult)
	OnScenario(iteration int, cut ScenarioCut)
	OnAggregate(iteration int, agg Aggregate, gap float64)
	OnCut(iteration int, cut Cut)
	OnStop(iteration int, reason StopReason)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) OnMaster(int, MasterResult)          {}
func (NopObserver) OnScenario(int, ScenarioCut)         {}
func (NopObserver) OnAggregate(int, Aggregate, float64) {}
func (NopObserver) OnCut(int, Cut)                      {}
func (NopObserver) OnStop(int, StopReason)              {}

// TraceWriter renders a verbose iteration trace to W, one block per
// iteration: the master decision, each scenario's dual breakdown and cut
// contribution, the combined cut, and the stop decision.
type TraceWriter struct {
	W io.Writer
}

func (t TraceWriter) OnMaster(iteration int, m MasterResult) {
	fmt.Fprintf(t.W, "iteration %d: master x=%s theta=%.6g objective=%.6g\n",
		iteration, fmtVec(m.X), m.Theta, m.Objective)
}

func (t TraceWriter) OnScenario(iteration int, sc ScenarioCut) {
	fmt.Fprintf(t.W, "  scenario %d (p=%.4g): objective=%.6g y=%s pi=%s e=%.6g E=%s w=%.6g\n",
		sc.Scenario, sc.Probability, sc.Objective, fmtVec(sc.Y), fmtVec(sc.Duals),
		sc.Rhs, fmtVec(sc.E), sc.W)
}

func (t TraceWriter) OnAggregate(iteration int, agg Aggregate, gap float64) {
	fmt.Fprintf(t.W, "  combined: e=%.6g E=%s w=%.6g recourse=%.6g gap=%.6g\n",
		agg.Rhs, fmtVec(agg.E), agg.W, agg.Objective, gap)
}

func (t TraceWriter) OnCut(iteration int, c Cut) {
	fmt.Fprintf(t.W, "  add cut: %s·x + theta >= %.6g\n", fmtVec(c.E), c.Rhs)
}

func (t TraceWriter) OnStop(iteration int, reason StopReason) {
	fmt.Fprintf(t.W, "stop at iteration %d: %s\n", iteration, reason)
}

// fmtVec renders a vector compactly: [40 20].
func fmtVec(v []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.6g", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
