package gc

import (
	"time"

	"github.com/gcpulse/gcpulse/gc/trace"
)

// CycleSession brackets exactly one full collector cycle. Open it on the
// control thread around the whole cycle; every phase opened inside it
// must be closed before End runs, which End enforces fatally.
type CycleSession struct {
	heap     *Heap
	traceCfg trace.Config
}

// BeginCycle opens a cycle session for cause. A cycle must start with a
// clean phase register; anything else is fatal.
func BeginCycle(h *Heap, cause CollectionCause) *CycleSession {
	if h.clock.Current().IsValid() {
		violated("cycle begin", "phase %s still active", h.clock.Current())
	}

	h.SetCause(cause)
	h.timings.Reset()
	h.timer.RegisterCycleStart()
	h.tracer.ReportCycleStart(cause.String(), h.timer.CycleStart())
	h.SnapshotBeforeGC()

	h.policy.RecordCycleStart(cause)
	h.heuristics.RecordCycleStart()

	return &CycleSession{
		heap:     h,
		traceCfg: trace.CycleConfig(cause.String()),
	}
}

// End closes the session: heuristics first, then the tracer with the
// accumulated phase partitions, then the timer. The phase register must
// read clean again, and the collection cause resets to CauseNone.
func (s *CycleSession) End() {
	h := s.heap
	h.heuristics.RecordCycleEnd()

	end := time.Now()
	h.tracer.ReportCycleEnd(s.traceCfg, end, h.timings.Partitions(), h.Usage())
	h.timer.RegisterCycleEnd(end)

	if h.clock.Current().IsValid() {
		violated("cycle end", "phase %s still active", h.clock.Current())
	}
	h.SetCause(CauseNone)
}
