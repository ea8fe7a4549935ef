package gc

import (
	"time"

	"github.com/gcpulse/gcpulse/gc/trace"
)

// PauseScope brackets one stop-the-world sub-interval within a cycle. A
// cycle may contain zero or more pauses, strictly sequential, each opened
// inside an active CycleSession.
type PauseScope struct {
	heap     *Heap
	name     string
	traceCfg trace.Config
}

// BeginPause opens a pause bracket named name. It registers a synthetic
// top-level phase event with the timer: the downstream event consumer
// discards events at the outermost nesting level, so the dummy outer
// event pushes the real phase events one level deeper.
func BeginPause(h *Heap, name string) *PauseScope {
	if h.Cause() == CauseNone {
		violated("pause begin", "no active cycle session")
	}

	now := time.Now()
	h.timer.RegisterPhaseStart(name, now)

	cfg := trace.PauseConfig(h.Cause().String())
	h.tracer.ReportPauseStart(name, cfg, now)
	h.tracer.UpdatePeak(h.Usage())

	h.heuristics.RecordPauseStart()

	return &PauseScope{heap: h, name: name, traceCfg: cfg}
}

// End closes the synthetic phase event with the current timestamp and
// notifies heuristics that the pause ended.
func (p *PauseScope) End() {
	now := time.Now()
	p.heap.timer.RegisterPhaseEnd(now)
	p.heap.tracer.ReportPauseEnd(now)
	p.heap.heuristics.RecordPauseEnd()
}
