package gc

import (
	"runtime"

	"github.com/gcpulse/gcpulse/gc/trace"
)

// Config groups heap construction parameters.
type Config struct {
	SampleAllocs     bool              // enable per-allocation latency sampling
	StallThresholdUs float64           // latency above this emits a stall warning
	Usage            func() trace.Usage // heap occupancy probe (default: runtime.MemStats)
	Heuristics       Heuristics        // adaptive heuristics (default: NewAdaptiveHeuristics)
	AllocTracker     LatencyAggregator // latency aggregator; required when SampleAllocs is set
}

// Heap is the hub the scoped brackets hang off: it owns the phase clock,
// the current collection cause, and the timer/tracer/timings/heuristics
// collaborators. The cause and the phase register are mutated only by the
// single control thread; the latency aggregator is the one collaborator
// that must tolerate concurrent callers.
type Heap struct {
	clock      *PhaseClock
	timings    *PhaseTimings
	timer      *CycleTimer
	tracer     *trace.Tracer
	policy     *CollectorPolicy
	heuristics Heuristics
	alloc      LatencyAggregator

	cause            CollectionCause
	sampleAllocs     bool
	stallThresholdUs float64
	usage            func() trace.Usage
}

// NewHeap wires a heap and its collaborators from cfg.
func NewHeap(cfg Config) *Heap {
	timer := NewCycleTimer()
	timings := NewPhaseTimings(timer)
	h := &Heap{
		clock:            NewPhaseClock(timings),
		timings:          timings,
		timer:            timer,
		tracer:           trace.NewTracer(),
		policy:           NewCollectorPolicy(),
		heuristics:       cfg.Heuristics,
		alloc:            cfg.AllocTracker,
		cause:            CauseNone,
		sampleAllocs:     cfg.SampleAllocs,
		stallThresholdUs: cfg.StallThresholdUs,
		usage:            cfg.Usage,
	}
	if h.heuristics == nil {
		h.heuristics = NewAdaptiveHeuristics()
	}
	if h.usage == nil {
		h.usage = runtimeUsage
	}
	return h
}

// runtimeUsage is the default occupancy probe, backed by the Go runtime's
// own heap statistics.
func runtimeUsage() trace.Usage {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return trace.Usage{UsedBytes: ms.HeapAlloc, CommittedBytes: ms.HeapSys}
}

// Clock returns the phase register.
func (h *Heap) Clock() *PhaseClock { return h.clock }

// Timings returns the phase-timing recorder.
func (h *Heap) Timings() *PhaseTimings { return h.timings }

// Timer returns the cycle timer.
func (h *Heap) Timer() *CycleTimer { return h.timer }

// Tracer returns the cycle/pause tracer.
func (h *Heap) Tracer() *trace.Tracer { return h.tracer }

// Policy returns the collector policy.
func (h *Heap) Policy() *CollectorPolicy { return h.policy }

// Heuristics returns the adaptive heuristics collaborator.
func (h *Heap) Heuristics() Heuristics { return h.heuristics }

// AllocTracker returns the latency aggregator, or nil when none is
// installed.
func (h *Heap) AllocTracker() LatencyAggregator { return h.alloc }

// Cause returns the current collection cause; CauseNone outside a cycle.
func (h *Heap) Cause() CollectionCause { return h.cause }

// SetCause records why the current cycle runs. Control thread only.
func (h *Heap) SetCause(cause CollectionCause) { h.cause = cause }

// SamplingEnabled reports whether allocation latency sampling is on.
func (h *Heap) SamplingEnabled() bool { return h.sampleAllocs }

// Usage returns a point-in-time occupancy snapshot from the probe.
func (h *Heap) Usage() trace.Usage { return h.usage() }

// SnapshotBeforeGC feeds a pre-cycle occupancy snapshot to the tracer.
func (h *Heap) SnapshotBeforeGC() {
	h.tracer.SnapshotBeforeGC(h.usage())
}
