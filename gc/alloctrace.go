package gc

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// AllocType classifies an allocation request.
type AllocType int

const (
	AllocShared AllocType = iota
	AllocSharedGC
	AllocTLAB
	AllocGCLAB
	numAllocTypes
)

var allocTypeNames = map[AllocType]string{
	AllocShared:   "shared",
	AllocSharedGC: "shared-gc",
	AllocTLAB:     "tlab",
	AllocGCLAB:    "gclab",
}

func (t AllocType) String() string {
	if name, ok := allocTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// LatencyAggregator receives one latency measurement per sampled
// allocation request. Implementations must tolerate concurrent calls:
// every mutator thread finishes its own traces with no ordering relative
// to others.
type LatencyAggregator interface {
	RecordLatency(words uint64, allocType AllocType, micros float64)
}

// LatencyStats is the aggregate for one allocation type.
type LatencyStats struct {
	Count       int
	TotalWords  uint64
	TotalMicros float64
	MaxMicros   float64
}

// StallTracker is the default LatencyAggregator: per-type aggregates
// behind a mutex.
type StallTracker struct {
	mu    sync.Mutex
	stats [numAllocTypes]LatencyStats
}

// NewStallTracker creates an empty tracker.
func NewStallTracker() *StallTracker {
	return &StallTracker{}
}

// RecordLatency folds one measurement into the per-type aggregate.
func (st *StallTracker) RecordLatency(words uint64, allocType AllocType, micros float64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := &st.stats[allocType]
	s.Count++
	s.TotalWords += words
	s.TotalMicros += micros
	if micros > s.MaxMicros {
		s.MaxMicros = micros
	}
}

// Stats returns a copy of the aggregate for allocType.
func (st *StallTracker) Stats(allocType AllocType) LatencyStats {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stats[allocType]
}

// AllocationLatencyTrace measures the wall-clock latency of one
// allocation request. When sampling is disabled the trace is inert: no
// clock is read on construction and Finish does nothing, keeping the
// default allocation path free of instrumentation cost.
type AllocationLatencyTrace struct {
	heap      *Heap
	sampled   bool
	start     time.Time
	words     uint64
	allocType AllocType
}

// exceedsStallThreshold reports whether a measured latency warrants the
// stall warning. Strictly greater: a latency exactly at the threshold is
// quiet.
func exceedsStallThreshold(micros, thresholdUs float64) bool {
	return micros > thresholdUs
}

// StartAllocTrace begins measuring one allocation request of the given
// word count and type.
func StartAllocTrace(h *Heap, words uint64, allocType AllocType) AllocationLatencyTrace {
	if !h.sampleAllocs {
		return AllocationLatencyTrace{heap: h}
	}
	return AllocationLatencyTrace{
		heap:      h,
		sampled:   true,
		start:     time.Now(),
		words:     words,
		allocType: allocType,
	}
}

// Finish ends the measurement, hands it to the heap's latency aggregator,
// and warns when the latency exceeds the configured stall threshold. It
// returns the measured latency in microseconds; zero when sampling was
// disabled at start. The warning is observational only and never delays
// the allocation it measures.
func (t AllocationLatencyTrace) Finish() float64 {
	if !t.sampled {
		return 0
	}
	micros := time.Since(t.start).Seconds() * 1e6
	tracker := t.heap.AllocTracker()
	if tracker == nil {
		violated("alloc trace", "sampling enabled but no latency aggregator installed")
	}
	tracker.RecordLatency(t.words, t.allocType, micros)
	if exceedsStallThreshold(micros, t.heap.stallThresholdUs) {
		logrus.Warnf("Allocation stall: %.0f us (threshold: %.0f us)", micros, t.heap.stallThresholdUs)
	}
	return micros
}
