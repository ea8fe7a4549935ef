package gc

import "time"

// Heuristics is the collaborator deciding cycle timing/sizing policy. The
// core only feeds it start/end notifications; the decision logic lives
// elsewhere.
type Heuristics interface {
	RecordCycleStart()
	RecordCycleEnd()
	RecordPauseStart()
	RecordPauseEnd()
}

// AdaptiveHeuristics is the default Heuristics: it keeps the adaptive
// counters cycle and pause brackets feed. Counters for the current cycle
// reset on cycle start.
type AdaptiveHeuristics struct {
	cycleCount int
	pauseCount int

	cycleStart time.Time
	pauseStart time.Time

	lastCycleTime  time.Duration
	lastPauseTime  time.Duration
	totalCycleTime time.Duration
	totalPauseTime time.Duration

	// pausesThisCycle resets each cycle start; heuristics use it to tell
	// fully concurrent cycles from degenerate ones.
	pausesThisCycle int
}

// NewAdaptiveHeuristics creates heuristics with zeroed counters.
func NewAdaptiveHeuristics() *AdaptiveHeuristics {
	return &AdaptiveHeuristics{}
}

func (h *AdaptiveHeuristics) RecordCycleStart() {
	h.cycleCount++
	h.pausesThisCycle = 0
	h.cycleStart = time.Now()
}

func (h *AdaptiveHeuristics) RecordCycleEnd() {
	h.lastCycleTime = time.Since(h.cycleStart)
	h.totalCycleTime += h.lastCycleTime
}

func (h *AdaptiveHeuristics) RecordPauseStart() {
	h.pauseCount++
	h.pausesThisCycle++
	h.pauseStart = time.Now()
}

func (h *AdaptiveHeuristics) RecordPauseEnd() {
	h.lastPauseTime = time.Since(h.pauseStart)
	h.totalPauseTime += h.lastPauseTime
}

// CycleCount returns how many cycles have started.
func (h *AdaptiveHeuristics) CycleCount() int { return h.cycleCount }

// PauseCount returns how many pauses have started.
func (h *AdaptiveHeuristics) PauseCount() int { return h.pauseCount }

// PausesThisCycle returns how many pauses the current cycle has opened.
func (h *AdaptiveHeuristics) PausesThisCycle() int { return h.pausesThisCycle }

// LastCycleTime returns the duration of the most recently ended cycle.
func (h *AdaptiveHeuristics) LastCycleTime() time.Duration { return h.lastCycleTime }

// LastPauseTime returns the duration of the most recently ended pause.
func (h *AdaptiveHeuristics) LastPauseTime() time.Duration { return h.lastPauseTime }

// AverageCycleTime returns mean cycle duration across ended cycles.
func (h *AdaptiveHeuristics) AverageCycleTime() time.Duration {
	if h.cycleCount == 0 {
		return 0
	}
	return h.totalCycleTime / time.Duration(h.cycleCount)
}

// AveragePauseTime returns mean pause duration across ended pauses.
func (h *AdaptiveHeuristics) AveragePauseTime() time.Duration {
	if h.pauseCount == 0 {
		return 0
	}
	return h.totalPauseTime / time.Duration(h.pauseCount)
}

// CollectorPolicy tallies started cycles per cause. Cycle sessions notify
// it at construction so policy counters stay consistent with the tracer.
type CollectorPolicy struct {
	cyclesByCause map[CollectionCause]int
}

// NewCollectorPolicy creates a policy with empty counters.
func NewCollectorPolicy() *CollectorPolicy {
	return &CollectorPolicy{cyclesByCause: make(map[CollectionCause]int)}
}

// RecordCycleStart counts a cycle started for cause.
func (p *CollectorPolicy) RecordCycleStart(cause CollectionCause) {
	p.cyclesByCause[cause]++
}

// CycleCount returns how many cycles started for cause.
func (p *CollectorPolicy) CycleCount(cause CollectionCause) int {
	return p.cyclesByCause[cause]
}
