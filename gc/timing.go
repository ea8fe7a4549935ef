package gc

import "time"

// PhaseTimings accumulates per-phase wall-clock durations over one cycle.
// Phase start/end pairs arrive from PhaseScope via the clock; the
// accumulated partitions feed the tracer at cycle end. Each recorded
// phase is also registered as a named event with the cycle timer, so the
// timer's depth bookkeeping sees the same nesting the clock does.
type PhaseTimings struct {
	timer *CycleTimer

	starts [numPhases]time.Time
	totals [numPhases]time.Duration
	counts [numPhases]int
}

// NewPhaseTimings creates a recorder feeding named events to timer.
func NewPhaseTimings(timer *CycleTimer) *PhaseTimings {
	return &PhaseTimings{timer: timer}
}

// RecordPhaseStart marks phase as started now.
func (pt *PhaseTimings) RecordPhaseStart(phase Phase) {
	now := time.Now()
	pt.starts[phase] = now
	pt.timer.RegisterPhaseStart(phase.String(), now)
}

// RecordPhaseEnd marks phase as ended now and accumulates its duration.
func (pt *PhaseTimings) RecordPhaseEnd(phase Phase) {
	now := time.Now()
	pt.totals[phase] += now.Sub(pt.starts[phase])
	pt.counts[phase]++
	pt.timer.RegisterPhaseEnd(now)
}

// Partitions returns accumulated time per phase name for every phase that
// ran at least once since the last Reset.
func (pt *PhaseTimings) Partitions() map[string]time.Duration {
	parts := make(map[string]time.Duration)
	for p := Phase(0); p < numPhases; p++ {
		if pt.counts[p] > 0 {
			parts[p.String()] = pt.totals[p]
		}
	}
	return parts
}

// Count returns how many times phase ran since the last Reset.
func (pt *PhaseTimings) Count(phase Phase) int {
	return pt.counts[phase]
}

// Reset clears all accumulated partitions. Called at cycle start so each
// cycle reports its own partitions.
func (pt *PhaseTimings) Reset() {
	for p := Phase(0); p < numPhases; p++ {
		pt.starts[p] = time.Time{}
		pt.totals[p] = 0
		pt.counts[p] = 0
	}
}
