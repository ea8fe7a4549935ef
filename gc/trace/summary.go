package trace

import "time"

// TraceSummary aggregates statistics from a Tracer and a timer event list.
type TraceSummary struct {
	TotalCycles        int
	CountedCollections int
	TotalCycleTime     time.Duration
	TotalPauseTime     time.Duration
	MaxPauseTime       time.Duration
	PhaseTotals        map[string]time.Duration // phase name → accumulated time across cycles
	VisibleEvents      []TimerEvent             // timer events surviving depth filtering
}

// Summarize computes aggregate statistics from a Tracer. Timer events at
// depth 0 are dropped, matching the downstream event consumer, which
// discards events at the outermost nesting level. Safe for nil tracers.
func Summarize(t *Tracer, events []TimerEvent) *TraceSummary {
	summary := &TraceSummary{
		PhaseTotals:   make(map[string]time.Duration),
		VisibleEvents: make([]TimerEvent, 0),
	}
	if t == nil {
		return summary
	}

	summary.TotalCycles = len(t.Cycles)
	summary.CountedCollections = t.CollectionCount
	for _, c := range t.Cycles {
		if !c.End.IsZero() {
			summary.TotalCycleTime += c.End.Sub(c.Start)
		}
		for name, d := range c.Partitions {
			summary.PhaseTotals[name] += d
		}
	}

	for _, p := range t.Pauses {
		if p.End.IsZero() {
			continue
		}
		d := p.End.Sub(p.Start)
		summary.TotalPauseTime += d
		if d > summary.MaxPauseTime {
			summary.MaxPauseTime = d
		}
	}

	for _, ev := range events {
		if ev.Depth == 0 {
			continue
		}
		summary.VisibleEvents = append(summary.VisibleEvents, ev)
	}

	return summary
}
