package trace

import (
	"testing"
	"time"
)

func TestSummarize_NilTracer_ZeroValues(t *testing.T) {
	summary := Summarize(nil, nil)

	if summary.TotalCycles != 0 || summary.TotalPauseTime != 0 {
		t.Error("nil tracer must summarize to zero values")
	}
	if summary.PhaseTotals == nil || summary.VisibleEvents == nil {
		t.Error("maps and slices must be allocated even for nil input")
	}
}

func TestSummarize_DropsOutermostTimerEvents(t *testing.T) {
	// GIVEN timer events at mixed depths
	now := time.Now()
	events := []TimerEvent{
		{Name: "init-mark-pause", Depth: 0, Start: now, End: now.Add(time.Millisecond)},
		{Name: "scan-roots", Depth: 1, Start: now, End: now.Add(time.Millisecond)},
		{Name: "nested-detail", Depth: 2, Start: now, End: now.Add(time.Millisecond)},
	}

	// WHEN summarized
	summary := Summarize(NewTracer(), events)

	// THEN depth-0 events are discarded, matching the downstream consumer
	if len(summary.VisibleEvents) != 2 {
		t.Fatalf("expected 2 visible events, got %d", len(summary.VisibleEvents))
	}
	for _, ev := range summary.VisibleEvents {
		if ev.Depth == 0 {
			t.Errorf("depth-0 event %q survived filtering", ev.Name)
		}
	}
}

func TestSummarize_AggregatesCyclesAndPauses(t *testing.T) {
	// GIVEN a tracer with two cycles and two pauses of known durations
	tr := NewTracer()
	base := time.Now()

	tr.ReportCycleStart("explicit", base)
	tr.ReportPauseStart("p1", PauseConfig("explicit"), base)
	tr.ReportPauseEnd(base.Add(2 * time.Millisecond))
	tr.ReportCycleEnd(CycleConfig("explicit"), base.Add(10*time.Millisecond),
		map[string]time.Duration{"scan-roots": 3 * time.Millisecond}, Usage{})

	tr.ReportCycleStart("concurrent-trigger", base.Add(20*time.Millisecond))
	tr.ReportPauseStart("p2", PauseConfig("concurrent-trigger"), base.Add(20*time.Millisecond))
	tr.ReportPauseEnd(base.Add(25 * time.Millisecond))
	tr.ReportCycleEnd(CycleConfig("concurrent-trigger"), base.Add(30*time.Millisecond),
		map[string]time.Duration{"scan-roots": time.Millisecond}, Usage{})

	// WHEN summarized
	summary := Summarize(tr, nil)

	// THEN totals and maxima line up
	if summary.TotalCycles != 2 || summary.CountedCollections != 2 {
		t.Errorf("cycles: got %d/%d, want 2/2", summary.TotalCycles, summary.CountedCollections)
	}
	if summary.TotalCycleTime != 20*time.Millisecond {
		t.Errorf("total cycle time: got %v, want 20ms", summary.TotalCycleTime)
	}
	if summary.TotalPauseTime != 7*time.Millisecond {
		t.Errorf("total pause time: got %v, want 7ms", summary.TotalPauseTime)
	}
	if summary.MaxPauseTime != 5*time.Millisecond {
		t.Errorf("max pause time: got %v, want 5ms", summary.MaxPauseTime)
	}
	if summary.PhaseTotals["scan-roots"] != 4*time.Millisecond {
		t.Errorf("phase total: got %v, want 4ms", summary.PhaseTotals["scan-roots"])
	}
}
