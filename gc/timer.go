package gc

import (
	"time"

	"github.com/gcpulse/gcpulse/gc/trace"
)

// CycleTimer records cycle start/end times and a depth-tracked list of
// named phase events. Driven only by the control thread; it owns no
// synchronization.
type CycleTimer struct {
	cycleStart time.Time
	cycleEnd   time.Time

	events []trace.TimerEvent
	open   []int // indexes into events of the currently open ones
}

// NewCycleTimer creates an idle timer.
func NewCycleTimer() *CycleTimer {
	return &CycleTimer{
		events: make([]trace.TimerEvent, 0),
		open:   make([]int, 0),
	}
}

// RegisterCycleStart stamps the start of a new cycle.
func (t *CycleTimer) RegisterCycleStart() {
	t.cycleStart = time.Now()
	t.cycleEnd = time.Time{}
}

// RegisterCycleEnd stamps the end of the current cycle.
func (t *CycleTimer) RegisterCycleEnd(at time.Time) {
	t.cycleEnd = at
}

// CycleStart returns the timestamp of the most recent cycle start.
func (t *CycleTimer) CycleStart() time.Time {
	return t.cycleStart
}

// CycleEnd returns the timestamp of the most recent cycle end.
func (t *CycleTimer) CycleEnd() time.Time {
	return t.cycleEnd
}

// RegisterPhaseStart opens a named phase event at the current nesting
// depth. Events opened while another event is open nest one level deeper.
func (t *CycleTimer) RegisterPhaseStart(name string, at time.Time) {
	t.events = append(t.events, trace.TimerEvent{
		Name:  name,
		Depth: len(t.open),
		Start: at,
	})
	t.open = append(t.open, len(t.events)-1)
}

// RegisterPhaseEnd closes the most recently opened phase event.
func (t *CycleTimer) RegisterPhaseEnd(at time.Time) {
	if len(t.open) == 0 {
		violated("timer phase end", "no open phase event")
	}
	idx := t.open[len(t.open)-1]
	t.open = t.open[:len(t.open)-1]
	t.events[idx].End = at
}

// Events returns all phase events registered so far, in open order.
func (t *CycleTimer) Events() []trace.TimerEvent {
	return t.events
}
