package gc

// PhaseClock is the process-wide register holding the currently active
// phase. It is an owned value inside the heap, never package-global, and
// it is moved only through PhaseScope enter/exit pairs issued by the
// control thread or a concurrent-collector thread. Nesting is implicit:
// each scope remembers the value it overwrote and restores it on exit, so
// the register reflects the innermost active phase at every instant.
type PhaseClock struct {
	current Phase
	timings *PhaseTimings
}

// NewPhaseClock creates a clock with no active phase, reporting phase
// boundaries to timings.
func NewPhaseClock(timings *PhaseTimings) *PhaseClock {
	return &PhaseClock{current: PhaseNone, timings: timings}
}

// Current returns the innermost active phase, or PhaseNone.
func (c *PhaseClock) Current() Phase {
	return c.current
}

// IsRootWorkPhase reports whether the current phase is one of the fixed
// subset that performs root-set work.
func (c *PhaseClock) IsRootWorkPhase() bool {
	return rootWorkPhases[c.current]
}

// PhaseScope brackets one entered phase. Exit must be called on every
// path out of the bracket, in LIFO order with respect to other scopes.
type PhaseScope struct {
	clock  *PhaseClock
	phase  Phase
	parent Phase
}

// Enter records phase as current, remembering the overwritten parent, and
// notifies the phase-timing recorder. Only the control thread or a
// concurrent-collector thread may enter phases; any other caller is a
// programming defect and dies with an invariant violation.
func (c *PhaseClock) Enter(tc *ThreadContext, phase Phase) *PhaseScope {
	if !tc.canDrivePhases() {
		violated("phase enter", "thread %q (role %s) may not drive phases", tc.Name, tc.Role)
	}
	if !phase.IsValid() {
		violated("phase enter", "phase %d out of range", int(phase))
	}
	scope := &PhaseScope{clock: c, phase: phase, parent: c.current}
	c.current = phase
	c.timings.RecordPhaseStart(phase)
	return scope
}

// Exit notifies the recorder that the phase ended and restores the parent
// value. A scope exited while it is not the innermost active phase means
// enter/exit pairs were not issued LIFO; that is fatal.
func (s *PhaseScope) Exit() {
	if s.clock.current != s.phase {
		violated("phase exit", "exiting %s but current phase is %s (non-LIFO close)",
			s.phase, s.clock.current)
	}
	s.clock.timings.RecordPhaseEnd(s.phase)
	s.clock.current = s.parent
}
