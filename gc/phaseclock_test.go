package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock() *PhaseClock {
	return NewPhaseClock(NewPhaseTimings(NewCycleTimer()))
}

func TestPhaseClock_EnterExit_RestoresParent(t *testing.T) {
	// GIVEN a clock with no active phase
	clock := newTestClock()
	control := NewThreadContext("control", RoleControl)
	require.Equal(t, PhaseNone, clock.Current())

	// WHEN a phase is entered and exited
	scope := clock.Enter(control, PhaseScanRoots)
	assert.Equal(t, PhaseScanRoots, clock.Current())
	scope.Exit()

	// THEN the register reads the pre-enter value again
	assert.Equal(t, PhaseNone, clock.Current())
}

func TestPhaseClock_NestedScopes_StackDiscipline(t *testing.T) {
	// GIVEN an arbitrary nesting sequence
	clock := newTestClock()
	control := NewThreadContext("control", RoleControl)
	nesting := []Phase{PhaseInitMark, PhaseScanRoots, PhaseConcurrentMark, PhaseUpdateRoots}

	// WHEN scopes are opened to full depth
	scopes := make([]*PhaseScope, 0, len(nesting))
	before := make([]Phase, 0, len(nesting))
	for _, p := range nesting {
		before = append(before, clock.Current())
		scopes = append(scopes, clock.Enter(control, p))
		require.Equal(t, p, clock.Current())
	}

	// THEN each exit restores the register value seen immediately before
	// the matching enter
	for i := len(scopes) - 1; i >= 0; i-- {
		scopes[i].Exit()
		assert.Equal(t, before[i], clock.Current(), "after exiting %s", nesting[i])
	}
	assert.Equal(t, PhaseNone, clock.Current())
}

func TestPhaseClock_ConcurrentGCThread_MayDrivePhases(t *testing.T) {
	// GIVEN a thread flagged as a concurrent collector thread
	clock := newTestClock()
	concurrent := NewThreadContext("conc-gc", RoleConcurrentGC)

	// WHEN it enters and exits a phase
	scope := clock.Enter(concurrent, PhaseConcurrentMark)
	scope.Exit()

	// THEN no violation is raised and the register is clean
	assert.Equal(t, PhaseNone, clock.Current())
}

func TestPhaseClock_UnauthorizedThread_Fatal(t *testing.T) {
	clock := newTestClock()

	for _, role := range []ThreadRole{RoleParallelGC, RoleMutator} {
		tc := NewThreadContext("worker", role)
		require.PanicsWithError(t,
			(&InvariantViolation{Op: "phase enter",
				Detail: `thread "worker" (role ` + role.String() + `) may not drive phases`}).Error(),
			func() { clock.Enter(tc, PhaseScanRoots) },
			"role %s must not drive phases", role)
	}
}

func TestPhaseScope_NonLIFOExit_Fatal(t *testing.T) {
	// GIVEN two nested scopes
	clock := newTestClock()
	control := NewThreadContext("control", RoleControl)
	outer := clock.Enter(control, PhaseInitMark)
	_ = clock.Enter(control, PhaseScanRoots)

	// WHEN the outer scope exits while the inner is still active
	// THEN the violation is fatal
	require.Panics(t, func() { outer.Exit() })
}

func TestPhaseClock_Enter_InvalidPhase_Fatal(t *testing.T) {
	clock := newTestClock()
	control := NewThreadContext("control", RoleControl)

	require.Panics(t, func() { clock.Enter(control, PhaseNone) })
	require.Panics(t, func() { clock.Enter(control, Phase(int(numPhases)+3)) })
}
