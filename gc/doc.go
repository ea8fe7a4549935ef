// Package gc provides the instrumentation and bookkeeping core that
// brackets a concurrent collector's cycles, pauses, nested phases, worker
// identities, and allocation latencies.
//
// # Reading Guide
//
// Start with these three files to understand the scoped brackets:
//   - phaseclock.go: the current-phase register and LIFO PhaseScope guards
//   - session.go: CycleSession, the bracket around one full cycle
//   - pause.go: PauseScope, the bracket around one stop-the-world interval
//
// # Architecture
//
// The gc package defines the scopes and the collaborator hub; pure data
// lives in a sub-package:
//   - gc/trace/: trace configuration flags, cycle/pause records, summary
//
// A Heap ties the collaborators together: phase clock, phase timings,
// cycle timer, tracer, policy, heuristics, and the optional allocation
// latency aggregator. The control thread opens a CycleSession around a
// cycle, PauseScopes around stop-the-world intervals, and PhaseScopes
// around individual stages. Worker threads bind WorkerIdentityScopes;
// mutator threads wrap allocations in AllocationLatencyTraces.
//
// # Concurrency discipline
//
// No operation here blocks, and nothing takes a lock on the phase paths.
// The phase register is moved only by the control thread or a
// concurrent-collector thread; worker ids are slots in per-thread
// ThreadContexts; only the latency aggregator tolerates concurrent
// callers, and it owns its own synchronization. Violating any of these
// conventions is a programming defect and panics with an
// InvariantViolation rather than corrupting timing data.
package gc
