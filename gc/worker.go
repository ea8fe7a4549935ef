package gc

// WorkerKind distinguishes the two worker-thread populations. Both kinds
// behave identically today; the kind is kept as the hook for future
// per-worker event emission.
type WorkerKind int

const (
	// ConcurrentWorker marks background collector workers that run while
	// mutators continue.
	ConcurrentWorker WorkerKind = iota
	// ParallelWorker marks workers active only inside stop-the-world
	// pauses.
	ParallelWorker
)

// WorkerIdentityScope binds a worker slot id to one thread for the
// duration of that thread's participation in a parallel or concurrent
// task. Bindings are not reentrant.
type WorkerIdentityScope struct {
	tc   *ThreadContext
	id   WorkerID
	kind WorkerKind
}

// BindWorker binds id to the calling thread's context. Binding over an
// existing binding is fatal.
func BindWorker(tc *ThreadContext, id WorkerID, kind WorkerKind) *WorkerIdentityScope {
	if tc.workerID != WorkerUnbound {
		violated("worker bind", "thread %q already bound to worker %d", tc.Name, tc.workerID)
	}
	tc.workerID = id
	return &WorkerIdentityScope{tc: tc, id: id, kind: kind}
}

// Release resets the thread's worker id to the unbound sentinel. The
// binding must still exist. Per-worker trace events are not emitted here
// for either kind yet.
func (w *WorkerIdentityScope) Release() {
	if w.tc.workerID == WorkerUnbound {
		violated("worker release", "thread %q has no bound worker id", w.tc.Name)
	}
	w.tc.workerID = WorkerUnbound
}
