package gc

// ThreadRole classifies a thread's part in the collector's scheduling
// model. The role gates which operations a thread may perform: only the
// control thread or a concurrent-collector thread may move the phase
// register.
type ThreadRole int

const (
	// RoleControl is the single driving thread that sequences cycle,
	// pause, and phase boundaries.
	RoleControl ThreadRole = iota
	// RoleConcurrentGC marks a background collector thread that runs
	// while mutators continue.
	RoleConcurrentGC
	// RoleParallelGC marks a worker active only inside stop-the-world
	// pauses.
	RoleParallelGC
	// RoleMutator marks an application thread performing allocations.
	RoleMutator
)

var roleNames = map[ThreadRole]string{
	RoleControl:      "control",
	RoleConcurrentGC: "concurrent-gc",
	RoleParallelGC:   "parallel-gc",
	RoleMutator:      "mutator",
}

func (r ThreadRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// WorkerID identifies a worker's slot within a thread pool.
type WorkerID int

// WorkerUnbound is the sentinel for a thread with no bound worker slot.
const WorkerUnbound WorkerID = -1

// ThreadContext is the per-thread execution context passed explicitly to
// entry points. It carries the thread's role and its worker-id slot; the
// slot is owned by the thread it belongs to, so no synchronization guards
// it.
type ThreadContext struct {
	Name string
	Role ThreadRole

	workerID WorkerID
}

// NewThreadContext creates a context for a thread with the given role.
// The worker slot starts unbound.
func NewThreadContext(name string, role ThreadRole) *ThreadContext {
	return &ThreadContext{Name: name, Role: role, workerID: WorkerUnbound}
}

// WorkerID returns the thread's currently bound worker id, or
// WorkerUnbound.
func (tc *ThreadContext) WorkerID() WorkerID {
	return tc.workerID
}

// canDrivePhases reports whether this thread is allowed to move the phase
// register.
func (tc *ThreadContext) canDrivePhases() bool {
	return tc.Role == RoleControl || tc.Role == RoleConcurrentGC
}
