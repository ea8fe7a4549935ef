// Package trace provides cycle/pause trace recording for collector analysis.
// This package has no dependencies on gc/ — it stores pure data types.
package trace

import "time"

// Usage is a point-in-time heap occupancy snapshot.
type Usage struct {
	UsedBytes      uint64
	CommittedBytes uint64
}

// CycleRecord captures one full collector cycle, from cause assertion to
// cause reset.
type CycleRecord struct {
	ID         string // unique cycle identifier, assigned at report time
	Cause      string
	Start      time.Time
	End        time.Time
	PreUsage   Usage // heap occupancy before the cycle did any work
	PeakUsage  Usage // highest occupancy observed while the cycle ran
	PostUsage  Usage // occupancy after the cycle finished
	HasUsage   bool  // false when the bracket's config skipped usage snapshots
	Partitions map[string]time.Duration
	Counted    bool // whether this cycle counted as a collection event
}

// PauseRecord captures one stop-the-world sub-interval within a cycle.
type PauseRecord struct {
	Name  string
	Cause string
	Start time.Time
	End   time.Time
}

// TimerEvent is one named phase interval registered with the cycle timer,
// annotated with its nesting depth at registration time.
type TimerEvent struct {
	Name  string
	Depth int
	Start time.Time
	End   time.Time
}
