package trace

import (
	"time"

	"github.com/google/uuid"
)

// Config captures, once per bracket, which measurements the tracer should
// take for that bracket. It is built at bracket entry, consumed at entry,
// read again at exit, and discarded with the bracket.
type Config struct {
	Pause                  bool // true for pause brackets, false for cycle brackets
	Cause                  string
	AllMemoryPoolsAffected bool
	RecordBeginTime        bool
	RecordPreUsage         bool
	RecordPeakUsage        bool
	RecordPostUsage        bool
	RecordAccumulatedTime  bool
	RecordEndTime          bool
	CountCollection        bool
}

// CycleConfig is the canonical configuration for a full-cycle bracket:
// everything is captured, including pre/peak/post usage.
func CycleConfig(cause string) Config {
	return Config{
		Pause:                  false,
		Cause:                  cause,
		AllMemoryPoolsAffected: true,
		RecordBeginTime:        true,
		RecordPreUsage:         true,
		RecordPeakUsage:        true,
		RecordPostUsage:        true,
		RecordAccumulatedTime:  true,
		RecordEndTime:          true,
		CountCollection:        true,
	}
}

// PauseConfig is the canonical configuration for a pause bracket: timing
// and counting are kept, usage snapshots are omitted.
func PauseConfig(cause string) Config {
	return Config{
		Pause:                  true,
		Cause:                  cause,
		AllMemoryPoolsAffected: true,
		RecordBeginTime:        true,
		RecordPreUsage:         false,
		RecordPeakUsage:        false,
		RecordPostUsage:        false,
		RecordAccumulatedTime:  true,
		RecordEndTime:          true,
		CountCollection:        true,
	}
}

// Tracer collects cycle and pause records while the collector runs. It is
// driven by the single control thread; it owns no synchronization.
type Tracer struct {
	Cycles []CycleRecord
	Pauses []PauseRecord

	// CollectionCount tallies cycles whose config asked to be counted.
	CollectionCount int
}

// NewTracer creates a Tracer ready for recording.
func NewTracer() *Tracer {
	return &Tracer{
		Cycles: make([]CycleRecord, 0),
		Pauses: make([]PauseRecord, 0),
	}
}

// currentCycle returns the open cycle record, or nil when no cycle is open.
func (t *Tracer) currentCycle() *CycleRecord {
	if len(t.Cycles) == 0 {
		return nil
	}
	cur := &t.Cycles[len(t.Cycles)-1]
	if !cur.End.IsZero() {
		return nil
	}
	return cur
}

// ReportCycleStart opens a new cycle record with a fresh identifier.
func (t *Tracer) ReportCycleStart(cause string, start time.Time) {
	t.Cycles = append(t.Cycles, CycleRecord{
		ID:         uuid.NewString(),
		Cause:      cause,
		Start:      start,
		Partitions: make(map[string]time.Duration),
	})
}

// SnapshotBeforeGC records pre-cycle heap occupancy on the open cycle and
// seeds the peak with it.
func (t *Tracer) SnapshotBeforeGC(u Usage) {
	cur := t.currentCycle()
	if cur == nil {
		return
	}
	cur.PreUsage = u
	cur.PeakUsage = u
	cur.HasUsage = true
}

// UpdatePeak raises the open cycle's peak usage if u exceeds it.
func (t *Tracer) UpdatePeak(u Usage) {
	cur := t.currentCycle()
	if cur == nil {
		return
	}
	if u.UsedBytes > cur.PeakUsage.UsedBytes {
		cur.PeakUsage = u
	}
}

// ReportCycleEnd closes the open cycle record, applying the bracket's
// config: partitions when accumulated time was requested, post/peak usage
// when usage snapshots were requested, and the collection count when the
// bracket is countable.
func (t *Tracer) ReportCycleEnd(cfg Config, end time.Time, partitions map[string]time.Duration, post Usage) {
	cur := t.currentCycle()
	if cur == nil {
		return
	}
	cur.End = end
	if cfg.RecordAccumulatedTime {
		for name, d := range partitions {
			cur.Partitions[name] += d
		}
	}
	if cfg.RecordPostUsage {
		cur.PostUsage = post
		if post.UsedBytes > cur.PeakUsage.UsedBytes {
			cur.PeakUsage = post
		}
	}
	if cfg.CountCollection {
		cur.Counted = true
		t.CollectionCount++
	}
}

// ReportPauseStart opens a pause record within the current cycle.
func (t *Tracer) ReportPauseStart(name string, cfg Config, start time.Time) {
	t.Pauses = append(t.Pauses, PauseRecord{
		Name:  name,
		Cause: cfg.Cause,
		Start: start,
	})
}

// ReportPauseEnd closes the most recently opened pause record.
func (t *Tracer) ReportPauseEnd(end time.Time) {
	if len(t.Pauses) == 0 {
		return
	}
	t.Pauses[len(t.Pauses)-1].End = end
}
