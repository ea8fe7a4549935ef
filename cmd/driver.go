package cmd

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	gc "github.com/gcpulse/gcpulse/gc"
	"github.com/gcpulse/gcpulse/gc/trace"
)

// RunScenario drives the heap through the configured number of cycles.
// Each cycle follows the concurrent collector's usual shape: an init-mark
// pause with parallel root scanning, a concurrent mark phase with worker
// threads and allocating mutators running alongside, and a final-mark
// pause updating roots.
func RunScenario(h *gc.Heap, sc Scenario) error {
	control := gc.NewThreadContext("control", gc.RoleControl)

	for i := 0; i < sc.Cycles; i++ {
		cause := gc.CauseConcurrentTrigger
		if i == 0 {
			cause = gc.CauseExplicit
		}
		session := gc.BeginCycle(h, cause)

		// Init mark: stop the world, scan roots with parallel workers.
		pause := gc.BeginPause(h, "init-mark-pause")
		scan := h.Clock().Enter(control, gc.PhaseScanRoots)
		if err := runWorkers(sc.GCWorkers, gc.ParallelWorker); err != nil {
			return err
		}
		scan.Exit()
		pause.End()

		// Concurrent mark: collector workers and mutators run together.
		mark := h.Clock().Enter(control, gc.PhaseConcurrentMark)
		var g errgroup.Group
		g.Go(func() error {
			return runWorkers(sc.GCWorkers, gc.ConcurrentWorker)
		})
		g.Go(func() error {
			return runMutators(h, sc.Mutators, sc.AllocsPerMutator, sc.AllocWords)
		})
		if err := g.Wait(); err != nil {
			return err
		}
		mark.Exit()

		// Final mark: stop the world again, update roots.
		pause = gc.BeginPause(h, "final-mark-pause")
		update := h.Clock().Enter(control, gc.PhaseUpdateRoots)
		if err := runWorkers(sc.GCWorkers, gc.ParallelWorker); err != nil {
			return err
		}
		update.Exit()
		pause.End()

		session.End()
	}
	return nil
}

// runWorkers fans out count workers of the given kind, each binding its
// worker slot for the duration of the task.
func runWorkers(count int, kind gc.WorkerKind) error {
	var g errgroup.Group
	for id := 0; id < count; id++ {
		id := id
		g.Go(func() error {
			tc := gc.NewThreadContext(fmt.Sprintf("worker-%d", id), workerRole(kind))
			scope := gc.BindWorker(tc, gc.WorkerID(id), kind)
			defer scope.Release()
			runtime.Gosched()
			return nil
		})
	}
	return g.Wait()
}

func workerRole(kind gc.WorkerKind) gc.ThreadRole {
	if kind == gc.ConcurrentWorker {
		return gc.RoleConcurrentGC
	}
	return gc.RoleParallelGC
}

// runMutators fans out application threads, each issuing traced synthetic
// allocations.
func runMutators(h *gc.Heap, count int, allocs int, words uint64) error {
	var g errgroup.Group
	for m := 0; m < count; m++ {
		g.Go(func() error {
			sink := make([][]byte, 0, allocs)
			for i := 0; i < allocs; i++ {
				tr := gc.StartAllocTrace(h, words, gc.AllocShared)
				sink = append(sink, make([]byte, words*8))
				tr.Finish()
			}
			runtime.KeepAlive(sink)
			return nil
		})
	}
	return g.Wait()
}

// PrintSummary displays the tracer summary and allocation aggregates at
// the end of a driver run.
func PrintSummary(h *gc.Heap) {
	summary := trace.Summarize(h.Tracer(), h.Timer().Events())

	fmt.Println("=== Collector Summary ===")
	fmt.Printf("Cycles               : %d (%d counted)\n", summary.TotalCycles, summary.CountedCollections)
	fmt.Printf("Total cycle time     : %v\n", summary.TotalCycleTime)
	fmt.Printf("Total pause time     : %v\n", summary.TotalPauseTime)
	fmt.Printf("Max pause time       : %v\n", summary.MaxPauseTime)
	for name, d := range summary.PhaseTotals {
		fmt.Printf("  phase %-28s: %v\n", name, d)
	}

	if tracker, ok := h.AllocTracker().(*gc.StallTracker); ok && h.SamplingEnabled() {
		stats := tracker.Stats(gc.AllocShared)
		if stats.Count > 0 {
			fmt.Printf("Sampled allocations  : %d (%d words, avg %.1f us, max %.1f us)\n",
				stats.Count, stats.TotalWords, stats.TotalMicros/float64(stats.Count), stats.MaxMicros)
		}
	}
}
