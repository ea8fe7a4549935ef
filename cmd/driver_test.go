package cmd

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gc "github.com/gcpulse/gcpulse/gc"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func TestRunScenario_CompletesWithCleanState(t *testing.T) {
	// GIVEN a small scenario with sampling enabled
	h := gc.NewHeap(gc.Config{
		SampleAllocs:     true,
		StallThresholdUs: 1e9,
		AllocTracker:     gc.NewStallTracker(),
	})
	sc := Scenario{Cycles: 2, GCWorkers: 3, Mutators: 2, AllocsPerMutator: 10, AllocWords: 16}

	// WHEN the driver runs it
	err := RunScenario(h, sc)

	// THEN every bracket closed and the register/cause read clean
	require.NoError(t, err)
	assert.Equal(t, gc.PhaseNone, h.Clock().Current())
	assert.Equal(t, gc.CauseNone, h.Cause())

	// AND the tracer saw 2 cycles with 2 pauses each
	assert.Equal(t, 2, h.Tracer().CollectionCount)
	assert.Len(t, h.Tracer().Pauses, 4)
	assert.Equal(t, 1, h.Policy().CycleCount(gc.CauseExplicit))
	assert.Equal(t, 1, h.Policy().CycleCount(gc.CauseConcurrentTrigger))

	// AND every mutator allocation was sampled
	tracker := h.AllocTracker().(*gc.StallTracker)
	stats := tracker.Stats(gc.AllocShared)
	assert.Equal(t, 2*2*10, stats.Count)
	assert.Equal(t, uint64(2*2*10*16), stats.TotalWords)
}

func TestRunScenario_SamplingDisabled_NoAggregatorNeeded(t *testing.T) {
	// GIVEN a heap without a latency aggregator and sampling off
	h := gc.NewHeap(gc.Config{SampleAllocs: false})
	sc := Scenario{Cycles: 1, GCWorkers: 2, Mutators: 1, AllocsPerMutator: 5, AllocWords: 8}

	// WHEN the driver runs THEN the zero-cost path never touches the
	// missing aggregator
	require.NoError(t, RunScenario(h, sc))
	assert.Equal(t, gc.CauseNone, h.Cause())
}
