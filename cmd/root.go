package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gc "github.com/gcpulse/gcpulse/gc"
)

var (
	// CLI flags for the collector driver
	cycles           int     // number of collection cycles to drive
	gcWorkers        int     // worker threads per parallel/concurrent task
	mutators         int     // application threads issuing allocations
	allocsPerMutator int     // allocations each mutator issues per cycle
	allocWords       uint64  // requested size of each synthetic allocation (words)
	sampleAllocs     bool    // enable per-allocation latency sampling
	stallThresholdUs float64 // latency above this emits a stall warning
	logLevel         string  // log verbosity level
	scenarioFile     string  // optional YAML scenario file
	scenarioName     string  // named scenario to load from the file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gcpulse",
	Short: "Cycle/pause/phase instrumentation driver for a concurrent collector",
}

// runCmd drives a synthetic collector through the configured scenario
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the collector instrumentation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenario := Scenario{
			Cycles:           cycles,
			GCWorkers:        gcWorkers,
			Mutators:         mutators,
			AllocsPerMutator: allocsPerMutator,
			AllocWords:       allocWords,
		}
		if scenarioFile != "" {
			loaded, err := GetScenario(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("unable to read scenario config; %v", err)
			}
			scenario = *loaded
		}

		logrus.Infof("Starting driver with %d cycles, %d gc workers, %d mutators, sampling=%v",
			scenario.Cycles, scenario.GCWorkers, scenario.Mutators, sampleAllocs)

		heap := gc.NewHeap(gc.Config{
			SampleAllocs:     sampleAllocs,
			StallThresholdUs: stallThresholdUs,
			AllocTracker:     gc.NewStallTracker(),
		})

		if err := RunScenario(heap, scenario); err != nil {
			logrus.Fatalf("scenario failed: %v", err)
		}
		PrintSummary(heap)

		logrus.Info("Driver complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&cycles, "cycles", 3, "Number of collection cycles to drive")
	runCmd.Flags().IntVar(&gcWorkers, "gc-workers", 4, "Worker threads per parallel/concurrent task")
	runCmd.Flags().IntVar(&mutators, "mutators", 2, "Application threads issuing allocations")
	runCmd.Flags().IntVar(&allocsPerMutator, "allocs", 64, "Allocations per mutator per cycle")
	runCmd.Flags().Uint64Var(&allocWords, "alloc-words", 128, "Requested words per synthetic allocation")
	runCmd.Flags().BoolVar(&sampleAllocs, "sample-allocs", true, "Sample per-allocation latency")
	runCmd.Flags().Float64Var(&stallThresholdUs, "stall-threshold-us", 10000, "Stall warning threshold (microseconds)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (overrides cycle/worker flags)")
	runCmd.Flags().StringVar(&scenarioName, "scenario-name", "default", "Named scenario within the scenario file")

	rootCmd.AddCommand(runCmd)
}
