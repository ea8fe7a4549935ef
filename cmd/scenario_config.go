package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig is the YAML scenario file layout.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario describes one driver run.
type Scenario struct {
	Cycles           int    `yaml:"cycles"`
	GCWorkers        int    `yaml:"gc_workers"`
	Mutators         int    `yaml:"mutators"`
	AllocsPerMutator int    `yaml:"allocs_per_mutator"`
	AllocWords       uint64 `yaml:"alloc_words"`
}

// GetScenario loads the named scenario from a YAML file.
func GetScenario(path string, name string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return &scenario, nil
}
