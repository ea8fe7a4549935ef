package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScenario_LoadsNamedScenario(t *testing.T) {
	// GIVEN a scenario file with two named scenarios
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	content := `scenarios:
  default:
    cycles: 3
    gc_workers: 4
    mutators: 2
    allocs_per_mutator: 64
    alloc_words: 128
  stress:
    cycles: 50
    gc_workers: 16
    mutators: 8
    allocs_per_mutator: 1024
    alloc_words: 512
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// WHEN the stress scenario is loaded
	sc, err := GetScenario(path, "stress")

	// THEN its fields come back intact
	require.NoError(t, err)
	assert.Equal(t, 50, sc.Cycles)
	assert.Equal(t, 16, sc.GCWorkers)
	assert.Equal(t, 8, sc.Mutators)
	assert.Equal(t, 1024, sc.AllocsPerMutator)
	assert.Equal(t, uint64(512), sc.AllocWords)
}

func TestGetScenario_UnknownName_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: {}\n"), 0o644))

	_, err := GetScenario(path, "missing")
	assert.Error(t, err)
}

func TestGetScenario_MissingFile_Errors(t *testing.T) {
	_, err := GetScenario(filepath.Join(t.TempDir(), "nope.yaml"), "default")
	assert.Error(t, err)
}
