package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSimulator_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSimulator(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulator(), cfg)
}

func TestLoadSimulator_ParsesFile(t *testing.T) {
	yaml := `log_level: debug
scenario_path: fixtures/duel.yaml
seed: 1234
runs: 50
workers: 8
armour_path: data/armour.yaml
`
	path := filepath.Join(t.TempDir(), "simulator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadSimulator(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fixtures/duel.yaml", cfg.ScenarioPath)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 50, cfg.Runs)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "data/armour.yaml", cfg.ArmourPath)
}

func TestLoadSimulator_ClampsBatchValues(t *testing.T) {
	yaml := `runs: 0
workers: -3
`
	path := filepath.Join(t.TempDir(), "simulator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadSimulator(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Runs)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadSimulator_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0o644))

	_, err := LoadSimulator(path)
	assert.Error(t, err)
}
