package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the simulation runner.
type Simulator struct {
	LogLevel string `yaml:"log_level"`

	// Catalog overrides; empty means builtin tables only.
	TissuePath   string `yaml:"tissue_path"`
	ArmourPath   string `yaml:"armour_path"`
	BodyPlanPath string `yaml:"body_plan_path"`

	// Encounter fixtures
	ScenarioPath string `yaml:"scenario_path"`

	// Batch mode
	Seed    uint64 `yaml:"seed"`
	Runs    int    `yaml:"runs"`    // seeded repetitions per scenario
	Workers int    `yaml:"workers"` // concurrent encounters; 1 = fully serial
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:     "info",
		ScenarioPath: "config/scenarios.yaml",
		Seed:         1,
		Runs:         1,
		Workers:      4,
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
