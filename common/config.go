// Site configuration.  A small YAML file, normally /etc/jobinfo.yml, that
// names the accounting commands, the GPU partition markers, the optional
// Prometheus endpoint for GPU utilization, and the hint thresholds.  All
// values have working defaults; a missing file is not an error unless its
// path was given explicitly.

package common

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "/etc/jobinfo.yml"

type PromConfig struct {
	// Base URL of the Prometheus server, empty to disable the GPU
	// utilization fallback.
	URL string `yaml:"url"`
	// Query expression; {jobid} and {nodes} are replaced before the query
	// is submitted.
	Query string `yaml:"query"`
}

type HintConfig struct {
	// Efficiency percentages below which the core-usage hints fire.
	LowEfficiency     float64 `yaml:"low_efficiency"`
	VeryLowEfficiency float64 `yaml:"very_low_efficiency"`
	// System-CPU share of total CPU above which the I/O-pattern hint fires.
	SystemShare float64 `yaml:"system_share"`
	// Memory-use fraction below which the over-request hint fires, but only
	// for requests of at least MemFloorGB gigabytes.
	MemFraction float64 `yaml:"mem_fraction"`
	MemFloorGB  float64 `yaml:"mem_floor_gb"`
}

type Config struct {
	Sacct         string     `yaml:"sacct"`
	Sstat         string     `yaml:"sstat"`
	Squeue        string     `yaml:"squeue"`
	GPUPartitions []string   `yaml:"gpu_partitions"`
	Prometheus    PromConfig `yaml:"prometheus"`
	Hints         HintConfig `yaml:"hints"`
}

func DefaultConfig() Config {
	return Config{
		Sacct:         "sacct",
		Sstat:         "sstat",
		Squeue:        "squeue",
		GPUPartitions: []string{"gpu"},
		Hints: HintConfig{
			LowEfficiency:     75,
			VeryLowEfficiency: 25,
			SystemShare:       20,
			MemFraction:       25,
			MemFloorGB:        10,
		},
	}
}

// ReadConfig loads the site config from fn, folding its values over the
// defaults.  explicit indicates the path came from the user, in which case
// a missing file is reported rather than ignored.
func ReadConfig(fn string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	input, err := os.ReadFile(fn)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Failed to read config %s: %v", fn, err)
	}
	if err := yaml.Unmarshal(input, &cfg); err != nil {
		return cfg, fmt.Errorf("Failed to parse config %s: %v", fn, err)
	}
	return cfg, nil
}
