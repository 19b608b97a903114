package common

import (
	"os"
	"path"
	"testing"
)

func TestReadConfigMissing(t *testing.T) {
	fn := path.Join(t.TempDir(), "nope.yml")

	cfg, err := ReadConfig(fn, false)
	if err != nil {
		t.Fatalf("implicit missing file: %v", err)
	}
	if cfg.Sacct != "sacct" || len(cfg.GPUPartitions) != 1 || cfg.GPUPartitions[0] != "gpu" {
		t.Errorf("defaults %+v", cfg)
	}
	if cfg.Hints.LowEfficiency != 75 || cfg.Hints.VeryLowEfficiency != 25 {
		t.Errorf("hint defaults %+v", cfg.Hints)
	}

	if _, err := ReadConfig(fn, true); err == nil {
		t.Errorf("explicit missing file should be an error")
	}
}

func TestReadConfigOverlay(t *testing.T) {
	fn := path.Join(t.TempDir(), "jobinfo.yml")
	input := `
sacct: /usr/local/bin/sacct
gpu_partitions: [gpu, a100]
prometheus:
  url: http://prom:9090
  query: gpu_util{job="{jobid}",node=~"{nodes}"}
hints:
  system_share: 50
`
	if err := os.WriteFile(fn, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig(fn, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sacct != "/usr/local/bin/sacct" {
		t.Errorf("Sacct %q", cfg.Sacct)
	}
	// Untouched keys keep their defaults.
	if cfg.Sstat != "sstat" {
		t.Errorf("Sstat %q", cfg.Sstat)
	}
	if len(cfg.GPUPartitions) != 2 || cfg.GPUPartitions[1] != "a100" {
		t.Errorf("GPUPartitions %v", cfg.GPUPartitions)
	}
	if cfg.Prometheus.URL != "http://prom:9090" {
		t.Errorf("Prometheus %+v", cfg.Prometheus)
	}
	if cfg.Hints.SystemShare != 50 || cfg.Hints.LowEfficiency != 75 {
		t.Errorf("Hints %+v", cfg.Hints)
	}
}

func TestReadConfigMalformed(t *testing.T) {
	fn := path.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(fn, []byte(":\n  - not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadConfig(fn, true); err == nil {
		t.Errorf("malformed yaml should be an error")
	}
}
