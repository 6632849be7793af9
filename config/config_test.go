package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesShippedTuning(t *testing.T) {
	cfg := Default()
	if cfg.RandomTaskPriority != 3 {
		t.Fatalf("RandomTaskPriority = %d, expected 3", cfg.RandomTaskPriority)
	}
	if cfg.WorkerEndDelayTicks != 40 {
		t.Fatalf("WorkerEndDelayTicks = %d, expected 40", cfg.WorkerEndDelayTicks)
	}
	if cfg.ScanRadius != 1 {
		t.Fatalf("ScanRadius = %d, expected 1", cfg.ScanRadius)
	}
	if cfg.DefaultSpeed != 0.5 {
		t.Fatalf("DefaultSpeed = %g, expected 0.5", cfg.DefaultSpeed)
	}
	if cfg.ProximityThreshold != 1.0 {
		t.Fatalf("ProximityThreshold = %g, expected 1.0", cfg.ProximityThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("shipped defaults must validate: %v", err)
	}
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("workerEndDelayTicks: 100\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.WorkerEndDelayTicks != 100 {
		t.Fatalf("WorkerEndDelayTicks = %d, expected the override 100", cfg.WorkerEndDelayTicks)
	}
	if cfg.RandomTaskPriority != 3 || cfg.DefaultSpeed != 0.5 {
		t.Fatal("fields absent from the override must keep their defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("workerEndDelayTicks: [\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative priority", func(c *Config) { c.RandomTaskPriority = -1 }},
		{"zero end delay", func(c *Config) { c.WorkerEndDelayTicks = 0 }},
		{"zero radius", func(c *Config) { c.ScanRadius = 0 }},
		{"zero speed", func(c *Config) { c.DefaultSpeed = 0 }},
		{"negative proximity", func(c *Config) { c.ProximityThreshold = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestLoadValidatesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("defaultSpeed: -2\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected invalid override values to be rejected")
	}
}
