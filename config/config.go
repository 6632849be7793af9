package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	errBadPriority  = errors.New("randomTaskPriority must not be negative")
	errBadEndDelay  = errors.New("workerEndDelayTicks must be positive")
	errBadRadius    = errors.New("scanRadius must be positive")
	errBadSpeed     = errors.New("defaultSpeed must be positive")
	errBadProximity = errors.New("proximityThreshold must be positive")
)

// Config carries the tunables of the task layer. Values map one-to-one onto
// constants observed in the host; overriding them is for experimentation, not
// required for correct operation.
type Config struct {
	// RandomTaskPriority is the priority of the synthetic random-selector
	// entry appended during composition.
	RandomTaskPriority int `yaml:"randomTaskPriority"`
	// WorkerEndDelayTicks is the post-run cooldown for worker behaviors.
	WorkerEndDelayTicks uint64 `yaml:"workerEndDelayTicks"`
	// ScanRadius is the half-extent of the default target scan.
	ScanRadius int `yaml:"scanRadius"`
	// DefaultSpeed is the walk-intent speed when a contributor passes none.
	DefaultSpeed float64 `yaml:"defaultSpeed"`
	// ProximityThreshold is the act-on-target distance in world units.
	ProximityThreshold float64 `yaml:"proximityThreshold"`
}

// Default returns the embedded tuning document.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Errorf("config: embedded defaults: %w", err))
	}
	return cfg
}

// Load reads an override file on top of the embedded defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the core cannot operate with.
func (c Config) Validate() error {
	if c.RandomTaskPriority < 0 {
		return fmt.Errorf("config: %w (%d)", errBadPriority, c.RandomTaskPriority)
	}
	if c.WorkerEndDelayTicks == 0 {
		return fmt.Errorf("config: %w", errBadEndDelay)
	}
	if c.ScanRadius <= 0 {
		return fmt.Errorf("config: %w (%d)", errBadRadius, c.ScanRadius)
	}
	if c.DefaultSpeed <= 0 {
		return fmt.Errorf("config: %w (%g)", errBadSpeed, c.DefaultSpeed)
	}
	if c.ProximityThreshold <= 0 {
		return fmt.Errorf("config: %w (%g)", errBadProximity, c.ProximityThreshold)
	}
	return nil
}
