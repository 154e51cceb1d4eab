// Package config loads the simulation settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration for a run.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Timing    TimingConfig    `yaml:"timing"`
	Display   DisplayConfig   `yaml:"display"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the board dimensions and initial population.
type WorldConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

// TimingConfig relates display refreshes to simulation steps.
type TimingConfig struct {
	RefreshRate float64 `yaml:"refresh_rate"` // display ticks per second
	TargetRate  float64 `yaml:"target_rate"`  // generations per second
}

// DisplayConfig holds window and colour settings.
type DisplayConfig struct {
	Scale      int   `yaml:"scale"`
	Background Color `yaml:"background"`
	Live       Color `yaml:"live"`
}

// TelemetryConfig controls census output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	LogEvery  int    `yaml:"log_every"` // generations between progress logs, 0 = off
}

// Color is an 8-bit RGBA colour.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA converts to the image/color representation.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	TicksPerStep int
}

// Load reads configuration from a YAML file merged over the embedded
// defaults. An empty path uses the defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.World.Width, c.World.Height))
	}
	if c.World.Density < 0 || c.World.Density > 1 {
		errs = append(errs, fmt.Errorf("world density %v outside [0,1]", c.World.Density))
	}
	if c.Timing.RefreshRate <= 0 || c.Timing.TargetRate <= 0 {
		errs = append(errs, fmt.Errorf("timing rates must be positive (refresh %v, target %v)", c.Timing.RefreshRate, c.Timing.TargetRate))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale %d must be positive", c.Display.Scale))
	}
	if c.Telemetry.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("telemetry log_every %d must not be negative", c.Telemetry.LogEvery))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.TicksPerStep = core.ThresholdFor(c.Timing.RefreshRate, c.Timing.TargetRate)
}

// Life builds the simulation config for the given seed.
func (c *Config) Life(seed int64) life.Config {
	return life.Config{
		Width:       c.World.Width,
		Height:      c.World.Height,
		Density:     c.World.Density,
		Seed:        seed,
		RefreshRate: c.Timing.RefreshRate,
		TargetRate:  c.Timing.TargetRate,
	}
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
