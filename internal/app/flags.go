package app

import (
	"flag"
	"time"

	"torus-life/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath     string
	Scale          int
	Seed           int64
	Headless       bool
	MaxGenerations int
	OutputDir      string
	Snapshot       string
}

// NewConfig returns a Config whose zero values defer to the config file.
func NewConfig() *Config {
	return &Config{}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to YAML config (empty = built-in defaults)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (0 = config)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 = config, then time-based)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after N generations in headless mode (0 = unlimited)")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for census.csv (empty = config)")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "write the final headless frame to this PNG")
}

// Apply overrides file settings with any flags that were set.
func (c *Config) Apply(cfg *config.Config) {
	if c.Scale > 0 {
		cfg.Display.Scale = c.Scale
	}
	if c.Seed != 0 {
		cfg.World.Seed = c.Seed
	}
	if c.OutputDir != "" {
		cfg.Telemetry.OutputDir = c.OutputDir
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func ResolveSeed(cfg *config.Config) int64 {
	if cfg.World.Seed != 0 {
		return cfg.World.Seed
	}
	return time.Now().UnixNano()
}
