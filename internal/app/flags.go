package app

import (
	"flag"
	"time"

	"lifecanvas/internal/view"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Rule    string
	Width   int
	Height  int
	TPS     int
	Tick    time.Duration
	Blink   time.Duration
	Density float64
	Seed    int64
	DB      string
	Load    string
	File    string
	Palette string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   800,
		Height:  600,
		TPS:     60,
		Tick:    100 * time.Millisecond,
		Blink:   view.BlinkInterval,
		Density: 0.25,
		Seed:    42,
		DB:      "patterns.db",
		File:    "pattern.txt",
		Palette: "density",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "override the birth/survival rule, e.g. B3/S23")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations while running")
	fs.DurationVar(&c.Blink, "blink", c.Blink, "cursor blink interval")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fill")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.StringVar(&c.DB, "db", c.DB, "pattern library database file")
	fs.StringVar(&c.Load, "load", c.Load, "pattern file to load at start")
	fs.StringVar(&c.File, "file", c.File, "pattern file used by the save and load keys")
	fs.StringVar(&c.Palette, "palette", c.Palette, "cell colouring: density or mono")
}

// SimConfig returns the map handed to the simulation factory.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}
