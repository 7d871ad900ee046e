package life

import (
	"strconv"

	"github.com/golang/glog"
)

// Config holds parameters for the life simulation.
type Config struct {
	Rule    Rule
	Seed    int64
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: Conway, Seed: 42, Density: 0.25}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		} else {
			glog.Warningf("life: ignoring rule: %v", err)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
