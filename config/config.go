// Package config handles configuration loading and validation for swipelist.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-swipe/swipe"
)

// Config holds the application configuration.
type Config struct {
	Edge          string        `yaml:"edge"`           // reveal edge: left or right
	OpenOnlyOne   bool          `yaml:"open_only_one"`  // close other rows when one opens
	Density       float64       `yaml:"density"`        // cells per density-independent unit
	SlideDuration time.Duration `yaml:"slide_duration"` // animated open/close
	FrameInterval time.Duration `yaml:"frame_interval"` // animation tick
	ActionWidth   int           `yaml:"action_width"`   // secondary surface width in cells
	Locked        []string      `yaml:"locked"`         // item ids locked at start
	SessionFile   string        `yaml:"session_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Edge:          swipe.EdgeRight.String(),
		OpenOnlyOne:   true,
		Density:       0.1,
		SlideDuration: swipe.DefaultSlideDuration,
		FrameInterval: 16 * time.Millisecond,
		ActionWidth:   24,
		Locked:        []string{},
	}
}

// Load reads configuration from the given path.
// If path is empty or doesn't exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Edge == "" {
		c.Edge = defaults.Edge
	}
	if c.Density == 0 {
		c.Density = defaults.Density
	}
	if c.SlideDuration == 0 {
		c.SlideDuration = defaults.SlideDuration
	}
	if c.FrameInterval == 0 {
		c.FrameInterval = defaults.FrameInterval
	}
	if c.ActionWidth == 0 {
		c.ActionWidth = defaults.ActionWidth
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := swipe.ParseEdge(c.Edge); err != nil {
		errs = errs.Append("edge", err)
	}
	if c.Density < 0 {
		errs = errs.Append("density", fmt.Errorf("must be positive, got %v", c.Density))
	}
	if c.SlideDuration < 0 {
		errs = errs.Append("slide_duration", fmt.Errorf("must not be negative, got %s", c.SlideDuration))
	}
	if c.FrameInterval < time.Millisecond {
		errs = errs.Append("frame_interval", fmt.Errorf("must be at least 1ms, got %s", c.FrameInterval))
	}
	if c.ActionWidth < 1 {
		errs = errs.Append("action_width", fmt.Errorf("must be at least 1, got %d", c.ActionWidth))
	}
	for i, id := range c.Locked {
		if id == "" {
			errs = errs.Append(fmt.Sprintf("locked[%d]", i), fmt.Errorf("id cannot be empty"))
		}
	}

	return errs.ToError()
}

// DragEdge returns the parsed reveal edge. Validate has already accepted it.
func (c *Config) DragEdge() swipe.DragEdge {
	e, _ := swipe.ParseEdge(c.Edge)
	return e
}

// RowOptions converts the config into options for rows and the coordinator.
func (c *Config) RowOptions() []swipe.Option {
	return []swipe.Option{
		swipe.WithDensity(c.Density),
		swipe.WithSlideDuration(c.SlideDuration),
		swipe.WithOpenOnlyOne(c.OpenOnlyOne),
	}
}
