package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "config.json"

const (
	DisplayText  = "text"
	DisplayPanel = "panel"
	DisplayNone  = "none"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Generations int    `json:"generations"`
	DelayMs     int    `json:"delay_ms"`
	Pattern     string `json:"pattern"`
	Display     string `json:"display"`
	Seed        *int64 `json:"seed"`
}

// DefaultConfig returns the defaults used when neither a config file nor arguments override them
func DefaultConfig() Config {
	return Config{
		Width:       10,
		Height:      10,
		Generations: 10,
		DelayMs:     500,
		Display:     DisplayText,
	}
}

// Delay returns the pause between generations
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// HasPattern reports whether the grid should be seeded from Pattern instead of randomly
func (c Config) HasPattern() bool {
	return c.Pattern != ""
}

// Validate checks values a config file may have set out of range
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return errors.Wrapf(ErrInvalidParameter, "[Validate] width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Wrapf(ErrInvalidParameter, "[Validate] height must be positive, got %d", c.Height)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidParameter, "[Validate] generations must not be negative, got %d", c.Generations)
	case c.DelayMs < 0:
		return errors.Wrapf(ErrInvalidParameter, "[Validate] delay must not be negative, got %d", c.DelayMs)
	case !validDisplay(c.Display):
		return errors.Wrapf(ErrInvalidParameter, "[Validate] unknown display %q", c.Display)
	}
	return nil
}

func validDisplay(display string) bool {
	switch display {
	case DisplayText, DisplayPanel, DisplayNone:
		return true
	}
	return false
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
