package life

import (
	"fmt"
	"strconv"
)

// Config holds the parameters of a Life run. Width and Height are fixed
// for the lifetime of the grid; AliveRate is consumed once when seeding.
type Config struct {
	Width     int
	Height    int
	AliveRate int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 150, AliveRate: 60}
}

// FromArgs populates a Config from positional arguments in the order
// width, height, alive rate. Missing or unparseable values keep their
// defaults without reporting an error.
func FromArgs(args []string) Config {
	c := DefaultConfig()
	if len(args) > 0 {
		if parsed, err := strconv.ParseUint(args[0], 10, 31); err == nil && parsed > 0 {
			c.Width = int(parsed)
		}
	}
	if len(args) > 1 {
		if parsed, err := strconv.ParseUint(args[1], 10, 31); err == nil && parsed > 0 {
			c.Height = int(parsed)
		}
	}
	if len(args) > 2 {
		if parsed, err := strconv.ParseUint(args[2], 10, 31); err == nil {
			c.AliveRate = int(parsed)
		}
	}
	return c
}

// Validate reports a configuration that must not reach New.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid size %dx%d: dimensions must be at least 1", c.Width, c.Height)
	}
	if c.AliveRate < 0 || c.AliveRate > 100 {
		return fmt.Errorf("alive rate %d outside [0,100]", c.AliveRate)
	}
	return nil
}
