package app

import "flag"

// Host names accepted by the -host flag.
const (
	HostTerminal = "term"
	HostWindow   = "gui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Host  string
	Scale int
	FPS   int
	Seed  int64
	HUD   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Host: HostTerminal, Scale: 4, FPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "display host: term or gui")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels (gui host)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population (0 uses the clock)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel (gui host)")
}
