package app

import (
	"flag"
	"fmt"
	"strconv"
)

// Config represents the startup parameters for the application. Grid
// dimensions are derived from the window and cell sizes by integer division.
type Config struct {
	Sim          string
	WindowWidth  int
	WindowHeight int
	CellSize     int
	TPS          int
	Density      float64
	SeedMode     string
	Seed         int64
}

// NewConfig returns a Config populated with the stock settings: a 1600x900
// window of 2px cells stepping 12 generations per second at 10% density.
func NewConfig() *Config {
	return &Config{
		Sim:          "life",
		WindowWidth:  1600,
		WindowHeight: 900,
		CellSize:     2,
		TPS:          12,
		Density:      0.10,
		SeedMode:     "uniform",
		Seed:         42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Float64Var(&c.Density, "density", c.Density, "seed density in [0,1]")
	fs.StringVar(&c.SeedMode, "mode", c.SeedMode, "seed mode: uniform or noise")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// Rows returns the grid row count derived from the window and cell sizes.
func (c *Config) Rows() int { return c.WindowHeight / c.CellSize }

// Cols returns the grid column count derived from the window and cell sizes.
func (c *Config) Cols() int { return c.WindowWidth / c.CellSize }

// Validate checks the configuration once at startup; anything it rejects is
// a precondition violation, not a runtime condition.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim name must not be empty")
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size must be at least 1, got %d", c.CellSize)
	}
	if c.Rows() < 1 || c.Cols() < 1 {
		return fmt.Errorf("window %dx%d with cell size %d yields a %dx%d grid; both dimensions must be at least 1",
			c.WindowWidth, c.WindowHeight, c.CellSize, c.Rows(), c.Cols())
	}
	if c.TPS < 1 {
		return fmt.Errorf("steps per second must be at least 1, got %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0,1], got %g", c.Density)
	}
	switch c.SeedMode {
	case "uniform", "noise":
	default:
		return fmt.Errorf("unknown seed mode %q", c.SeedMode)
	}
	return nil
}

// SimOptions renders the config as the key/value map sim factories consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(c.Rows()),
		"cols":    strconv.Itoa(c.Cols()),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"mode":    c.SeedMode,
	}
}
