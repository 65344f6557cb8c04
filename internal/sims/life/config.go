package life

import "strconv"

// SeedMode selects how a reseed populates the board.
type SeedMode string

const (
	// SeedUniform sets every cell alive independently with the configured
	// density.
	SeedUniform SeedMode = "uniform"
	// SeedNoise carves alive regions out of a perlin field, producing
	// organic clusters instead of uniform static.
	SeedNoise SeedMode = "noise"
)

// Config controls the Life simulation dimensions and seeding behaviour.
type Config struct {
	Rows int
	Cols int

	Seed int64

	Density    float64
	Mode       SeedMode
	NoiseScale float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:       256,
		Cols:       256,
		Seed:       42,
		Density:    0.10,
		Mode:       SeedUniform,
		NoiseScale: 0.05,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
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
	if v, ok := cfg["mode"]; ok {
		switch SeedMode(v) {
		case SeedUniform, SeedNoise:
			c.Mode = SeedMode(v)
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	return c
}
