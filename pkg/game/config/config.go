// Package config holds the generation parameters and loads them from an
// optional .env file and DUNGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dungen/pkg/game/catalog"
	"dungen/pkg/game/generator"
	"dungen/pkg/game/setup"
)

// Config is everything a pipeline needs besides the catalog
type Config struct {
	// Seed of 0 asks for a clock-derived seed.
	Seed  int64
	Floor int

	MainPathLength     generator.IntRange
	SidePathLength     generator.IntRange
	SidePathChance     int
	OptionalRoomChance int
	MaxAttempts        int

	Dropoff        float64
	Noise          float64
	StartingPoints float64

	PopulateExit bool
}

// Default returns the stock parameters
func Default() Config {
	path := generator.DefaultPathConfig()
	curve := setup.DefaultCurve()
	return Config{
		Floor:              1,
		MainPathLength:     path.MainPathLength,
		SidePathLength:     path.SidePathLength,
		SidePathChance:     path.SidePathChance,
		OptionalRoomChance: path.OptionalRoomChance,
		MaxAttempts:        path.MaxAttempts,
		Dropoff:            curve.Dropoff,
		Noise:              curve.Noise,
		StartingPoints:     curve.StartingPoints,
	}
}

// PathConfig returns the layout parameters
func (c Config) PathConfig() generator.PathConfig {
	return generator.PathConfig{
		MainPathLength:     c.MainPathLength,
		SidePathLength:     c.SidePathLength,
		SidePathChance:     c.SidePathChance,
		OptionalRoomChance: c.OptionalRoomChance,
		MaxAttempts:        c.MaxAttempts,
	}
}

// Curve returns the difficulty curve parameters
func (c Config) Curve() setup.Curve {
	return setup.Curve{
		Dropoff:        c.Dropoff,
		Noise:          c.Noise,
		StartingPoints: c.StartingPoints,
	}
}

// Validate reports the first parameter that can never produce a dungeon
func (c Config) Validate() error {
	if c.Floor < 1 {
		return &catalog.ConfigurationError{Field: "floor", Reason: fmt.Sprintf("%d is below 1", c.Floor)}
	}
	if err := c.PathConfig().Validate(); err != nil {
		return err
	}
	return c.Curve().Validate()
}

// Load starts from Default, applies envFile if it exists (an empty name
// means ".env") and then any DUNGEN_* variables set in the environment.
// Variables already in the environment win over the file.
func Load(envFile string) (Config, error) {
	cfg := Default()

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEN_FLOOR", &c.Floor},
		{"DUNGEN_MAIN_MIN", &c.MainPathLength.Min},
		{"DUNGEN_MAIN_MAX", &c.MainPathLength.Max},
		{"DUNGEN_SIDE_MIN", &c.SidePathLength.Min},
		{"DUNGEN_SIDE_MAX", &c.SidePathLength.Max},
		{"DUNGEN_SIDE_CHANCE", &c.SidePathChance},
		{"DUNGEN_OPTIONAL_CHANCE", &c.OptionalRoomChance},
		{"DUNGEN_MAX_ATTEMPTS", &c.MaxAttempts},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return &catalog.ConfigurationError{Field: v.key, Reason: fmt.Sprintf("%q is not an integer", raw)}
		}
		*v.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"DUNGEN_DROPOFF", &c.Dropoff},
		{"DUNGEN_NOISE", &c.Noise},
		{"DUNGEN_STARTING_POINTS", &c.StartingPoints},
	}
	for _, v := range floats {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &catalog.ConfigurationError{Field: v.key, Reason: fmt.Sprintf("%q is not a number", raw)}
		}
		*v.dst = f
	}

	if raw, ok := lookup("DUNGEN_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &catalog.ConfigurationError{Field: "DUNGEN_SEED", Reason: fmt.Sprintf("%q is not an integer", raw)}
		}
		c.Seed = seed
	}

	if raw, ok := lookup("DUNGEN_POPULATE_EXIT"); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return &catalog.ConfigurationError{Field: "DUNGEN_POPULATE_EXIT", Reason: fmt.Sprintf("%q is not a boolean", raw)}
		}
		c.PopulateExit = b
	}

	return nil
}
