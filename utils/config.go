package utils

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Pattern        string        `json:"pattern"`
	Seed           [][2]int      `json:"seed"`
	RandomCount    int           `json:"random_count"`
	RandomSpan     int           `json:"random_span"`
	Workers        int           `json:"workers"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 200,
		Pattern:        model.PatternRandom,
		RandomCount:    20,
		RandomSpan:     5,
		Workers:        1,
		ClearScreen:    true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.RandomCount < 0:
		return errors.Errorf("random_count must not be negative, got %d", c.RandomCount)
	case c.RandomSpan < 0:
		return errors.Errorf("random_span must not be negative, got %d", c.RandomSpan)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// SeedCoordinates resolves the starting cells: an explicit seed wins, then the named pattern
func (c Config) SeedCoordinates(rng *rand.Rand) ([]model.Coord, error) {
	if len(c.Seed) > 0 {
		seed := make([]model.Coord, len(c.Seed))
		for i, p := range c.Seed {
			seed[i] = model.Coord{X: p[0], Y: p[1]}
		}
		return seed, nil
	}

	if c.Pattern == "" || c.Pattern == model.PatternRandom {
		return model.RandomSeed(rng, c.RandomCount, c.RandomSpan), nil
	}

	seed, err := model.Pattern(c.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[SeedCoordinates] failed to resolve pattern")
	}
	return seed, nil
}

// SeedName describes where the starting cells come from
func (c Config) SeedName() string {
	switch {
	case len(c.Seed) > 0:
		return "custom seed"
	case c.Pattern == "":
		return model.PatternRandom
	default:
		return c.Pattern
	}
}

// Generator returns the board generator the config asks for
func (c Config) Generator() model.Generator {
	return model.Generator{Workers: c.Workers}
}
