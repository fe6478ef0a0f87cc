package wator

import (
	"errors"
	"fmt"
	"strconv"

	"wa-tor/internal/core"
)

// ErrCapacityExceeded reports a configuration whose combined population
// cannot fit on the grid. Seeding re-samples empty cells and would never
// terminate, so construction fails fast instead.
var ErrCapacityExceeded = errors.New("wator: population exceeds grid capacity")

// Params holds the per-kind behavioral tunables of the simulation.
type Params struct {
	Fish   int
	Sharks int

	FishEnergy  int
	SharkEnergy int

	FishFertility  int
	SharkFertility int

	SharkEnergyFromFish int
}

// Config controls the Wa-Tor simulation dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  60,
		Height: 85,
		Seed:   1337,
		Params: Params{
			Fish:                140,
			Sharks:              45,
			FishEnergy:          20,
			SharkEnergy:         4,
			FishFertility:       6,
			SharkFertility:      10,
			SharkEnergyFromFish: 8,
		},
	}
}

// Validate reports whether the configuration permits seeding to terminate.
func (c Config) Validate() error {
	capacity := core.Size{W: c.Width, H: c.Height}.Area()
	population := c.Params.Fish + c.Params.Sharks
	if population > capacity {
		return fmt.Errorf("%w: %d agents on %dx%d grid (%d cells)",
			ErrCapacityExceeded, population, c.Width, c.Height, capacity)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fish"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Fish = parsed
		}
	}
	if v, ok := cfg["sharks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Sharks = parsed
		}
	}
	if v, ok := cfg["fish_energy"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FishEnergy = parsed
		}
	}
	if v, ok := cfg["shark_energy"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SharkEnergy = parsed
		}
	}
	if v, ok := cfg["fish_fertility"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FishFertility = parsed
		}
	}
	if v, ok := cfg["shark_fertility"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SharkFertility = parsed
		}
	}
	if v, ok := cfg["shark_energy_from_fish"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SharkEnergyFromFish = parsed
		}
	}
	return c
}
