package game

import (
	"github.com/pkg/errors"
)

// Variant selects which items are on the board.
type Variant string

const (
	// Classic has a single apple and nothing else.
	Classic Variant = "classic"
	// Extended adds a bad apple and rocks.
	Extended Variant = "extended"
)

// Config holds everything needed to start a session.
type Config struct {
	Width    int     // board width in pixels
	Height   int     // board height in pixels
	CellSize int     // side of one cell in pixels
	Speed    int     // ticks per second
	Variant  Variant // classic or extended
	Rocks    int     // number of rocks, extended only
	Seed     uint64  // RNG seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		Width:    640,
		Height:   480,
		CellSize: 20,
		Speed:    10,
		Variant:  Extended,
		Rocks:    2,
	}
}

// RockCount returns how many rocks the variant puts on the board.
func (c Config) RockCount() int {
	if c.Variant == Classic {
		return 0
	}
	return c.Rocks
}

// HasBadApple reports whether the variant places a bad apple.
func (c Config) HasBadApple() bool {
	return c.Variant != Classic
}

// Validate checks the configuration before a session is built from it.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return errors.Errorf("board size %dx%d is not a multiple of cell size %d", c.Width, c.Height, c.CellSize)
	}
	if c.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", c.Speed)
	}
	if c.Variant != Classic && c.Variant != Extended {
		return errors.Errorf("unknown variant %q", c.Variant)
	}
	if c.Rocks < 0 {
		return errors.Errorf("rock count must not be negative, got %d", c.Rocks)
	}

	// snake + apple + bad apple + rocks, with at least one cell to spare
	items := 2 + c.RockCount()
	if c.HasBadApple() {
		items++
	}
	cells := (c.Width / c.CellSize) * (c.Height / c.CellSize)
	if cells <= items {
		return errors.Errorf("board has %d cells, need more than %d", cells, items)
	}
	return nil
}
