package game

import (
	"fmt"
	"time"
)

// Config holds the constants of one game. DefaultConfig documents the
// defaults.
type Config struct {
	Height int // grid rows
	Width  int // grid columns

	// TickInterval is the cadence presenters call Tick at. The engine never
	// reads a clock; it only hands this value to presenters.
	TickInterval time.Duration
	// FoodRespawnDelay is how long the board stays without food after the
	// snake eats.
	FoodRespawnDelay time.Duration
	PointsPerFood    int

	InitialLength int // starting segments, laid out rightward from the start cell
	StartRow      int
	StartCol      int

	// MaxObstacles caps how many obstacles the board accumulates, one per
	// food eaten. 0 means no cap.
	MaxObstacles int

	// Seed for the spawn RNG. 0 picks a time-based seed.
	Seed uint64
}

// DefaultConfig returns the classic 20x30 board at 100ms per tick.
func DefaultConfig() Config {
	return Config{
		Height:           20,
		Width:            30,
		TickInterval:     100 * time.Millisecond,
		FoodRespawnDelay: 1000 * time.Millisecond,
		PointsPerFood:    10,
		InitialLength:    3,
		StartRow:         5,
		StartCol:         5,
		MaxObstacles:     1,
	}
}

// Validate reports whether the config can start a game.
func (c Config) Validate() error {
	switch {
	case c.Height <= 0 || c.Width <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Height, c.Width)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.TickInterval)
	case c.FoodRespawnDelay < 0:
		return fmt.Errorf("%w: food respawn delay %v", ErrInvalidConfig, c.FoodRespawnDelay)
	case c.PointsPerFood < 0:
		return fmt.Errorf("%w: points per food %d", ErrInvalidConfig, c.PointsPerFood)
	case c.MaxObstacles < 0:
		return fmt.Errorf("%w: max obstacles %d", ErrInvalidConfig, c.MaxObstacles)
	case c.InitialLength < 1 || c.InitialLength > c.Width:
		return fmt.Errorf("%w: initial length %d on width %d", ErrInvalidConfig, c.InitialLength, c.Width)
	case c.StartRow < 0 || c.StartRow >= c.Height || c.StartCol < 0 || c.StartCol >= c.Width:
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.StartRow, c.StartCol, c.Height, c.Width)
	}
	return nil
}
