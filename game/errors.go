package game

import "errors"

var (
	// ErrOutOfBounds indicates a grid access outside [0,H)x[0,W).
	ErrOutOfBounds = errors.New("game: position out of bounds")
	// ErrEmptyQueue indicates a dequeue or peek on an empty segment queue.
	ErrEmptyQueue = errors.New("game: segment queue is empty")
	// ErrInvalidDirection indicates a value that is not one of the four directions.
	ErrInvalidDirection = errors.New("game: invalid direction")
	// ErrInvalidDimensions indicates a grid with a non-positive height or width.
	ErrInvalidDimensions = errors.New("game: grid dimensions must be positive")
	// ErrInvalidConfig indicates a Config that cannot start a game.
	ErrInvalidConfig = errors.New("game: invalid config")
)
