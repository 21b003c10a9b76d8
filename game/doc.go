// Package game is the state engine of a single-player Snake game played on a
// toroidal grid.
//
// The Engine owns a Grid of cell states, a Queue of body segments (front is
// the tail, back is the head), the current Direction, the score and the
// game-over flag. A presenter drives it with two calls:
//
//   - SetDirection, whenever the player turns;
//   - Tick, on a fixed cadence, which advances the snake one cell and
//     returns a Snapshot to paint.
//
// The engine is not safe for concurrent use. Deferred work (the delayed food
// respawn) goes through a Scheduler so that the presenter decides which
// goroutine runs it.
package game
