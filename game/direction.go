package game

import "fmt"

// Direction is one of the four discrete headings. The zero value is not a
// valid direction.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the (row, col) offset of one step. Up decreases the row.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Step moves p one cell in direction d on a height x width torus: leaving
// one edge re-enters from the opposite edge.
func (d Direction) Step(p Position, height, width int) Position {
	dRow, dCol := d.Delta()
	return Position{
		Row: wrap(p.Row+dRow, height),
		Col: wrap(p.Col+dCol, width),
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// keyDirections maps raw key identifiers (browser KeyboardEvent.key values
// and WASD letters) to headings.
var keyDirections = map[string]Direction{
	"ArrowUp":    Up,
	"w":          Up,
	"W":          Up,
	"ArrowDown":  Down,
	"s":          Down,
	"S":          Down,
	"ArrowLeft":  Left,
	"a":          Left,
	"A":          Left,
	"ArrowRight": Right,
	"d":          Right,
	"D":          Right,
}

// DirectionForKey maps a raw key identifier to a direction. The second
// result is false for keys that do not steer.
func DirectionForKey(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}
