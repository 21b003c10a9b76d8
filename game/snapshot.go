package game

// Snapshot is the render projection of one engine state: every cell plus
// the score and the terminal flag. Cells is a private copy.
type Snapshot struct {
	Tick      uint64
	Height    int
	Width     int
	Cells     []Cell
	Score     int
	Length    int
	Direction Direction
	GameOver  bool
}

// At returns the cell at (row, col), or CellEmpty outside the board.
func (s Snapshot) At(row, col int) Cell {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return CellEmpty
	}
	return s.Cells[row*s.Width+col]
}

// Count returns how many cells are in state c.
func (s Snapshot) Count(c Cell) int {
	n := 0
	for _, cell := range s.Cells {
		if cell == c {
			n++
		}
	}
	return n
}
