package game

import "fmt"

// Cell is the occupancy state of one grid position.
// The numeric values double as the wire encoding of a cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
	CellObstacle
)

// String returns the name of the cell state.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	case CellObstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Position is a (row, col) pair on the grid.
type Position struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

// Grid is a fixed-size store of cell states kept in row-major order:
// index = row*width + col.
type Grid struct {
	height int
	width  int
	cells  []Cell
}

// NewGrid creates a height x width grid with every cell empty.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return row*g.width + col, nil
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	i, err := g.index(row, col)
	if err != nil {
		return CellEmpty, err
	}
	return g.cells[i], nil
}

// Set overwrites the state of the cell at (row, col). States are not merged:
// the last write wins.
func (g *Grid) Set(row, col int, c Cell) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[i] = c
	return nil
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// EmptyPositions scans the whole board and returns every empty cell in
// row-major order.
func (g *Grid) EmptyPositions() []Position {
	empty := make([]Position, 0, len(g.cells))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col] == CellEmpty {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	return empty
}

// Count returns the number of cells in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major cell array.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
