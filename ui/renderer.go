package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

const (
	borderPadding = 10 // space around the board
	hudHeight     = 30 // score line above the board
)

// Renderer paints engine snapshots into the raylib window.
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
}

func NewRenderer(cellSize int32) *Renderer {
	return &Renderer{
		cellSize: cellSize,
		offsetX:  borderPadding,
		offsetY:  borderPadding + hudHeight,
	}
}

// WindowSize returns the window dimensions that fit a height x width board.
func (r *Renderer) WindowSize(height, width int) (int32, int32) {
	w := r.cellSize*int32(width) + 2*borderPadding
	h := r.cellSize*int32(height) + 2*borderPadding + hudHeight
	return w, h
}

var cellColors = map[game.Cell]rl.Color{
	game.CellSnake:    rl.Green,
	game.CellFood:     rl.Red,
	game.CellObstacle: rl.Gray,
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridW := r.cellSize * int32(snap.Width)
	gridH := r.cellSize * int32(snap.Height)

	// Board background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridW+2, gridH+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, rl.Black)

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			x := r.offsetX + int32(col)*r.cellSize
			y := r.offsetY + int32(row)*r.cellSize
			if color, ok := cellColors[snap.At(row, col)]; ok {
				rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
			}
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.DarkGray)
		}
	}

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.offsetX, borderPadding, 20, rl.White)

	if snap.GameOver {
		r.drawGameOver(snap.Score, gridW, gridH)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGameOver(score int, gridW, gridH int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, rl.Color{R: 0, G: 0, B: 0, A: 180})

	title := fmt.Sprintf("Game over! Score: %d", score)
	hint := "Press R to restart"
	const titleSize, hintSize = 24, 16

	titleX := r.offsetX + (gridW-rl.MeasureText(title, titleSize))/2
	hintX := r.offsetX + (gridW-rl.MeasureText(hint, hintSize))/2
	midY := r.offsetY + gridH/2

	rl.DrawText(title, titleX, midY-titleSize, titleSize, rl.Yellow)
	rl.DrawText(hint, hintX, midY+8, hintSize, rl.White)
}
