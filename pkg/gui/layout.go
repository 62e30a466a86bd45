package gui

import (
	"github.com/qnkhuat/connectterm/pkg/board"
)

const (
	cellWidth  = 4 // terminal columns per board column
	cellHeight = 2 // terminal rows per board row
	topMargin  = 4 // rows above the board for the status line

	boardWidth  = board.Columns * cellWidth
	boardHeight = board.Rows*cellHeight + 1
)

// layout places the board on a screen of the given size
type layout struct {
	left, top int
}

func layoutFor(screenW, screenH int) layout {
	left := (screenW - boardWidth) / 2
	if left < 0 {
		left = 0
	}

	return layout{left: left, top: topMargin}
}

// hole returns the screen position of the top-left corner of a cell's
// piece. Pieces are two columns wide and one row high.
func (l layout) hole(p board.Point) (int, int) {
	return l.left + p.Column*cellWidth + 1, l.top + p.Row*cellHeight + 1
}

// column maps a pointer press to a board column. Presses left or right
// of the board are rejected; any row is accepted.
func (l layout) column(x, y int) (int, bool) {
	if x < l.left || x >= l.left+boardWidth {
		return 0, false
	}

	// A terminal cell covers [x, x+1), its center never sits on a
	// column boundary
	px := float64(x-l.left) + 0.5
	return board.ColumnFromPointer(px, boardWidth, board.Columns), true
}
