package gui

import (
	"github.com/qnkhuat/connectterm/pkg/board"
	"github.com/qnkhuat/connectterm/pkg/game"
)

// Cells is the read side of a board
type Cells interface {
	At(row, column int) board.Marker
}

// Frame encapsulates everything needed to draw one frame
type Frame struct {
	Cells  Cells        // Board
	Turn   board.Marker // Player to move
	State  game.State   // Session state
	Result board.Result // Latched winner and line
	Full   bool         // No column accepts a piece
	Theme  Theme        // Theme
}

// FrameOf snapshots a session for drawing
func FrameOf(s *game.Session, t Theme) Frame {
	return Frame{
		Cells:  s.Board,
		Turn:   s.Board.Turn(),
		State:  s.State(),
		Result: s.Result(),
		Full:   s.Board.Full(),
		Theme:  t,
	}
}

func (f Frame) winning(p board.Point) bool {
	for _, w := range f.Result.Line {
		if w == p {
			return true
		}
	}
	return false
}
