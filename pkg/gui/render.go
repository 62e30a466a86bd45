package gui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/connectterm/pkg/board"
	"github.com/qnkhuat/connectterm/pkg/game"
	"github.com/rivo/tview"
)

// UnknownMarkerError is returned when a cell holds a value that is
// neither empty nor a player. The board is corrupt and the game cannot
// go on.
type UnknownMarkerError struct {
	Point  board.Point
	Marker board.Marker
}

func (e *UnknownMarkerError) Error() string {
	return fmt.Sprintf("unknown marker %d at %s", int(e.Marker), e.Point)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// fillRect paints a w by h rectangle with the style's background
func fillRect(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// pieceColor returns the theme's color for a marker
func pieceColor(m board.Marker, t Theme) (tcell.Color, bool) {
	switch m {
	case board.Empty:
		return t.Empty, true
	case board.PlayerA:
		return t.PlayerA, true
	case board.PlayerB:
		return t.PlayerB, true
	default:
		return tcell.ColorDefault, false
	}
}

// drawHole draws a cell's piece, or the empty hole
func drawHole(s tcell.Screen, l layout, p board.Point, m board.Marker, win bool, t Theme) error {
	color, ok := pieceColor(m, t)
	if !ok {
		return &UnknownMarkerError{Point: p, Marker: m}
	}

	x, y := l.hole(p)
	style := tcell.StyleDefault.Background(color)

	fill := ' '
	if win {
		fill = '◆'
		style = style.Foreground(t.Highlight)
	}

	s.SetContent(x, y, fill, nil, style)
	s.SetContent(x+1, y, fill, nil, style)
	return nil
}

// drawBoard draws the board and every piece on it
func drawBoard(s tcell.Screen, l layout, f Frame) error {
	fillRect(s, l.left, l.top, boardWidth, boardHeight, tcell.StyleDefault.Background(f.Theme.Board))

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Columns; c++ {
			p := board.Point{Row: r, Column: c}
			if err := drawHole(s, l, p, f.Cells.At(r, c), f.winning(p), f.Theme); err != nil {
				return err
			}
		}
	}

	// Display the column numbers used by the keyboard
	fileStyle := tcell.StyleDefault.Foreground(f.Theme.File)
	for c := 0; c < board.Columns; c++ {
		x, _ := l.hole(board.Point{Column: c})
		drawText(s, x, l.top+boardHeight, fileStyle, strconv.Itoa(c+1))
	}

	return nil
}

// statusText is the line shown above the board
func statusText(f Frame) string {
	switch {
	case f.Result.Winner != board.Empty:
		return fmt.Sprintf(" %s wins! ", f.Result.Winner)
	case f.State == game.StateTerminated:
		return " Game over "
	case f.Full:
		return " Board full "
	default:
		return fmt.Sprintf(" %s to move ", f.Turn)
	}
}

// drawStatus displays the player to move, or the winner banner
func drawStatus(s tcell.Screen, l layout, f Frame) {
	text := statusText(f)
	y := l.top - 2

	if f.Result.Winner != board.Empty {
		color, _ := pieceColor(f.Result.Winner, f.Theme)
		fillRect(s, l.left, y, boardWidth, 1, tcell.StyleDefault.Background(color))
		tview.Print(s, text, l.left, y, boardWidth, tview.AlignCenter, f.Theme.Highlight)
		return
	}

	fillRect(s, l.left, y, boardWidth, 1, tcell.StyleDefault.Background(f.Theme.LabelBg))
	tview.Print(s, text, l.left, y, boardWidth, tview.AlignCenter, f.Theme.LabelFg)
}

// drawHint displays the controls under the board
func drawHint(s tcell.Screen, l layout, f Frame) {
	hint := "click a column or press 1-7, q quits"
	if f.Full && f.Result.Winner == board.Empty {
		hint = "no moves left, q quits"
	} else if f.State != game.StateInProgress {
		hint = ""
	}

	tview.Print(s, hint, l.left, l.top+boardHeight+2, boardWidth, tview.AlignCenter, f.Theme.Hint)
}

// Render draws the frame. It does not call Show.
func Render(s tcell.Screen, f Frame) error {
	w, h := s.Size()
	l := layoutFor(w, h)

	drawStatus(s, l, f)
	if err := drawBoard(s, l, f); err != nil {
		return err
	}
	drawHint(s, l, f)

	return nil
}
