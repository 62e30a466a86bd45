// Package board models a Connect Four grid: gravity placement, turn
// alternation and the four-in-a-row scans.
package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Point addresses a cell. Row 0 is the top row.
type Point struct {
	Row, Column int
}

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.Row))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Column))
	b.WriteRune(')')

	return b.String()
}

// Outcome is the result kind of a placement
type Outcome int

const (
	Rejected Outcome = iota
	Placed
	ColumnFull
)

func (o Outcome) String() string {
	switch o {
	case Placed:
		return "Placed"
	case ColumnFull:
		return "ColumnFull"
	default:
		return "Rejected"
	}
}

// Placement describes what a call to Place did
type Placement struct {
	Outcome Outcome
	Row     int
	Column  int
	Player  Marker
}

func (p Placement) String() string {
	if p.Outcome != Placed {
		return fmt.Sprintf("%s column %d", p.Outcome, p.Column)
	}

	return fmt.Sprintf("%s %s at %s", p.Outcome, p.Player, Point{p.Row, p.Column})
}

// Board is the grid plus the player whose turn it is
type Board struct {
	cells [Rows][Columns]Marker
	turn  Marker
	moves int
}

// New returns an empty board with PlayerA to move
func New() *Board {
	return &Board{turn: PlayerA}
}

func (b *Board) Turn() Marker {
	return b.turn
}

// Moves is the number of pieces on the board
func (b *Board) Moves() int {
	return b.moves
}

// At returns the marker at row, column. Out of range cells read as Empty.
func (b *Board) At(row, column int) Marker {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}

	return b.cells[row][column]
}

// Full reports whether no column accepts another piece
func (b *Board) Full() bool {
	for c := 0; c < Columns; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// Clone returns a deep copy
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Place drops player's piece into column. The piece lands in the lowest
// empty row. A full column leaves the board and the turn untouched.
//
// A successful placement advances the turn. If the stored turn is not a
// player the turn stays as it is and ErrUnknownPlayer is returned with
// the placement, which has already happened.
func (b *Board) Place(column int, player Marker) (Placement, error) {
	if column < 0 || column >= Columns {
		return Placement{Column: column, Player: player}, ErrColumnOutOfRange
	} else if !player.Player() {
		return Placement{Column: column, Player: player}, ErrUnknownMarker
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] != Empty {
			continue
		}

		b.cells[row][column] = player
		b.moves++

		p := Placement{Outcome: Placed, Row: row, Column: column, Player: player}
		return p, b.advanceTurn()
	}

	return Placement{Outcome: ColumnFull, Row: -1, Column: column, Player: player}, nil
}

func (b *Board) advanceTurn() error {
	next, err := b.turn.Opponent()
	if err != nil {
		return fmt.Errorf("failed to advance turn from %d: %w", b.turn, err)
	}

	b.turn = next
	return nil
}

// String renders the board one row per line, top row first
func (b *Board) String() string {
	var s strings.Builder

	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			s.WriteRune(b.cells[r][c].Rune())
		}

		if r < Rows-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}

// Encode returns the digit encoding accepted by Parse, rows separated by '/'
func (b *Board) Encode() string {
	var s strings.Builder

	for r := 0; r < Rows; r++ {
		if r > 0 {
			s.WriteRune('/')
		}
		for c := 0; c < Columns; c++ {
			s.WriteByte(byte('0' + b.cells[r][c]))
		}
	}

	return s.String()
}

// Parse reads a board from 42 digits, top row first: '0' empty, '1' for
// PlayerA and '2' for PlayerB. Whitespace and '/' are ignored. Floating
// pieces are rejected. The player with fewer pieces moves next, PlayerA
// on a tie.
func Parse(text string) (*Board, error) {
	b := New()

	i := 0
	for _, r := range text {
		if r == '/' || unicode.IsSpace(r) {
			continue
		}

		if i >= Rows*Columns {
			return nil, fmt.Errorf("%w: more than %d cells", ErrBadBoard, Rows*Columns)
		}

		var m Marker
		switch r {
		case '0', '.':
			m = Empty
		case '1', 'R':
			m = PlayerA
		case '2', 'Y':
			m = PlayerB
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrBadBoard, r, i)
		}

		b.cells[i/Columns][i%Columns] = m
		i++
	}

	if i != Rows*Columns {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrBadBoard, Rows*Columns, i)
	}

	var countA, countB int
	for c := 0; c < Columns; c++ {
		filled := false
		for r := 0; r < Rows; r++ {
			switch b.cells[r][c] {
			case Empty:
				if filled {
					return nil, fmt.Errorf("%w: floating piece above %s", ErrBadBoard, Point{r, c})
				}
				continue
			case PlayerA:
				countA++
			case PlayerB:
				countB++
			}

			filled = true
		}
	}

	b.moves = countA + countB
	if countB < countA {
		b.turn = PlayerB
	}

	return b, nil
}
