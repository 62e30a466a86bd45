package board

// Direction of a scanned line
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalUp   // "/" bottom-left to top-right
	DiagonalDown // "\" top-left to bottom-right
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalUp:
		return "diagonal /"
	case DiagonalDown:
		return "diagonal \\"
	default:
		return "unknown"
	}
}

// Line is an ordered run of cells that is scanned for four in a row
type Line struct {
	Direction Direction
	Points    []Point
}

// Precedence decides which line wins when more than one matches
type Precedence int

const (
	// LastMatch lets every matching line overwrite the previous result,
	// so diagonals beat columns and columns beat rows.
	LastMatch Precedence = iota
	// FirstMatch stops at the first matching line in scan order.
	FirstMatch
)

// Result is the outcome of a scan. Line holds the ToWin cells of the
// deciding run and is nil when Winner is Empty.
type Result struct {
	Winner    Marker
	Direction Direction
	Line      []Point
}

var lines = buildLines()

// Lines returns every line of at least ToWin cells in scan order: rows
// top to bottom, columns left to right, then "/" diagonals and "\"
// diagonals.
func Lines() []Line {
	return lines
}

func buildLines() []Line {
	var out []Line

	for r := 0; r < Rows; r++ {
		l := Line{Direction: Horizontal}
		for c := 0; c < Columns; c++ {
			l.Points = append(l.Points, Point{r, c})
		}
		out = append(out, l)
	}

	for c := 0; c < Columns; c++ {
		l := Line{Direction: Vertical}
		for r := 0; r < Rows; r++ {
			l.Points = append(l.Points, Point{r, c})
		}
		out = append(out, l)
	}

	// "/" diagonals, starting on the left edge from the top down and then
	// along the bottom row from left to right
	for k := -(Rows - 1); k < Columns; k++ {
		l := Line{Direction: DiagonalUp}
		r, c := Rows-1+k, 0
		if k >= 0 {
			r, c = Rows-1, k
		}
		for ; r >= 0 && c < Columns; r, c = r-1, c+1 {
			l.Points = append(l.Points, Point{r, c})
		}
		if len(l.Points) >= ToWin {
			out = append(out, l)
		}
	}

	// "\" diagonals, starting at the right end of the top row
	for k := Columns - 1; k > -Rows; k-- {
		l := Line{Direction: DiagonalDown}
		r, c := 0, k
		if k < 0 {
			r, c = -k, 0
		}
		for ; r < Rows && c < Columns; r, c = r+1, c+1 {
			l.Points = append(l.Points, Point{r, c})
		}
		if len(l.Points) >= ToWin {
			out = append(out, l)
		}
	}

	return out
}

// Scan runs the horizontal, vertical and diagonal scans over b
func (b *Board) Scan(p Precedence) Result {
	var res Result

	for _, l := range lines {
		winner, run := b.lineWinner(l)
		if winner == Empty {
			continue
		}

		res = Result{Winner: winner, Direction: l.Direction, Line: run}
		if p == FirstMatch {
			break
		}
	}

	return res
}

// ScanForWinner returns the winner under LastMatch precedence, or Empty
func ScanForWinner(b *Board) Marker {
	return b.Scan(LastMatch).Winner
}

// lineWinner looks for ToWin consecutive PlayerA markers first and then
// for PlayerB markers.
func (b *Board) lineWinner(l Line) (Marker, []Point) {
	for _, want := range [...]Marker{PlayerA, PlayerB} {
		count := 0
		for i, p := range l.Points {
			if b.cells[p.Row][p.Column] != want {
				count = 0
				continue
			}

			count++
			if count == ToWin {
				run := make([]Point, ToWin)
				copy(run, l.Points[i-ToWin+1:i+1])
				return want, run
			}
		}
	}

	return Empty, nil
}
