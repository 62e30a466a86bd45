package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanEmptyBoard(t *testing.T) {
	b := New()
	require.Equal(t, Empty, ScanForWinner(b))

	res := b.Scan(FirstMatch)
	require.Equal(t, Empty, res.Winner)
	require.Nil(t, res.Line)
}

func TestScanBottomRowWin(t *testing.T) {
	b := New()

	for column := 0; column < ToWin; column++ {
		require.Equalf(t, Empty, ScanForWinner(b), "winner before piece %d", column+1)

		p, err := b.Place(column, PlayerA)
		require.NoError(t, err)
		require.Equal(t, Rows-1, p.Row)
	}

	res := b.Scan(LastMatch)
	require.Equal(t, PlayerA, res.Winner)
	require.Equal(t, Horizontal, res.Direction)
	require.Equal(t, []Point{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, res.Line)
}

func TestScanLines(t *testing.T) {
	cases := []struct {
		name      string
		board     string
		winner    Marker
		direction Direction
		line      []Point
	}{
		{
			name:   "three in a row",
			board:  "0000000/0000000/0000000/0000000/0000000/1110222",
			winner: Empty,
		},
		{
			name:   "broken row",
			board:  "0000000/0000000/0000000/0000000/0000000/1101122",
			winner: Empty,
		},
		{
			name:      "row under opponent pieces",
			board:     "0000000/0000000/0000000/0000000/2220001/1111022",
			winner:    PlayerA,
			direction: Horizontal,
			line:      []Point{{5, 0}, {5, 1}, {5, 2}, {5, 3}},
		},
		{
			name:      "column",
			board:     "0000000/0000000/0000020/0000020/0000021/0001121",
			winner:    PlayerB,
			direction: Vertical,
			line:      []Point{{2, 5}, {3, 5}, {4, 5}, {5, 5}},
		},
		{
			name:      "diagonal up",
			board:     "0000000/0000000/0002000/0021000/0211000/2111000",
			winner:    PlayerB,
			direction: DiagonalUp,
			line:      []Point{{5, 0}, {4, 1}, {3, 2}, {2, 3}},
		},
		{
			name:      "diagonal down",
			board:     "0000000/0000000/0001000/0002100/0001210/0002221",
			winner:    PlayerA,
			direction: DiagonalDown,
			line:      []Point{{2, 3}, {3, 4}, {4, 5}, {5, 6}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Parse(tc.board)
			require.NoError(t, err)

			for _, p := range []Precedence{LastMatch, FirstMatch} {
				res := b.Scan(p)
				require.Equal(t, tc.winner, res.Winner)
				if tc.winner == Empty {
					continue
				}
				require.Equal(t, tc.direction, res.Direction)
				require.Equal(t, tc.line, res.Line)
			}
		})
	}
}

func TestScanDiagonalScenario(t *testing.T) {
	b := New()

	moves := []struct {
		column int
		player Marker
	}{
		{0, PlayerB},
		{1, PlayerA}, {1, PlayerB},
		{2, PlayerA}, {2, PlayerA}, {2, PlayerB},
		{3, PlayerA}, {3, PlayerA}, {3, PlayerA},
	}
	for _, m := range moves {
		_, err := b.Place(m.column, m.player)
		require.NoError(t, err)
	}
	require.Equal(t, Empty, ScanForWinner(b))

	_, err := b.Place(3, PlayerB)
	require.NoError(t, err)

	res := b.Scan(LastMatch)
	require.Equal(t, PlayerB, res.Winner)
	require.ElementsMatch(t, []Point{{5, 0}, {4, 1}, {3, 2}, {2, 3}}, res.Line)
}

func TestScanPrecedence(t *testing.T) {
	// A row of four Red pieces and a column of four Yellow pieces. Such a
	// board cannot come from alternating play but the scan order still
	// decides the result.
	b, err := Parse("0000000/0000000/0000002/0000002/0000002/1111002")
	require.NoError(t, err)

	last := b.Scan(LastMatch)
	require.Equal(t, PlayerB, last.Winner)
	require.Equal(t, Vertical, last.Direction)

	first := b.Scan(FirstMatch)
	require.Equal(t, PlayerA, first.Winner)
	require.Equal(t, Horizontal, first.Direction)

	require.Equal(t, PlayerB, ScanForWinner(b))
}

func TestLines(t *testing.T) {
	var rows, columns, up, down int
	for _, l := range Lines() {
		require.GreaterOrEqual(t, len(l.Points), ToWin)

		switch l.Direction {
		case Horizontal:
			rows++
		case Vertical:
			columns++
		case DiagonalUp:
			up++
		case DiagonalDown:
			down++
		}
	}

	require.Equal(t, Rows, rows)
	require.Equal(t, Columns, columns)
	require.Equal(t, 6, up)
	require.Equal(t, 6, down)

	require.Equal(t, Horizontal, Lines()[0].Direction)
	require.Equal(t, DiagonalDown, Lines()[len(Lines())-1].Direction)
}

func BenchmarkScan(b *testing.B) {
	board, err := Parse(drawBoard)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		board.Scan(LastMatch)
	}
}
