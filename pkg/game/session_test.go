package game

import (
	"testing"
	"time"

	"github.com/qnkhuat/connectterm/pkg/board"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestSession(t *testing.T, b *board.Board) (*Session, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSession(b, Options{Name: "test", WinDelay: time.Second, Clock: clock.Now})
	return s, clock
}

func TestSessionWinLatches(t *testing.T) {
	s, clock := newTestSession(t, nil)

	// Red on the bottom row, Yellow stacking on the right
	columns := []int{0, 6, 1, 6, 2, 6}
	for _, column := range columns {
		p, err := s.Drop(column)
		require.NoError(t, err)
		require.Equal(t, board.Placed, p.Outcome)
		require.Equal(t, StateInProgress, s.State())
		require.Equal(t, board.Empty, s.Winner())
	}

	p, err := s.Drop(3)
	require.NoError(t, err)
	require.Equal(t, board.PlayerA, p.Player)
	require.Equal(t, StateWon, s.State())
	require.Equal(t, board.PlayerA, s.Winner())
	require.Len(t, s.Result().Line, board.ToWin)
	require.Len(t, s.Placements(), 7)

	before := s.Board.Encode()
	for column := 0; column < board.Columns; column++ {
		_, err := s.Drop(column)
		require.ErrorIs(t, err, ErrGameOver)
	}
	require.Equal(t, before, s.Board.Encode())
	require.Len(t, s.Placements(), 7)

	clock.Advance(500 * time.Millisecond)
	require.Equal(t, StateWon, s.Tick())

	clock.Advance(500 * time.Millisecond)
	require.Equal(t, StateTerminated, s.Tick())
	require.Equal(t, board.PlayerA, s.Winner())
}

func TestSessionColumnFullKeepsTurn(t *testing.T) {
	s, _ := newTestSession(t, nil)

	for i := 0; i < board.Rows; i++ {
		_, err := s.Drop(2)
		require.NoError(t, err)
	}

	turn := s.Board.Turn()
	p, err := s.Drop(2)
	require.NoError(t, err)
	require.Equal(t, board.ColumnFull, p.Outcome)
	require.Equal(t, turn, s.Board.Turn())
	require.Equal(t, StateInProgress, s.State())
	require.Len(t, s.Placements(), board.Rows)
}

func TestSessionQuit(t *testing.T) {
	s, _ := newTestSession(t, nil)

	_, err := s.Drop(0)
	require.NoError(t, err)

	s.Quit()
	require.Equal(t, StateTerminated, s.State())
	require.Equal(t, StateTerminated, s.Tick())

	_, err = s.Drop(1)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestSessionQuitWhileWon(t *testing.T) {
	b, err := board.Parse("0000000/0000000/0000000/0000000/2220000/1111000")
	require.NoError(t, err)

	s, _ := newTestSession(t, b)
	require.Equal(t, StateWon, s.State())

	s.Quit()
	require.Equal(t, StateTerminated, s.State())
}

func TestSessionStartsWon(t *testing.T) {
	b, err := board.Parse("0000000/0000000/0000000/0000000/2220000/1111000")
	require.NoError(t, err)

	s, clock := newTestSession(t, b)
	require.Equal(t, StateWon, s.State())
	require.Equal(t, board.PlayerA, s.Winner())

	// The delay starts on the first tick
	clock.Advance(time.Hour)
	require.Equal(t, StateWon, s.Tick())

	clock.Advance(time.Second)
	require.Equal(t, StateTerminated, s.Tick())
}

func TestSessionOutOfRange(t *testing.T) {
	s, _ := newTestSession(t, nil)

	_, err := s.Drop(board.Columns)
	require.ErrorIs(t, err, board.ErrColumnOutOfRange)
	require.Equal(t, board.PlayerA, s.Board.Turn())
	require.Equal(t, StateInProgress, s.State())
}

func TestSessionFirstMatch(t *testing.T) {
	b, err := board.Parse("0000000/0000000/0000002/0000002/0000002/1111002")
	require.NoError(t, err)

	s := NewSession(b, Options{Precedence: board.FirstMatch})
	require.Equal(t, board.PlayerA, s.Winner())

	s = NewSession(b, Options{})
	require.Equal(t, board.PlayerB, s.Winner())
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(nil, Options{})
	require.NotNil(t, s.Board)
	require.Equal(t, DefaultWinDelay, s.delay)
	require.Equal(t, StateInProgress, s.Tick())
}
