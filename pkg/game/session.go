// Package game holds the session state machine that owns a board and
// decides when the game is over.
package game

import (
	"errors"
	"time"

	"github.com/qnkhuat/connectterm/pkg/board"
	"go.uber.org/zap"
)

// DefaultWinDelay is how long the winner stays on screen before the
// session terminates
const DefaultWinDelay = time.Second

const ErrGameOver board.Error = "game is over"

type State int

const (
	StateInProgress State = iota
	StateWon
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type Options struct {
	Name       string
	WinDelay   time.Duration
	Precedence board.Precedence
	Logger     *zap.SugaredLogger
	Clock      func() time.Time
}

// Session is a single game. It is not safe for concurrent use; the frame
// loop is its only caller.
type Session struct {
	Name  string
	Board *board.Board

	state  State
	result board.Result
	wonAt  time.Time

	delay      time.Duration
	precedence board.Precedence
	log        *zap.SugaredLogger
	now        func() time.Time

	placements []board.Placement
}

// NewSession starts a session on b, or on an empty board when b is nil.
// A board that already holds four in a row starts the session as won.
func NewSession(b *board.Board, opts Options) *Session {
	if b == nil {
		b = board.New()
	}

	s := &Session{
		Name:       opts.Name,
		Board:      b,
		delay:      opts.WinDelay,
		precedence: opts.Precedence,
		log:        opts.Logger,
		now:        opts.Clock,
	}

	if s.delay <= 0 {
		s.delay = DefaultWinDelay
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if res := b.Scan(s.precedence); res.Winner != board.Empty {
		s.state = StateWon
		s.result = res
		s.log.Infow("session starts won", "winner", res.Winner, "line", res.Line)
	}

	return s
}

func (s *Session) State() State {
	return s.state
}

// Winner returns the latched winner, or board.Empty
func (s *Session) Winner() board.Marker {
	return s.result.Winner
}

// Result returns the latched scan result, including the winning line
func (s *Session) Result() board.Result {
	return s.result
}

// Placements returns the successful placements in order
func (s *Session) Placements() []board.Placement {
	return s.placements
}

// Drop places the current player's piece in column. Drops are refused
// with ErrGameOver once the session is won or terminated.
func (s *Session) Drop(column int) (board.Placement, error) {
	if s.state != StateInProgress {
		return board.Placement{Column: column}, ErrGameOver
	}

	player := s.Board.Turn()

	p, err := s.Board.Place(column, player)
	if err != nil {
		if !errors.Is(err, board.ErrUnknownPlayer) {
			return p, err
		}

		// The piece is down, only the turn is stuck
		s.log.Errorw("failed to change player", "error", err, "turn", int(s.Board.Turn()))
	}

	switch p.Outcome {
	case board.ColumnFull:
		s.log.Debugw("column full", "column", column, "player", player)
		return p, nil
	case board.Placed:
		s.placements = append(s.placements, p)
		s.log.Debugw("placed", "player", p.Player, "row", p.Row, "column", p.Column)
	}

	if res := s.Board.Scan(s.precedence); res.Winner != board.Empty {
		s.state = StateWon
		s.result = res
		s.wonAt = s.now()
		s.log.Infow("winner", "winner", res.Winner, "direction", res.Direction, "line", res.Line, "moves", s.Board.Moves())
	}

	return p, nil
}

// Quit terminates the session immediately
func (s *Session) Quit() {
	if s.state == StateTerminated {
		return
	}

	s.log.Infow("quit", "state", s.state)
	s.state = StateTerminated
}

// Tick advances the session clock. A won session terminates once the
// win delay has passed since the winning placement.
func (s *Session) Tick() State {
	if s.state != StateWon {
		return s.state
	}

	now := s.now()
	if s.wonAt.IsZero() {
		s.wonAt = now
	}

	if now.Sub(s.wonAt) >= s.delay {
		s.state = StateTerminated
		s.log.Infow("terminated after win", "winner", s.result.Winner)
	}

	return s.state
}
