// Package gui draws a game session on a terminal and feeds terminal
// input back into it, one frame per tick.
package gui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/connectterm/pkg/event"
	"github.com/qnkhuat/connectterm/pkg/game"
	"go.uber.org/zap"
)

const (
	DefaultTickRate = 30
	EventQueueSize  = 64
)

// NewScreen initializes the terminal screen with mouse reporting
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	s.SetStyle(DefStyle)
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	return s, nil
}

// Loop runs a session on a screen
type Loop struct {
	Screen   tcell.Screen
	Session  *game.Session
	Theme    Theme
	TickRate int // frames per second
	Logger   *zap.SugaredLogger

	pointer pointer
}

func (l *Loop) log() *zap.SugaredLogger {
	if l.Logger == nil {
		l.Logger = zap.NewNop().Sugar()
	}
	return l.Logger
}

// Run draws a frame every tick until the session terminates or ctx is
// done. Cancelling ctx quits the session.
func (l *Loop) Run(ctx context.Context) error {
	rate := l.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, EventQueueSize)
	go pollEvents(ctx, l.Screen, events)

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	l.log().Infow("loop started", "session", l.Session.Name, "fps", rate)

	for {
		if err := l.Frame(events); err != nil {
			return err
		}

		if l.Session.State() == game.StateTerminated {
			l.log().Infow("loop stopped", "session", l.Session.Name, "winner", l.Session.Winner())
			return nil
		}

		select {
		case <-ctx.Done():
			l.Session.Quit()
			return nil
		case <-ticker.C:
		}
	}
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(ctx context.Context, s tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Frame draws the session, handles every pending event without
// blocking, shows the frame and advances the session clock.
func (l *Loop) Frame(events <-chan tcell.Event) error {
	l.Screen.Clear()
	if err := Render(l.Screen, FrameOf(l.Session, l.Theme)); err != nil {
		return fmt.Errorf("failed to render session %s: %w", l.Session.Name, err)
	}

DRAIN:
	for {
		select {
		case ev := <-events:
			l.handle(l.pointer.translate(ev))
		default:
			break DRAIN
		}
	}

	l.Screen.Show()
	l.Session.Tick()

	return nil
}

func (l *Loop) handle(in event.Input) {
	switch in.Action {
	case event.ActionQuit:
		l.Session.Quit()
	case event.ActionRedraw:
		l.Screen.Sync()
	case event.ActionPointer:
		if l.Session.State() != game.StateInProgress {
			return
		}

		w, h := l.Screen.Size()
		column, ok := layoutFor(w, h).column(in.X, in.Y)
		if !ok {
			return
		}
		l.drop(column)
	case event.ActionDrop:
		if l.Session.State() != game.StateInProgress {
			return
		}
		l.drop(in.Column)
	}
}

func (l *Loop) drop(column int) {
	p, err := l.Session.Drop(column)
	if err != nil && !errors.Is(err, game.ErrGameOver) {
		l.log().Warnw("drop failed", "session", l.Session.Name, "column", column, "error", err)
		return
	}

	l.log().Debugw("drop", "session", l.Session.Name, "placement", p.String())
}
