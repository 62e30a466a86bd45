package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/connectterm/pkg/board"
	"github.com/qnkhuat/connectterm/pkg/event"
)

// pointer remembers the last button state so that only presses, not
// drags or releases, are reported
type pointer struct {
	buttons tcell.ButtonMask
}

// translate converts a tcell event into a game input
func (p *pointer) translate(ev tcell.Event) event.Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return event.Input{Action: event.ActionQuit}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' || r == 'Q' {
				return event.Input{Action: event.ActionQuit}
			} else if r >= '1' && r < '1'+board.Columns {
				return event.Input{Action: event.ActionDrop, Column: int(r - '1')}
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0
		p.buttons = buttons

		if pressed {
			x, y := ev.Position()
			return event.Input{Action: event.ActionPointer, X: x, Y: y}
		}
	case *tcell.EventResize:
		return event.Input{Action: event.ActionRedraw}
	}

	return event.Input{}
}
