package event

// Action is what an input event asks the game to do
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionPointer // primary button pressed at X, Y
	ActionDrop    // drop into Column
	ActionRedraw
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionPointer:
		return "pointer"
	case ActionDrop:
		return "drop"
	case ActionRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// Input is a single event taken from the frame's event queue
type Input struct {
	Action Action
	X, Y   int
	Column int
}
