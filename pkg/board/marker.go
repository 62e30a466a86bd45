package board

// Marker is the occupancy of a single cell
type Marker int

const (
	Empty Marker = iota
	PlayerA
	PlayerB
)

func (m Marker) String() string {
	switch m {
	case Empty:
		return "Empty"
	case PlayerA:
		return "Red"
	case PlayerB:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// Rune is the single character used by the text encoding of a board
func (m Marker) Rune() rune {
	switch m {
	case Empty:
		return '.'
	case PlayerA:
		return 'R'
	case PlayerB:
		return 'Y'
	default:
		return '?'
	}
}

// Player reports whether m is one of the two player markers
func (m Marker) Player() bool {
	return m == PlayerA || m == PlayerB
}

// Valid reports whether m is a known marker, empty included
func (m Marker) Valid() bool {
	return m == Empty || m.Player()
}

// Opponent returns the other player
func (m Marker) Opponent() (Marker, error) {
	switch m {
	case PlayerA:
		return PlayerB, nil
	case PlayerB:
		return PlayerA, nil
	default:
		return m, ErrUnknownPlayer
	}
}
