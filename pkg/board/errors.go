package board

// Error is a constant error value
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnOutOfRange Error = "column out of range"
	ErrUnknownMarker    Error = "unknown marker"
	ErrUnknownPlayer    Error = "unknown player"
	ErrBadBoard         Error = "malformed board"
)
