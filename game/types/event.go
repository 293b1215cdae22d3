package types

// EventKind distinguishes input events delivered by a frontend.
type EventKind int

const (
	QuitEvent EventKind = iota
	DirectionEvent
)

// Event is one discrete input event. Dir is only meaningful for
// DirectionEvent.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// Quit returns a quit request event.
func Quit() Event {
	return Event{Kind: QuitEvent}
}

// Pressed returns a direction key event.
func Pressed(d Direction) Event {
	return Event{Kind: DirectionEvent, Dir: d}
}
