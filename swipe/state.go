// Package swipe implements swipeable list rows: a per-row gesture state
// machine that reveals a secondary action surface, and a Coordinator that
// keeps open/closed state stable for row ids across view recycling.
//
// Nothing in this package renders, blocks or starts goroutines. Hosts feed
// drag samples into a Row, call Step on every animation frame, and call
// Coordinator.Bind whenever a recycled row view is attached to an item.
package swipe

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSurface is returned when a row is built without both a main
	// and a secondary surface.
	ErrMissingSurface = errors.New("swipe: row needs exactly a main and a secondary surface")
	ErrInvalidEdge    = errors.New("swipe: invalid drag edge")
)

// State is the position state of a row. Codes are stable and persisted.
type State int

const (
	StateClosed   State = 0
	StateClosing  State = 1
	StateOpen     State = 2
	StateOpening  State = 3
	StateDragging State = 4
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateClosing:
		return "closing"
	case StateOpen:
		return "open"
	case StateOpening:
		return "opening"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Code returns the persisted integer code.
func (s State) Code() int { return int(s) }

// StateFromCode decodes a persisted code. Anything unknown is Closed.
func StateFromCode(code int) State {
	switch s := State(code); s {
	case StateClosed, StateClosing, StateOpen, StateOpening, StateDragging:
		return s
	default:
		return StateClosed
	}
}

// opened reports whether s counts as open for the open-only-one policy.
func (s State) opened() bool {
	return s == StateOpen || s == StateOpening
}
