package swipe

import "time"

const (
	// FlingThreshold is the release speed, in density-independent units per
	// second, that counts as a decisive fling.
	FlingThreshold = 300.0

	// FullSwipeDivisor sets the full-swipe boundary at container width / 2.2.
	FullSwipeDivisor = 2.2

	// SettleDelay is how long a fully dismissed main surface stays off the
	// container before snapping back closed.
	SettleDelay = 300 * time.Millisecond
)

// Outcome is what a release resolves to.
type Outcome int

const (
	OutcomeClose Outcome = iota
	OutcomeOpen
	OutcomeFullSwipe
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOpen:
		return "open"
	case OutcomeFullSwipe:
		return "full-swipe"
	default:
		return "close"
	}
}

// Release holds everything the decision policy looks at.
type Release struct {
	Edge           DragEdge
	Rects          Rects
	ContainerWidth int
	// Offset is the main surface displacement from MainClosed.Left.
	Offset int
	// Velocity is the signed horizontal release speed in density-independent
	// units per second; positive is rightward.
	Velocity float64
}

// Decision is the result of Decide.
type Decision struct {
	Outcome Outcome
	// VisibleWidth is how much of the main surface remains inside the
	// container, measured from the edge opposite the reveal edge.
	VisibleWidth int
	Boundary     float64
	Pivot        int
}

// HalfSwipe reports whether the decision notifies OnHalfSwipe.
func (d Decision) HalfSwipe() bool { return d.Outcome != OutcomeFullSwipe }

// Opened reports the isOpened flag carried by the half-swipe notification.
func (d Decision) Opened() bool { return d.Outcome == OutcomeOpen }

// Decide picks open, close or full swipe for a release. It is a pure
// function of its input. A release exactly on the pivot with no fling
// resolves to close.
func Decide(r Release) Decision {
	d := Decision{
		Boundary: float64(r.ContainerWidth) / FullSwipeDivisor,
		Pivot:    HalfwayPivot(r.Rects, r.Edge),
	}
	mainRect := r.Rects.MainClosed.Offset(r.Offset)

	var passedPivot, fling bool
	switch r.Edge {
	case EdgeLeft:
		d.VisibleWidth = r.ContainerWidth - mainRect.Left
		passedPivot = mainRect.Left > d.Pivot
		fling = r.Velocity >= FlingThreshold
	default:
		d.VisibleWidth = mainRect.Right
		passedPivot = mainRect.Right < d.Pivot
		fling = r.Velocity <= -FlingThreshold
	}

	switch {
	case float64(d.VisibleWidth) < d.Boundary:
		d.Outcome = OutcomeFullSwipe
	case fling || passedPivot:
		d.Outcome = OutcomeOpen
	default:
		d.Outcome = OutcomeClose
	}
	return d
}
