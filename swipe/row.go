package swipe

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Surface is one of the two children of a row.
type Surface interface {
	Measure() Size
}

// GestureObserver receives every observed state transition of a row.
type GestureObserver interface {
	OnStateChanged(row *Row, state State)
}

// GestureObserverFunc adapts a function to GestureObserver.
type GestureObserverFunc func(row *Row, state State)

func (f GestureObserverFunc) OnStateChanged(row *Row, state State) { f(row, state) }

// SwipeObserver receives the outcome of user swipes.
type SwipeObserver interface {
	OnHalfSwipe(row *Row, opened bool)
	OnFullSwipe(row *Row)
}

// SwipeFuncs adapts a pair of functions to SwipeObserver. Nil fields are
// skipped.
type SwipeFuncs struct {
	HalfSwipe func(row *Row, opened bool)
	FullSwipe func(row *Row)
}

func (f SwipeFuncs) OnHalfSwipe(row *Row, opened bool) {
	if f.HalfSwipe != nil {
		f.HalfSwipe(row, opened)
	}
}

func (f SwipeFuncs) OnFullSwipe(row *Row) {
	if f.FullSwipe != nil {
		f.FullSwipe(row)
	}
}

type slide struct {
	from, to int
	elapsed  time.Duration
	duration time.Duration
	final    State
	dismiss  bool
}

// settleTask is the pending snap-back after a full swipe.
type settleTask struct {
	remaining time.Duration
}

// Row is the gesture state machine of one swipeable row. It is not safe for
// concurrent use; hosts drive it from their event loop.
type Row struct {
	edge      DragEdge
	main      Surface
	secondary Surface
	opts      settings
	log       zerolog.Logger

	container     Size
	padding       Insets
	mainSize      Size
	secondarySize Size
	rects         Rects
	laidOut       bool
	layoutPasses  int
	layoutWanted  bool

	state    State
	offset   int
	wantOpen bool
	locked   bool

	dragStartX      int
	dragStartOffset int
	tracker         velocityTracker

	slide  *slide
	settle *settleTask

	gesture GestureObserver
	swipe   SwipeObserver
}

// NewRow builds a row with the secondary surface anchored to edge.
func NewRow(edge DragEdge, main, secondary Surface, opts ...Option) (*Row, error) {
	if main == nil || secondary == nil {
		return nil, ErrMissingSurface
	}
	if !edge.valid() {
		return nil, ErrInvalidEdge
	}

	s := buildSettings(opts)
	r := &Row{
		edge:      edge,
		main:      main,
		secondary: secondary,
		opts:      s,
		log:       s.logger.With().Str("edge", edge.String()).Logger(),
		state:     StateClosed,
		wantOpen:  s.openBeforeLayout,
	}
	if s.openBeforeLayout {
		r.state = StateOpen
	}
	return r, nil
}

// MustRow is NewRow that panics on misconfiguration.
func MustRow(edge DragEdge, main, secondary Surface, opts ...Option) *Row {
	r, err := NewRow(edge, main, secondary, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Row) Edge() DragEdge     { return r.edge }
func (r *Row) State() State       { return r.state }
func (r *Row) Offset() int        { return r.offset }
func (r *Row) Rects() Rects       { return r.rects }
func (r *Row) Locked() bool       { return r.locked }
func (r *Row) IsOpened() bool     { return r.state == StateOpen }
func (r *Row) IsClosed() bool     { return r.state == StateClosed }
func (r *Row) Container() Size    { return r.container }
func (r *Row) Main() Surface      { return r.main }
func (r *Row) Secondary() Surface { return r.secondary }

// MainRect is the current position of the main surface.
func (r *Row) MainRect() Rect { return r.rects.MainClosed.Offset(r.offset) }

// SecondaryRect is the position of the secondary surface. It never moves.
func (r *Row) SecondaryRect() Rect { return r.rects.SecondaryClosed }

// Animating reports whether Step still has work to do.
func (r *Row) Animating() bool { return r.slide != nil || r.settle != nil }

// SetLocked blocks or allows user drags. Programmatic open and close still
// work on a locked row.
func (r *Row) SetLocked(lock bool) { r.locked = lock }

func (r *Row) SetSwipeObserver(o SwipeObserver) { r.swipe = o }

func (r *Row) setGestureObserver(o GestureObserver) { r.gesture = o }

// ShouldRequestLayout reports whether the row has completed fewer than two
// layout passes. Recycled rows measure wrong until their second pass.
func (r *Row) ShouldRequestLayout() bool { return r.layoutPasses < 2 }

// RequestLayout asks the host for another Layout call.
func (r *Row) RequestLayout() { r.layoutWanted = true }

// LayoutRequested reports whether RequestLayout was called since the last
// Layout.
func (r *Row) LayoutRequested() bool { return r.layoutWanted }

// Layout measures both surfaces inside container. Rects are recomputed only
// when a size changed; the row then snaps to the side it was last sent to.
func (r *Row) Layout(container Size, padding Insets) {
	mainSize := r.main.Measure()
	secondarySize := r.secondary.Measure()

	changed := !r.laidOut ||
		container != r.container ||
		padding != r.padding ||
		mainSize != r.mainSize ||
		secondarySize != r.secondarySize
	if changed {
		r.container = container
		r.padding = padding
		r.mainSize = mainSize
		r.secondarySize = secondarySize
		r.rects = ComputeRects(container, padding, mainSize, secondarySize, r.edge)
		r.laidOut = true
		r.snap(r.wantOpen, true)
	}

	r.layoutPasses++
	r.layoutWanted = false
}

// Capture starts a drag at pointer x. It fails on a locked row or before the
// first layout. Any slide or pending full-swipe settle is dropped and the
// drag continues from the current offset.
func (r *Row) Capture(x int, at time.Time) bool {
	if r.locked || !r.laidOut {
		return false
	}
	r.cancelMotion()
	r.dragStartX = x
	r.dragStartOffset = r.offset
	r.tracker.reset()
	r.tracker.add(x, at)
	r.setState(StateDragging, true)
	return true
}

// CaptureFromEdge starts a drag that began on a screen edge. Only the edge
// opposite the reveal edge is accepted, so a right-reveal row can be pulled
// from the left side of the screen.
func (r *Row) CaptureFromEdge(screenEdge DragEdge, x int, at time.Time) bool {
	if screenEdge != r.edge.Opposite() {
		return false
	}
	return r.Capture(x, at)
}

// Dragging reports whether a drag is in progress.
func (r *Row) Dragging() bool { return r.state == StateDragging }

// Move updates the offset during a drag, clamped between fully closed and
// the container bound in the reveal direction.
func (r *Row) Move(x int, at time.Time) {
	if r.state != StateDragging {
		return
	}
	r.tracker.add(x, at)
	lo, hi := dragRange(r.rects, r.container, r.edge)
	r.offset = clamp(r.dragStartOffset+x-r.dragStartX, lo, hi)
}

// Release ends a drag and applies the decision policy. ok is false when no
// drag was in progress.
func (r *Row) Release(at time.Time) (d Decision, ok bool) {
	if r.state != StateDragging {
		return Decision{}, false
	}
	v := r.tracker.velocity(at) / r.opts.density
	return r.decide(v), true
}

// CancelDrag ends a drag as a release with zero velocity.
func (r *Row) CancelDrag() (Decision, bool) {
	if r.state != StateDragging {
		return Decision{}, false
	}
	return r.decide(0), true
}

func (r *Row) decide(velocity float64) Decision {
	d := Decide(Release{
		Edge:           r.edge,
		Rects:          r.rects,
		ContainerWidth: r.container.Width,
		Offset:         r.offset,
		Velocity:       velocity,
	})
	r.log.Debug().
		Int("offset", r.offset).
		Float64("velocity", velocity).
		Int("visible", d.VisibleWidth).
		Float64("boundary", d.Boundary).
		Int("pivot", d.Pivot).
		Stringer("outcome", d.Outcome).
		Msg("release")

	switch d.Outcome {
	case OutcomeFullSwipe:
		r.dismiss()
	case OutcomeOpen:
		r.slideTo(true, true)
		r.notifyHalfSwipe(true)
	default:
		r.slideTo(false, true)
		r.notifyHalfSwipe(false)
	}
	return d
}

// Open moves the row to fully open, animated or as an immediate snap.
func (r *Row) Open(animate bool) { r.moveTo(true, animate, true) }

// Close moves the row to fully closed, animated or as an immediate snap.
func (r *Row) Close(animate bool) { r.moveTo(false, animate, true) }

func (r *Row) moveTo(open, animate, notify bool) {
	if animate {
		r.slideTo(open, notify)
		return
	}
	r.snap(open, notify)
}

// Abort stops any slide and snaps to whichever of open or closed the main
// surface is nearer to. A full swipe in flight, sliding off or waiting out
// its settle delay, always snaps closed and its notification is dropped.
// It never notifies observers.
func (r *Row) Abort() {
	open := false
	if r.laidOut && !r.dismissing() {
		open = abs(r.offset-openOffset(r.rects)) < abs(r.offset)
	}
	r.snap(open, false)
}

func (r *Row) dismissing() bool {
	return r.settle != nil || (r.slide != nil && r.slide.dismiss)
}

// Step advances the slide and the settle countdown by dt. It returns true
// while more frames are needed.
func (r *Row) Step(dt time.Duration) bool {
	switch {
	case r.slide != nil:
		s := r.slide
		s.elapsed += dt
		if s.duration <= 0 || s.elapsed >= s.duration {
			r.offset = s.to
			r.arrive(true)
		} else {
			progress := float64(s.elapsed) / float64(s.duration)
			r.offset = s.from + int(math.Round(float64(s.to-s.from)*progress))
		}
	case r.settle != nil:
		r.settle.remaining -= dt
		if r.settle.remaining <= 0 {
			r.settle = nil
			r.snap(false, true)
			r.notifyFullSwipe()
		}
	}
	return r.Animating()
}

func (r *Row) slideTo(open, notify bool) {
	r.cancelMotion()
	r.wantOpen = open
	if !r.laidOut {
		r.snap(open, notify)
		return
	}

	s := &slide{from: r.offset, duration: r.opts.slideDuration, final: StateClosed}
	moving := StateClosing
	if open {
		s.to = openOffset(r.rects)
		s.final = StateOpen
		moving = StateOpening
	}
	r.slide = s
	r.setState(moving, notify)
	if r.offset == s.to {
		r.arrive(notify)
	}
}

// dismiss slides the main surface off the container. The row stays Closing
// until the settle delay has passed.
func (r *Row) dismiss() {
	r.cancelMotion()
	r.wantOpen = false

	lo, hi := dragRange(r.rects, r.container, r.edge)
	target := lo
	if r.edge == EdgeLeft {
		target = hi
	}
	r.slide = &slide{
		from:     r.offset,
		to:       target,
		duration: r.opts.slideDuration,
		final:    StateClosed,
		dismiss:  true,
	}
	r.setState(StateClosing, true)
	if r.offset == target {
		r.arrive(true)
	}
}

func (r *Row) arrive(notify bool) {
	s := r.slide
	r.slide = nil
	if s.dismiss {
		r.settle = &settleTask{remaining: r.opts.settleDelay}
		return
	}
	r.setState(s.final, notify)
}

func (r *Row) snap(open, notify bool) {
	r.cancelMotion()
	r.wantOpen = open
	if open {
		r.offset = openOffset(r.rects)
		r.setState(StateOpen, notify)
		return
	}
	r.offset = 0
	r.setState(StateClosed, notify)
}

func (r *Row) cancelMotion() {
	r.slide = nil
	r.settle = nil
}

func (r *Row) setState(s State, notify bool) {
	if s == r.state {
		return
	}
	r.state = s
	if notify && r.gesture != nil {
		r.gesture.OnStateChanged(r, s)
	}
}

func (r *Row) notifyHalfSwipe(opened bool) {
	if r.swipe != nil {
		r.swipe.OnHalfSwipe(r, opened)
	}
}

func (r *Row) notifyFullSwipe() {
	if r.swipe != nil {
		r.swipe.OnFullSwipe(r)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
