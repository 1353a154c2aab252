package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box Size

func (b box) Measure() Size { return Size(b) }

type recorder struct {
	states []State
	half   []bool
	full   int
}

func (r *recorder) OnStateChanged(_ *Row, s State) { r.states = append(r.states, s) }
func (r *recorder) OnHalfSwipe(_ *Row, opened bool)  { r.half = append(r.half, opened) }
func (r *recorder) OnFullSwipe(_ *Row)               { r.full++ }

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func newLaidOutRow(t *testing.T, edge DragEdge, opts ...Option) *Row {
	t.Helper()
	r, err := NewRow(edge, box{Width: 300, Height: 1}, box{Width: 80, Height: 1}, opts...)
	require.NoError(t, err)
	r.Layout(Size{Width: 300, Height: 1}, Insets{})
	return r
}

func observed(r *Row) *recorder {
	rec := &recorder{}
	r.setGestureObserver(rec)
	r.SetSwipeObserver(rec)
	return rec
}

func TestNewRow_Validation(t *testing.T) {
	_, err := NewRow(EdgeRight, nil, box{Width: 1})
	require.ErrorIs(t, err, ErrMissingSurface)

	_, err = NewRow(DragEdge(7), box{Width: 1}, box{Width: 1})
	require.ErrorIs(t, err, ErrInvalidEdge)

	assert.Panics(t, func() { MustRow(EdgeLeft, box{}, nil) })
}

func TestRow_ShortDragSpringsBack(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	require.True(t, r.Capture(250, at(0)))
	r.Move(210, at(50))
	assert.Equal(t, -40, r.Offset())

	d, ok := r.Release(at(500))
	require.True(t, ok)
	assert.Equal(t, OutcomeClose, d.Outcome)
	assert.Equal(t, StateClosing, r.State())
	assert.Equal(t, []bool{false}, rec.half)

	assert.False(t, r.Step(200*time.Millisecond))
	assert.True(t, r.IsClosed())
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, []State{StateDragging, StateClosing, StateClosed}, rec.states)
	assert.Zero(t, rec.full)
}

func TestRow_FullSwipeSettlesThenNotifies(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	require.True(t, r.Capture(250, at(0)))
	r.Move(50, at(50))
	d, ok := r.Release(at(1000))
	require.True(t, ok)
	assert.Equal(t, OutcomeFullSwipe, d.Outcome)
	assert.Equal(t, StateClosing, r.State())
	assert.Empty(t, rec.half)

	assert.True(t, r.Step(200*time.Millisecond))
	assert.Equal(t, -300, r.Offset())
	assert.Equal(t, StateClosing, r.State())

	assert.True(t, r.Step(299*time.Millisecond))
	assert.Zero(t, rec.full)

	assert.False(t, r.Step(time.Millisecond))
	assert.True(t, r.IsClosed())
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, 1, rec.full)

	r.Step(time.Second)
	assert.Equal(t, 1, rec.full)
	assert.Equal(t, []State{StateDragging, StateClosing, StateClosed}, rec.states)
}

func TestRow_FullSwipe_LeftEdge(t *testing.T) {
	r := newLaidOutRow(t, EdgeLeft)
	rec := observed(r)

	require.True(t, r.Capture(10, at(0)))
	r.Move(220, at(40))
	d, _ := r.Release(at(900))
	assert.Equal(t, OutcomeFullSwipe, d.Outcome)

	r.Step(200 * time.Millisecond)
	assert.Equal(t, 300, r.Offset())
	r.Step(SettleDelay)
	assert.Equal(t, 1, rec.full)
	assert.True(t, r.IsClosed())
}

func TestRow_AbortDropsPendingSettle(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	r.Capture(250, at(0))
	r.Move(50, at(50))
	r.Release(at(1000))
	r.Step(200 * time.Millisecond)
	require.True(t, r.Animating())

	r.Abort()
	assert.False(t, r.Animating())
	assert.True(t, r.IsClosed())
	assert.Equal(t, 0, r.Offset())
	r.Step(time.Second)
	assert.Zero(t, rec.full)
}

func TestRow_AbortDuringFullSwipeSlideCloses(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	r.Capture(250, at(0))
	r.Move(50, at(50))
	r.Release(at(1000))
	r.Step(150 * time.Millisecond)
	require.Less(t, r.Offset(), -80)

	r.Abort()
	assert.True(t, r.IsClosed())
	assert.Equal(t, 0, r.Offset())
	r.Step(time.Second)
	assert.Zero(t, rec.full)
}

func TestRow_CaptureDuringSettleDropsFullSwipe(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	r.Capture(250, at(0))
	r.Move(50, at(50))
	d, _ := r.Release(at(1000))
	require.Equal(t, OutcomeFullSwipe, d.Outcome)
	r.Step(200 * time.Millisecond)
	require.Equal(t, -300, r.Offset())

	require.True(t, r.Capture(100, at(1300)))
	assert.True(t, r.Dragging())
	r.Step(SettleDelay + time.Second)
	assert.Zero(t, rec.full)

	r.Move(390, at(1900))
	d, _ = r.Release(at(2500))
	require.Equal(t, OutcomeClose, d.Outcome)
	for r.Step(16 * time.Millisecond) {
	}
	assert.True(t, r.IsClosed())
	assert.Zero(t, rec.full)
}

func TestRow_FlingOpens(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	r.Capture(250, at(0))
	r.Move(240, at(10))
	r.Move(230, at(20))
	d, _ := r.Release(at(20))

	assert.Equal(t, OutcomeOpen, d.Outcome)
	assert.Equal(t, []bool{true}, rec.half)
	assert.Equal(t, StateOpening, r.State())

	r.Step(200 * time.Millisecond)
	assert.True(t, r.IsOpened())
	assert.Equal(t, -80, r.Offset())
}

func TestRow_DensityScalesVelocity(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight, WithDensity(4))

	r.Capture(250, at(0))
	r.Move(240, at(10))
	r.Move(230, at(20))
	d, _ := r.Release(at(20))

	assert.Equal(t, OutcomeClose, d.Outcome)
}

func TestRow_MoveIsClamped(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)

	r.Capture(100, at(0))
	r.Move(200, at(10))
	assert.Equal(t, 0, r.Offset())

	r.Move(-500, at(20))
	assert.Equal(t, -300, r.Offset())
}

func TestRow_LockBlocksCaptureOnly(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	r.SetLocked(true)

	assert.False(t, r.Capture(250, at(0)))
	assert.True(t, r.IsClosed())

	r.Open(true)
	assert.Equal(t, StateOpening, r.State())
}

func TestRow_CaptureNeedsLayout(t *testing.T) {
	r := MustRow(EdgeRight, box{Width: 300, Height: 1}, box{Width: 80, Height: 1})
	assert.False(t, r.Capture(10, at(0)))
}

func TestRow_CaptureFromEdge(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)

	assert.False(t, r.CaptureFromEdge(EdgeRight, 299, at(0)))
	assert.False(t, r.Dragging())
	assert.True(t, r.CaptureFromEdge(EdgeLeft, 0, at(0)))
	assert.True(t, r.Dragging())
}

func TestRow_CaptureDuringSlideKeepsOffset(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)

	r.Open(true)
	r.Step(100 * time.Millisecond)
	require.Equal(t, -40, r.Offset())

	require.True(t, r.Capture(150, at(0)))
	assert.False(t, r.Animating())
	assert.Equal(t, -40, r.Offset())

	r.Move(140, at(10))
	assert.Equal(t, -50, r.Offset())
}

func TestRow_ReleaseWithoutDrag(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)

	_, ok := r.Release(at(0))
	assert.False(t, ok)
	_, ok = r.CancelDrag()
	assert.False(t, ok)
}

func TestRow_CancelDragUsesZeroVelocity(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)

	r.Capture(250, at(0))
	r.Move(240, at(5))
	r.Move(150, at(10))
	d, ok := r.CancelDrag()
	require.True(t, ok)
	assert.Equal(t, OutcomeOpen, d.Outcome)
}

func TestRow_ProgrammaticNotifications(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	rec := observed(r)

	r.Open(true)
	r.Step(DefaultSlideDuration)
	r.Close(false)
	r.Close(false)

	assert.Equal(t, []State{StateOpening, StateOpen, StateClosed}, rec.states)
	assert.Empty(t, rec.half)
}

func TestRow_OpenBeforeLayout(t *testing.T) {
	r, err := NewRow(EdgeRight, box{Width: 300, Height: 1}, box{Width: 80, Height: 1}, OpenBeforeLayout())
	require.NoError(t, err)
	assert.True(t, r.IsOpened())

	r.Layout(Size{Width: 300, Height: 1}, Insets{})
	assert.True(t, r.IsOpened())
	assert.Equal(t, -80, r.Offset())
	assert.Equal(t, Rect{Left: -80, Top: 0, Right: 220, Bottom: 1}, r.MainRect())
}

func TestRow_LayoutKeepsSide(t *testing.T) {
	r := newLaidOutRow(t, EdgeRight)
	r.Open(false)

	r.Layout(Size{Width: 200, Height: 1}, Insets{})
	assert.True(t, r.IsOpened())
	assert.Equal(t, -80, r.Offset())
	assert.Equal(t, Rect{Left: 120, Top: 0, Right: 200, Bottom: 1}, r.SecondaryRect())
}

func TestRow_LayoutPasses(t *testing.T) {
	r := MustRow(EdgeLeft, box{Width: 10, Height: 1}, box{Width: 4, Height: 1})
	assert.True(t, r.ShouldRequestLayout())

	r.Layout(Size{Width: 10, Height: 1}, Insets{})
	assert.True(t, r.ShouldRequestLayout())

	r.RequestLayout()
	assert.True(t, r.LayoutRequested())

	r.Layout(Size{Width: 10, Height: 1}, Insets{})
	assert.False(t, r.ShouldRequestLayout())
	assert.False(t, r.LayoutRequested())
}
