package swipe

import (
	"fmt"
	"strings"
)

// DragEdge is the side of the row the secondary surface is anchored to.
type DragEdge int

const (
	EdgeRight DragEdge = iota
	EdgeLeft
)

func (e DragEdge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return fmt.Sprintf("DragEdge(%d)", int(e))
	}
}

// Opposite returns the other edge.
func (e DragEdge) Opposite() DragEdge {
	if e == EdgeLeft {
		return EdgeRight
	}
	return EdgeLeft
}

func (e DragEdge) valid() bool {
	return e == EdgeLeft || e == EdgeRight
}

// ParseEdge accepts "left" or "right", case-insensitive.
func ParseEdge(s string) (DragEdge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return EdgeRight, nil
	case "left":
		return EdgeLeft, nil
	default:
		return EdgeRight, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
	}
}

// Size is a measured width and height.
type Size struct {
	Width  int
	Height int
}

// Insets is padding around the row's content box.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Rect is an axis-aligned rectangle in row-local coordinates.
// Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Offset returns r moved horizontally by dx.
func (r Rect) Offset(dx int) Rect {
	r.Left += dx
	r.Right += dx
	return r
}

// Rects are the resting positions of both surfaces.
type Rects struct {
	MainClosed      Rect
	MainOpen        Rect
	SecondaryClosed Rect
	SecondaryOpen   Rect
}

// ComputeRects lays out the main and secondary surfaces inside a container.
// Both surfaces are flush to the configured edge of the padded box; the open
// main rect is the closed one shifted toward the edge by the secondary width.
func ComputeRects(container Size, padding Insets, main, secondary Size, edge DragEdge) Rects {
	mainClosed := placeChild(container, padding, main, edge)
	secClosed := placeChild(container, padding, secondary, edge)

	shift := secClosed.Width()
	if edge == EdgeRight {
		shift = -shift
	}

	return Rects{
		MainClosed:      mainClosed,
		MainOpen:        mainClosed.Offset(shift),
		SecondaryClosed: secClosed,
		SecondaryOpen:   secClosed,
	}
}

func placeChild(container Size, padding Insets, child Size, edge DragEdge) Rect {
	minLeft := padding.Left
	maxRight := max(container.Width-padding.Right, 0)
	minTop := padding.Top
	maxBottom := max(container.Height-padding.Bottom, 0)

	r := Rect{
		Top:    min(minTop, maxBottom),
		Bottom: min(child.Height+minTop, maxBottom),
	}
	switch edge {
	case EdgeLeft:
		r.Left = min(minLeft, maxRight)
		r.Right = min(child.Width+minLeft, maxRight)
	default:
		r.Left = max(maxRight-child.Width, minLeft)
		r.Right = max(maxRight, minLeft)
	}
	return r
}

// HalfwayPivot is the x position the main surface's leading edge must pass
// for a slow release to open the row.
func HalfwayPivot(rects Rects, edge DragEdge) int {
	half := rects.SecondaryClosed.Width() / 2
	if edge == EdgeLeft {
		return rects.MainClosed.Left + half
	}
	return rects.MainClosed.Right - half
}

// dragRange returns the offsets the main surface may occupy: from fully
// closed to flush against the container bound in the reveal direction.
func dragRange(rects Rects, container Size, edge DragEdge) (lo, hi int) {
	if edge == EdgeLeft {
		return 0, max(container.Width-rects.MainClosed.Left, 0)
	}
	return -max(rects.MainClosed.Right, 0), 0
}

// openOffset is the offset of the main surface when fully open.
func openOffset(rects Rects) int {
	return rects.MainOpen.Left - rects.MainClosed.Left
}
