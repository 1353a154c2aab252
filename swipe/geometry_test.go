package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRects_RightEdge(t *testing.T) {
	rects := ComputeRects(Size{Width: 300, Height: 1}, Insets{}, Size{Width: 300, Height: 1}, Size{Width: 80, Height: 1}, EdgeRight)

	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 300, Bottom: 1}, rects.MainClosed)
	assert.Equal(t, Rect{Left: -80, Top: 0, Right: 220, Bottom: 1}, rects.MainOpen)
	assert.Equal(t, Rect{Left: 220, Top: 0, Right: 300, Bottom: 1}, rects.SecondaryClosed)
	assert.Equal(t, rects.SecondaryClosed, rects.SecondaryOpen)
	assert.Equal(t, 260, HalfwayPivot(rects, EdgeRight))
}

func TestComputeRects_LeftEdge(t *testing.T) {
	rects := ComputeRects(Size{Width: 300, Height: 1}, Insets{}, Size{Width: 300, Height: 1}, Size{Width: 80, Height: 1}, EdgeLeft)

	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 300, Bottom: 1}, rects.MainClosed)
	assert.Equal(t, Rect{Left: 80, Top: 0, Right: 380, Bottom: 1}, rects.MainOpen)
	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 80, Bottom: 1}, rects.SecondaryClosed)
	assert.Equal(t, 40, HalfwayPivot(rects, EdgeLeft))
}

func TestComputeRects_Padding(t *testing.T) {
	pad := Insets{Left: 2, Top: 1, Right: 2, Bottom: 1}
	rects := ComputeRects(Size{Width: 300, Height: 4}, pad, Size{Width: 296, Height: 2}, Size{Width: 80, Height: 2}, EdgeRight)

	assert.Equal(t, Rect{Left: 2, Top: 1, Right: 298, Bottom: 3}, rects.MainClosed)
	assert.Equal(t, Rect{Left: 218, Top: 1, Right: 298, Bottom: 3}, rects.SecondaryClosed)
	assert.Equal(t, 258, HalfwayPivot(rects, EdgeRight))
}

func TestComputeRects_ClampsOversizedChildren(t *testing.T) {
	rects := ComputeRects(Size{Width: 50, Height: 1}, Insets{}, Size{Width: 90, Height: 3}, Size{Width: 20, Height: 1}, EdgeLeft)

	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 50, Bottom: 1}, rects.MainClosed)
}

func TestComputeRects_OpenShiftMatchesSecondaryWidth(t *testing.T) {
	tests := []struct {
		name      string
		container Size
		main      Size
		secondary Size
	}{
		{"full width", Size{300, 1}, Size{300, 1}, Size{80, 1}},
		{"narrow main", Size{120, 2}, Size{60, 2}, Size{30, 1}},
		{"secondary wider than container", Size{40, 1}, Size{40, 1}, Size{70, 1}},
		{"empty container", Size{0, 0}, Size{10, 1}, Size{5, 1}},
	}

	for _, tt := range tests {
		for _, edge := range []DragEdge{EdgeLeft, EdgeRight} {
			t.Run(tt.name+"/"+edge.String(), func(t *testing.T) {
				rects := ComputeRects(tt.container, Insets{}, tt.main, tt.secondary, edge)
				shift := abs(rects.MainOpen.Left - rects.MainClosed.Left)
				assert.Equal(t, rects.SecondaryClosed.Width(), shift)
				assert.Equal(t, rects.SecondaryOpen.Width(), shift)
			})
		}
	}
}

func TestParseEdge(t *testing.T) {
	e, err := ParseEdge(" Left ")
	require.NoError(t, err)
	assert.Equal(t, EdgeLeft, e)

	e, err = ParseEdge("right")
	require.NoError(t, err)
	assert.Equal(t, EdgeRight, e)

	_, err = ParseEdge("up")
	require.ErrorIs(t, err, ErrInvalidEdge)
}

func TestDragEdge_Opposite(t *testing.T) {
	assert.Equal(t, EdgeLeft, EdgeRight.Opposite())
	assert.Equal(t, EdgeRight, EdgeLeft.Opposite())
}
