package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-swipe/swipe"
)

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		case tea.MouseButtonLeft:
			return m, m.pressRow(msg.X, msg.Y, now)
		}

	case tea.MouseActionMotion:
		d := &m.ui.drag
		if d.view == nil {
			return m, nil
		}
		if msg.X != d.startX {
			d.moved = true
		}
		d.view.row.Move(msg.X, now)

	case tea.MouseActionRelease:
		return m, m.releaseRow(now)
	}

	return m, m.animate()
}

func (m *model) pressRow(x, y int, now time.Time) tea.Cmd {
	v, pos := m.viewAt(y)
	if v == nil {
		return nil
	}
	m.setCursor(pos)

	row := v.row
	m.ui.drag = dragState{
		view:      v,
		startX:    x,
		onAction:  hitsSecondary(row, x),
		wasOpened: row.IsOpened(),
	}
	if !m.captureAt(row, x, now) {
		m.ui.drag = dragState{}
		if row.Locked() {
			return m.startNotice("Row is locked", noticeWarn, noticeDuration)
		}
	}
	return nil
}

// captureAt starts a drag. A press on the first or last column counts as a
// drag from that screen edge, unless it lands on a revealed action.
func (m *model) captureAt(row *swipe.Row, x int, now time.Time) bool {
	if hitsSecondary(row, x) {
		return row.Capture(x, now)
	}
	switch x {
	case 0:
		return row.CaptureFromEdge(swipe.EdgeLeft, x, now)
	case m.terminalWidth - 1:
		return row.CaptureFromEdge(swipe.EdgeRight, x, now)
	default:
		return row.Capture(x, now)
	}
}

func (m *model) releaseRow(now time.Time) tea.Cmd {
	d := m.ui.drag
	m.ui.drag = dragState{}
	if d.view == nil {
		return nil
	}

	decision, ok := d.view.row.Release(now)
	if !ok {
		return nil
	}
	m.log.Debug().
		Stringer("outcome", decision.Outcome).
		Int("visible", decision.VisibleWidth).
		Bool("moved", d.moved).
		Msg("release")

	var cmd tea.Cmd
	if !d.moved && d.onAction && d.wasOpened {
		if it, ok := m.currentItem(); ok {
			cmd = m.copyItem(it)
			m.coord.CloseLayout(it.id)
		}
	}
	return tea.Batch(cmd, m.animate())
}

// hitsSecondary reports whether x lands on the part of the secondary surface
// the main surface does not cover.
func hitsSecondary(row *swipe.Row, x int) bool {
	sr, mr := row.SecondaryRect(), row.MainRect()
	return x >= sr.Left && x < sr.Right && (x < mr.Left || x >= mr.Right)
}
