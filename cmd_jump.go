package main

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) jumpToStart() {
	if len(m.data.visible) == 0 {
		return
	}
	m.setCursor(0)
}

func (m *model) jumpToEnd() {
	if len(m.data.visible) == 0 {
		return
	}
	m.setCursor(len(m.data.visible) - 1)
}

// jumpToLine moves the cursor to the 1-based source line n. A line hidden by
// the filter is reported and the cursor stays put.
func (m *model) jumpToLine(n int) tea.Cmd {
	if n <= 0 || n > len(m.data.items) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", n), noticeWarn, noticeDuration)
	}
	pos, ok := slices.BinarySearch(m.data.visible, n-1)
	if !ok {
		return m.startNotice(fmt.Sprintf("Line %d is filtered out", n), noticeWarn, noticeDuration)
	}
	m.setCursor(pos)
	return nil
}
