package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves to the next shown item containing query, wrapping past
// the end.
// The query stays highlighted until the next search.
func (m *model) searchOnce(query string) tea.Cmd {
	m.ui.searchQuery = query
	if query == "" {
		return nil
	}

	n := len(m.data.visible)
	q := strings.ToLower(query)
	for step := 1; step <= n; step++ {
		pos := (m.cursor + step) % n
		it, _ := m.data.itemAt(pos)
		if strings.Contains(strings.ToLower(it.String()), q) {
			m.setCursor(pos)
			return nil
		}
	}
	return m.startNotice("No match for "+query, noticeWarn, noticeDuration)
}
