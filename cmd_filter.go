package main

import (
	"regexp"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// setFilterPattern narrows the list to items whose columns match pattern.
// An empty pattern clears the filter.
func (m *model) setFilterPattern(pattern string) error {
	m.log.Info().Str("pattern", pattern).Msg("set filter")
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}
		m.data.filterRegex = re
	}
	m.applyFilter()
	return nil
}

func (m *model) toggleHideDone() tea.Cmd {
	m.data.hideDone = !m.data.hideDone
	m.applyFilter()
	if m.data.hideDone {
		return m.startNotice("Hiding archived rows", noticeInfo, noticeDuration)
	}
	return m.startNotice("Showing archived rows", noticeInfo, noticeDuration)
}

func (d *dataState) includeItem(it *listItem) bool {
	if d.hideDone && d.done[it.id] {
		return false
	}
	if d.filterRegex != nil && !d.filterRegex.MatchString(it.String()) {
		return false
	}
	return true
}

func (d *dataState) filtered() bool {
	return d.filterRegex != nil || d.hideDone
}

// applyFilter rebuilds the visible index and rebinds the pool. The cursor
// stays on its item, or moves to the next one still shown. Rows coming back
// into view take their open or closed state from the coordinator.
func (m *model) applyFilter() {
	keep := -1
	if m.cursor >= 0 && m.cursor < len(m.data.visible) {
		keep = m.data.visible[m.cursor]
	}

	m.data.rebuildVisible()
	m.log.Debug().
		Int("visible", len(m.data.visible)).
		Int("items", len(m.data.items)).
		Bool("hideDone", m.data.hideDone).
		Msg("apply filter")

	pos, _ := slices.BinarySearch(m.data.visible, keep)
	m.setCursor(pos)
}
