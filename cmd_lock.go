package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) toggleLockCurrent() tea.Cmd {
	it, ok := m.currentItem()
	if !ok {
		return nil
	}
	return m.lockIDs([]string{it.id}, !m.coord.IsLocked(it.id))
}

// lockIDs locks or unlocks swiping on ids. A locked row keeps its current
// open or closed state.
func (m *model) lockIDs(ids []string, lock bool) tea.Cmd {
	if lock {
		m.coord.LockSwipe(ids...)
	} else {
		m.coord.UnlockSwipe(ids...)
	}
	m.log.Debug().Strs("ids", ids).Bool("lock", lock).Msg("lock swipe")

	verb := "Unlocked"
	if lock {
		verb = "Locked"
	}
	if len(ids) == 1 {
		return m.startNotice(fmt.Sprintf("%s %s", verb, ids[0]), noticeInfo, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("%s %d rows", verb, len(ids)), noticeInfo, noticeDuration)
}
