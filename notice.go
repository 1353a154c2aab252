package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

const (
	noticeInfo    = "info"
	noticeSuccess = "success"
	noticeWarn    = "warn"
	noticeError   = "error"
)

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case noticeInfo:
		icon = "ℹ"
	case noticeSuccess:
		icon = "✓"
	case noticeWarn:
		icon = "!"
	case noticeError:
		icon = "×"
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (m *model) startNotice(msg, kind string, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

// notify queues a notice from inside a swipe callback, where no tea.Cmd can
// be returned directly. Update flushes the queue.
func (m *model) notify(msg, kind string) {
	m.pending = append(m.pending, m.startNotice(msg, kind, noticeDuration))
}

func (m *model) flushPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
