package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	JumpStart   key.Binding
	JumpEnd     key.Binding
	OpenRow     key.Binding
	CloseRow    key.Binding
	CloseAll    key.Binding
	ToggleLock  key.Binding
	OpenOnlyOne key.Binding
	ToggleDone  key.Binding
	HideDone    key.Binding
	CopyRow     key.Binding
	SaveToFile  key.Binding
	Command     key.Binding
	Search      key.Binding
	OpenHelp    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	OpenRow: key.NewBinding(
		key.WithKeys("o", "right"),
		key.WithHelp("o", "reveal actions"),
	),
	CloseRow: key.NewBinding(
		key.WithKeys("c", "left"),
		key.WithHelp("c", "hide actions"),
	),
	CloseAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "hide all actions"),
	),
	ToggleLock: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lock/unlock swipe"),
	),
	OpenOnlyOne: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "toggle one open at a time"),
	),
	ToggleDone: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "archive (same as full swipe)"),
	),
	HideDone: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "hide/show archived"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row to clipboard"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save session"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command (N, open, close, lock, filter)"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.PageDown,
		k.PageUp,
		k.OpenRow,
		k.CloseRow,
		k.CloseAll,
		k.ToggleLock,
		k.OpenOnlyOne,
		k.ToggleDone,
		k.HideDone,
		k.CopyRow,
		k.SaveToFile,
		k.Command,
		k.Search,
	}
}
