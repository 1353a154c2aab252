package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a modal drawn over the list. While one is visible the host
// routes every message to it.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")). // same grey as the overlay
			Padding(1, 2).
			Width(60)

	hintStyle = lipgloss.NewStyle().Faint(true)
)

// frame boxes body with a faint hint line underneath.
func frame(body, hint string) string {
	return boxStyle.Render(body + "\n\n" + hintStyle.Render(hint))
}
