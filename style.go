package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	rowDoneFGColor         = "#6a6a6a"
	actionBGColor          = "#1f6f5c"
	actionLockedBGColor    = "#5c2b2b"
	actionFGColor          = "#f0f0f0"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0e0e0")).
			Background(lipgloss.Color("#2b2b2b"))

	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(rowSelectedTextFGColor)).
				Background(lipgloss.Color(rowSelectedBGColor))
	rowDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(rowDoneFGColor)).
			Strikethrough(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(actionFGColor)).
			Background(lipgloss.Color(actionBGColor))
	actionLockedStyle = actionStyle.Background(lipgloss.Color(actionLockedBGColor))

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))

	doneMarker    = "✓"
	lockMarker    = "⊘"
	openMarker    = "›"
	defaultMarker = " "
)
