package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/siftly-swipe/swipe"
)

// FooterState is everything the two footer lines show.
type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	Edge        string
	OpenOnlyOne bool
	OpenRows    int

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type footerTheme struct {
	pill    lipgloss.Style
	file    lipgloss.Style
	summary lipgloss.Style
	rows    lipgloss.Style
	status  lipgloss.Style
	legend  lipgloss.Style
}

func defaultFooterTheme() footerTheme {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("#2b2b2b"))
	status := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
	return footerTheme{
		pill: lipgloss.NewStyle().
			Background(lipgloss.Color(actionBGColor)).
			Foreground(lipgloss.Color(actionFGColor)),
		file:    bar.Foreground(lipgloss.Color("#e0e0e0")),
		summary: bar.Foreground(lipgloss.Color("#a0a0a0")),
		rows:    bar.Foreground(lipgloss.Color("#cfcfcf")),
		status:  status.Foreground(lipgloss.Color("#9a9a9a")),
		legend:  status.Foreground(lipgloss.Color("#b0b0b0")),
	}
}

// renderFooter draws the control line (mode, session file, swipe settings,
// position) and the status line (notice, key legend), each exactly width
// cells wide. Segments on the left give way first when space runs out.
func renderFooter(width int, st FooterState, th footerTheme) string {
	if width <= 0 {
		return ""
	}
	if st.Edge == "" {
		st.Edge = swipe.EdgeRight.String()
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	return controlLine(width, st, th) + "\n" + statusLine(width, st, th)
}

func controlLine(width int, st FooterState, th footerTheme) string {
	rows := clipCells(fmt.Sprintf(" Rows %d/%d ", max(st.Row, 0), max(st.TotalRows, 0)), width)
	room := width - ansi.StringWidth(rows)

	pill := clipCells(" "+commandLabel(st.Mode)+" ", room)
	room -= ansi.StringWidth(pill)

	summary := clipCells(" "+swipeSummary(st)+" ", room)
	room -= ansi.StringWidth(summary)

	file := padCells(clipCells(fileSegment(st), room), room)

	return th.pill.Render(pill) + th.file.Render(file) + th.summary.Render(summary) + th.rows.Render(rows)
}

func statusLine(width int, st FooterState, th footerTheme) string {
	legend := clipCells(st.Legend, width)
	room := width - ansi.StringWidth(legend)
	msg := padCells(clipCells(st.StatusMessage, room), room)
	return th.status.Render(msg) + th.legend.Render(legend)
}

func swipeSummary(st FooterState) string {
	return fmt.Sprintf("[EDGE: %s] · [ONE OPEN: %v] · [OPEN: %d]", st.Edge, st.OpenOnlyOne, st.OpenRows)
}

func fileSegment(st FooterState) string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no session)"
	}
	seg := " ▸ " + name
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		seg += " ▸ " + input
	}
	return seg
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdCommand:
		return "COMMAND"
	case CmdSearch:
		return "SEARCH"
	default:
		return "NORMAL"
	}
}

func clipCells(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

func padCells(s string, w int) string {
	if pad := w - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
