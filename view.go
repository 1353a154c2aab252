package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-swipe/logging"
	"github.com/andareed/siftly-swipe/swipe"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	parts := []string{m.headerView(), m.listView(), m.footerView(m.terminalWidth)}
	return strings.Join(parts, "\n")
}

func (m *model) headerView() string {
	title := fmt.Sprintf(" swipelist · %d items · %d archived · reveal %s",
		len(m.data.items), len(m.data.done), m.edge)
	if m.data.filtered() {
		title += fmt.Sprintf(" · %d shown", len(m.data.visible))
	}
	if m.data.filterRegex != nil {
		title += " · filter /" + m.data.filterRegex.String() + "/"
	}
	if m.data.hideDone {
		title += " · archived hidden"
	}
	return headerStyle.Render(fit(title, m.terminalWidth))
}

func (m *model) listView() string {
	lines := make([]string, 0, len(m.views))
	for _, v := range m.views {
		if v.item < 0 {
			lines = append(lines, strings.Repeat(" ", m.terminalWidth))
			continue
		}
		lines = append(lines, m.renderRow(v))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderRow(v *rowView) string {
	it := &m.data.items[v.item]
	row := v.row
	mr, sr := row.MainRect(), row.SecondaryRect()

	style := rowStyle
	if v.item == m.cursorIndex() {
		style = rowSelectedStyle
	}
	if m.data.done[it.id] {
		style = rowDoneStyle.Inherit(style)
	}

	gutter := defaultMarker
	switch {
	case m.data.done[it.id]:
		gutter = doneMarker
	case row.Locked():
		gutter = lockMarker
	case !row.IsClosed():
		gutter = openMarker
	}

	text := gutter + " " + v.main.text
	if m.ui.searchQuery != "" {
		text = restoreRowStyleAfterReset(highlightMatches(text, m.ui.searchQuery), style)
	}
	mainStr := style.Render(fitTail(text, mr.Width()))

	aStyle := actionStyle
	if row.Locked() {
		aStyle = actionLockedStyle
	}
	actionStr := aStyle.Render(fitCenter(v.action.text, sr.Width()))

	return composeLine(m.terminalWidth, mainStr, mr, actionStr, sr)
}

// composeLine draws one row of the given width: the secondary surface pinned
// at sr, and the main surface over it at mr. Cells of mr outside the line are
// clipped.
func composeLine(width int, main string, mr swipe.Rect, secondary string, sr swipe.Rect) string {
	if width <= 0 {
		return ""
	}

	left := min(max(sr.Left, 0), width)
	under := fit(strings.Repeat(" ", left)+fit(secondary, sr.Width()), width)

	mainL := min(max(mr.Left, 0), width)
	mainR := min(max(mr.Right, 0), width)

	var b strings.Builder
	b.WriteString(ansi.Cut(under, 0, mainL))
	if mainR > mainL {
		b.WriteString(ansi.Cut(fit(main, mr.Width()), mainL-mr.Left, mainR-mr.Left))
	}
	b.WriteString(ansi.Cut(under, mainR, width))
	return b.String()
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func fitTail(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return fit(truncate.StringWithTail(s, uint(w), "…"), w)
}

func fitCenter(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(w), "…")
	pad := w - ansi.StringWidth(s)
	return fit(strings.Repeat(" ", pad/2)+s, w)
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	st := FooterState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      m.defaultSaveName(),
		Edge:          m.edge.String(),
		OpenOnlyOne:   m.coord.OpenOnlyOne(),
		OpenRows:      m.coord.OpenCount(),
		Row:           m.cursor + 1,
		TotalRows:     len(m.data.visible),
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        "(? help · o/c reveal · x archive · l lock · / search · : command)",
	}
	if st.StatusMessage == "" {
		if it, ok := m.currentItem(); ok {
			st.StatusMessage = "id " + it.id
		}
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d cur=%d vis=%d+%d pool=%d",
			m.terminalWidth, m.terminalHeight, m.cursor, m.ui.visibleStart, m.ui.listHeight, len(m.views))
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, defaultFooterTheme())
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

// restoreRowStyleAfterReset re-applies the row colours after every reset a
// highlighted match leaves behind.
func restoreRowStyleAfterReset(s string, style lipgloss.Style) string {
	prefix := colorSeq(style.GetBackground(), true) + colorSeq(style.GetForeground(), false)
	reset := termenv.CSI + "0m"
	if prefix == "" || !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+prefix)
}

func colorSeq(c lipgloss.TerminalColor, bg bool) string {
	col, ok := c.(lipgloss.Color)
	if !ok || col == "" {
		return ""
	}
	tc := lipgloss.ColorProfile().Color(string(col))
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
