package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil

	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, tea.Batch(cmd, m.animate())

	case tea.KeyBackspace:
		if b := m.ui.command.buf; len(b) > 0 {
			r := []rune(b)
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)

	switch m.ui.command.cmd {
	case CmdSearch:
		return m.searchOnce(buf)
	case CmdCommand:
		return m.runVerb(buf)
	}
	return nil
}

// runVerb executes one ':' command line. A bare number jumps to that line.
// Verbs taking ids accept "." for the row under the cursor. The filter verb
// takes the rest of the line as a regular expression.
func (m *model) runVerb(line string) tea.Cmd {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if n, err := strconv.Atoi(fields[0]); err == nil {
		return m.jumpToLine(n)
	}

	verb, args := strings.ToLower(fields[0]), m.resolveIDs(fields[1:])
	m.log.Debug().Str("verb", verb).Strs("args", args).Msg("command")

	switch verb {
	case "open", "close":
		if len(args) != 1 {
			return m.startNotice(fmt.Sprintf("usage: %s <id>", verb), noticeWarn, noticeDuration)
		}
		if verb == "open" {
			m.coord.OpenLayout(args[0])
		} else {
			m.coord.CloseLayout(args[0])
		}
		return nil

	case "closeall":
		m.coord.CloseAll()
		return nil

	case "lock", "unlock":
		if len(args) == 0 {
			return m.startNotice(fmt.Sprintf("usage: %s <id>...", verb), noticeWarn, noticeDuration)
		}
		return m.lockIDs(args, verb == "lock")

	case "only":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return m.startNotice("usage: only on|off", noticeWarn, noticeDuration)
		}
		m.coord.SetOpenOnlyOne(args[0] == "on")
		return m.startNotice(fmt.Sprintf("One open at a time: %v", m.coord.OpenOnlyOne()), noticeInfo, noticeDuration)

	case "done":
		if len(args) != 1 {
			return m.startNotice("usage: done <id>", noticeWarn, noticeDuration)
		}
		if _, ok := m.data.itemByID(args[0]); !ok {
			return m.startNotice("No row with id "+args[0], noticeWarn, noticeDuration)
		}
		m.archive(args[0])
		return nil

	case "filter":
		pattern := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if err := m.setFilterPattern(pattern); err != nil {
			return m.startNotice(fmt.Sprintf("Bad filter: %v", err), noticeWarn, noticeDuration)
		}
		if pattern == "" {
			return m.startNotice("Filter cleared", noticeInfo, noticeDuration)
		}
		return m.startNotice(fmt.Sprintf("Filter /%s/: %d rows", pattern, len(m.data.visible)), noticeInfo, noticeDuration)

	case "w", "write":
		path := m.defaultSaveName()
		if len(fields) > 1 {
			path = fields[1]
		}
		return m.saveSession(path)
	}

	return m.startNotice(fmt.Sprintf("Unknown command %q", verb), noticeWarn, noticeDuration)
}

func (m *model) resolveIDs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "." {
			if it, ok := m.currentItem(); ok {
				out = append(out, it.id)
			}
			continue
		}
		out = append(out, a)
	}
	return out
}
