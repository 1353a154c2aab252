package main

type Command int

const (
	CmdNone Command = iota
	CmdCommand
	CmdSearch
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdCommand:
		return "[CMD]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "/"
	case CmdCommand:
		return ":"
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	c := m.ui.command
	return m.commandBadge(c.cmd) + " " + m.commandPrompt(c.cmd) + c.buf
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}
