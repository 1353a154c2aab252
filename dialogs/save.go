package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// Save asks for the path of a session file.
type Save struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func (d Save) Init() tea.Cmd { return d.input.Focus() }

func NewSaveDialog(defaultName, lastDir string) *Save {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Save session as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Save{input: ti, visible: true, lastDir: lastDir}
}

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			log.Debug().Str("dialog", "save").Str("path", path).Msg("confirmed")
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case "esc":
			log.Debug().Str("dialog", "save").Msg("canceled")
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and puts bare file names in lastDir.
func (d *Save) resolve() string {
	path := d.input.Value()
	if path == "" {
		path = d.input.Placeholder
	}
	if path == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(d.lastDir, filepath.Base(path))
	}
	return path
}

func (d Save) View() string {
	if !d.visible {
		return ""
	}
	return frame(d.input.View(), "enter to save open rows, archive and locks · esc to cancel")
}

func (d *Save) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Save) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Save) Focus() tea.Cmd { return d.input.Focus() }
func (d *Save) Blur()          { d.input.Blur() }
func (d Save) IsVisible() bool { return d.visible }
