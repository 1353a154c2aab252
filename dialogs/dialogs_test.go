package dialogs

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSave_EnterJoinsBareNameWithLastDir(t *testing.T) {
	d := NewSaveDialog("list.session.json", "/tmp/work")

	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SaveConfirmedMsg{Path: filepath.Join("/tmp/work", "list.session.json")}, cmd())
}

func TestSave_AbsolutePathKept(t *testing.T) {
	d := NewSaveDialog("/var/tmp/a.json", "/tmp/work")

	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SaveConfirmedMsg{Path: "/var/tmp/a.json"}, cmd())
}

func TestSave_EscCancels(t *testing.T) {
	d := NewSaveDialog("a.json", "")

	_, cmd := d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, SaveCanceledMsg{}, cmd())
}

func TestSave_HiddenIgnoresKeys(t *testing.T) {
	d := NewSaveDialog("a.json", "")
	d.Hide()

	_, cmd := d.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}

func TestHelp_DismissOnEsc(t *testing.T) {
	d := NewHelpDialog(nil)
	require.True(t, d.IsVisible())

	d.Update(keyMsg("x"))
	assert.True(t, d.IsVisible())

	d.Update(keyMsg("esc"))
	assert.False(t, d.IsVisible())
}
