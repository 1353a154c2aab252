package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-swipe/config"
	"github.com/andareed/siftly-swipe/swipe"
)

func TestSession_RoundTrip(t *testing.T) {
	tm := newTestModel(t, 20)
	tm.command("open 3")
	tm.settle(t)
	tm.command("done 2")
	tm.command("lock 5")
	tm.command("only off")

	path := filepath.Join(t.TempDir(), "nested", "list.session.json")
	require.NoError(t, SaveSession(tm.model, path))

	sess, err := LoadSession(path)
	require.NoError(t, err)
	assert.Len(t, sess.Items, 20)
	assert.Equal(t, []string{"2"}, sess.Done)
	assert.Equal(t, []string{"5"}, sess.Locked)
	assert.False(t, sess.OpenOnlyOne)
	assert.Equal(t, swipe.StateOpen.Code(), sess.States[swipe.BundleKey]["3"])

	cfg := config.DefaultConfig()
	m := newModel(&cfg, sess.listItems(), zerolog.Nop())
	applySession(m, sess)
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	row := m.views[2].row
	assert.True(t, row.IsOpened())
	assert.False(t, row.Animating())
	assert.Equal(t, -24, row.Offset())
	assert.True(t, m.data.done["2"])
	assert.True(t, m.coord.IsLocked("5"))
	assert.True(t, m.views[4].row.Locked())
	assert.False(t, m.coord.OpenOnlyOne())
}

func TestSession_AppliesOnlyToPresentItems(t *testing.T) {
	sess := &sessionDTO{
		Version: sessionVersion,
		Done:    []string{"1", "40"},
		Locked:  []string{"2", "41"},
		States: swipe.Bundle{
			swipe.BundleKey: {"3": swipe.StateOpen.Code(), "42": swipe.StateOpen.Code()},
		},
	}

	cfg := config.DefaultConfig()
	m := newModel(&cfg, generateItems(5), zerolog.Nop())
	applySession(m, sess)

	assert.Equal(t, map[string]bool{"1": true}, m.data.done)
	assert.Equal(t, []string{"2"}, m.coord.LockedIDs())
	s, ok := m.coord.State("3")
	assert.True(t, ok)
	assert.Equal(t, swipe.StateOpen, s)
	_, ok = m.coord.State("42")
	assert.False(t, ok)
}

func TestSession_WithoutStatesKeepsTable(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newModel(&cfg, generateItems(5), zerolog.Nop())
	m.coord.OpenLayout("1")

	applySession(m, &sessionDTO{Version: sessionVersion, OpenOnlyOne: true})

	s, _ := m.coord.State("1")
	assert.Equal(t, swipe.StateOpen, s)
}

func TestLoadSession_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSession(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadSession(bad)
	require.ErrorContains(t, err, "parse session")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version": 9}`), 0o600))
	_, err = LoadSession(old)
	require.ErrorContains(t, err, "session version 9 not supported")
}

func TestQuit_SavesSession(t *testing.T) {
	tm := newTestModel(t, 3)
	tm.sessionPath = filepath.Join(t.TempDir(), "quit.json")
	tm.keys("x")

	tm.keys("q")

	sess, err := LoadSession(tm.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, sess.Done)
}
