package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/andareed/siftly-swipe/clipboard"
	"github.com/andareed/siftly-swipe/config"
	"github.com/andareed/siftly-swipe/dialogs"
	"github.com/andareed/siftly-swipe/swipe"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

const (
	headerHeight = 1
	footerHeight = 2
	actionLabel  = "⧉ copy  ·  swipe on to archive"
)

type frameMsg time.Time

type model struct {
	cfg     config.Config
	data    dataState
	ui      uiState
	coord   *swipe.Coordinator
	views   []*rowView
	edge    swipe.DragEdge
	rowOpts []swipe.Option
	log     zerolog.Logger

	cursor         int
	terminalWidth  int
	terminalHeight int
	ready          bool

	InitialPath  string
	sessionPath  string
	activeDialog dialogs.Dialog

	pending []tea.Cmd
	now     func() time.Time
	copy    func(string) (clipboard.Method, error)
}

func newModel(cfg *config.Config, items []listItem, logger zerolog.Logger) *model {
	rowOpts := append(cfg.RowOptions(), swipe.WithLogger(logger))

	m := &model{
		cfg:         *cfg,
		data:        newDataState(items),
		coord:       swipe.NewCoordinator(rowOpts...),
		edge:        cfg.DragEdge(),
		rowOpts:     rowOpts,
		log:         logger.With().Str("component", "list").Logger(),
		sessionPath: cfg.SessionFile,
		now:         time.Now,
		copy:        clipboard.Copy,
	}
	m.coord.LockSwipe(cfg.Locked...)
	return m
}

func (m *model) Init() tea.Cmd {
	m.log.Info().Int("items", len(m.data.items)).Str("edge", m.edge.String()).Msg("swipelist: initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.update(msg)
	if m.ui.refilter {
		m.ui.refilter = false
		m.applyFilter()
	}
	return m, tea.Batch(cmd, m.flushPending())
}

func (m *model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.animate()

	case frameMsg:
		return m, m.onFrame(time.Time(msg))

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		return m, m.saveSession(msg.Path)

	case dialogs.SaveCanceledMsg:
		m.closeDialog()
		return m, nil
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.closeDialog()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.PageDown):
		m.moveCursor(m.ui.listHeight)
	case key.Matches(msg, Keys.PageUp):
		m.moveCursor(-m.ui.listHeight)
	case key.Matches(msg, Keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpEnd):
		m.jumpToEnd()
	case key.Matches(msg, Keys.OpenRow):
		if it, ok := m.currentItem(); ok {
			m.coord.OpenLayout(it.id)
		}
	case key.Matches(msg, Keys.CloseRow):
		if it, ok := m.currentItem(); ok {
			m.coord.CloseLayout(it.id)
		}
	case key.Matches(msg, Keys.CloseAll):
		m.coord.CloseAll()
	case key.Matches(msg, Keys.ToggleLock):
		cmd = m.toggleLockCurrent()
	case key.Matches(msg, Keys.OpenOnlyOne):
		on := !m.coord.OpenOnlyOne()
		m.coord.SetOpenOnlyOne(on)
		cmd = m.startNotice(fmt.Sprintf("One open at a time: %v", on), noticeInfo, noticeDuration)
	case key.Matches(msg, Keys.ToggleDone):
		if it, ok := m.currentItem(); ok {
			m.archive(it.id)
		}
	case key.Matches(msg, Keys.HideDone):
		cmd = m.toggleHideDone()
	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrent()
	case key.Matches(msg, Keys.SaveToFile):
		m.activeDialog = dialogs.NewSaveDialog(m.defaultSaveName(), filepath.Dir(m.defaultSaveName()))
		return m, m.activeDialog.Init()
	case key.Matches(msg, Keys.Command):
		m.enterCommandMode(CmdCommand)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	}

	return m, tea.Batch(cmd, m.animate())
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) quit() tea.Cmd {
	if m.sessionPath != "" {
		if err := SaveSession(m, m.sessionPath); err != nil {
			m.log.Error().Err(err).Str("path", m.sessionPath).Msg("save session on quit")
		}
	}
	return tea.Quit
}

func (m *model) saveSession(path string) tea.Cmd {
	if err := SaveSession(m, path); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("save session")
		return m.startNotice(fmt.Sprintf("Save failed: %v", err), noticeError, noticeDuration)
	}
	m.sessionPath = path
	return m.startNotice("Saved "+filepath.Base(path), noticeSuccess, noticeDuration)
}

func (m *model) defaultSaveName() string {
	if m.sessionPath != "" {
		return m.sessionPath
	}
	if m.InitialPath != "" {
		ext := filepath.Ext(m.InitialPath)
		return m.InitialPath[:len(m.InitialPath)-len(ext)] + ".session.json"
	}
	return "swipelist.session.json"
}

// region Pool

// resize lays the recycled row pool out for a new terminal size.
func (m *model) resize(w, h int) {
	m.terminalWidth, m.terminalHeight = w, h
	m.ui.listHeight = max(h-headerHeight-footerHeight, 1)
	m.resizePool(m.ui.listHeight)
	m.ready = true
	m.scrollToCursor()
	m.bindVisible()
}

func (m *model) resizePool(n int) {
	for len(m.views) < n {
		m.views = append(m.views, m.newView())
	}
	for _, v := range m.views[n:] {
		if v.item >= 0 {
			m.coord.Unbind(v.row)
		}
	}
	m.views = m.views[:n]
}

func (m *model) newView() *rowView {
	v := &rowView{main: &textSurface{}, action: &textSurface{}, item: -1}
	v.row = swipe.MustRow(m.edge, v.main, v.action, m.rowOpts...)
	v.row.SetSwipeObserver(swipe.SwipeFuncs{
		HalfSwipe: func(_ *swipe.Row, opened bool) { m.onHalfSwipe(v, opened) },
		FullSwipe: func(*swipe.Row) { m.onFullSwipe(v) },
	})
	return v
}

// bindVisible attaches each pool view to the item in its slot. Views are only
// rebound when their item changes, since binding drops any slide in flight.
func (m *model) bindVisible() {
	size := swipe.Size{Width: m.terminalWidth, Height: 1}

	for slot, v := range m.views {
		pos := m.ui.visibleStart + slot
		if pos >= len(m.data.visible) {
			if v.item >= 0 {
				m.coord.Unbind(v.row)
				v.item = -1
			}
			continue
		}

		idx := m.data.visible[pos]
		it := &m.data.items[idx]
		v.main.width = m.terminalWidth
		v.main.text = it.Label()
		v.action.width = m.actionWidth()
		v.action.text = actionLabel

		if v.item != idx {
			m.coord.Bind(v.row, it.id)
			v.item = idx
		}
		v.row.Layout(size, swipe.Insets{})
		if v.row.ShouldRequestLayout() {
			v.row.Layout(size, swipe.Insets{})
		}
	}
}

// actionWidth keeps the revealed action under half the line, so that an open
// row stays clear of the full-swipe boundary.
func (m *model) actionWidth() int {
	return max(min(m.cfg.ActionWidth, m.terminalWidth/2), 1)
}

// viewAt returns the bound view on screen line y and its position in the
// filtered list.
func (m *model) viewAt(y int) (*rowView, int) {
	slot := y - headerHeight
	if slot < 0 || slot >= len(m.views) {
		return nil, -1
	}
	if v := m.views[slot]; v.item >= 0 {
		return v, m.ui.visibleStart + slot
	}
	return nil, -1
}

// endregion

// region Animation

func (m *model) animating() bool {
	for _, v := range m.views {
		if v.item >= 0 && v.row.Animating() {
			return true
		}
	}
	return false
}

// animate schedules the next frame while any bound row is still moving.
func (m *model) animate() tea.Cmd {
	if m.ui.framePending || !m.animating() {
		return nil
	}
	m.ui.framePending = true
	m.ui.lastFrame = m.now()
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) onFrame(t time.Time) tea.Cmd {
	m.ui.framePending = false
	dt := t.Sub(m.ui.lastFrame)
	if dt <= 0 {
		dt = m.cfg.FrameInterval
	}
	m.coord.Step(dt)
	return m.animate()
}

// endregion

// region Swipe outcomes

func (m *model) onHalfSwipe(v *rowView, opened bool) {
	id, _ := m.coord.ID(v.row)
	m.log.Debug().Str("id", id).Bool("opened", opened).Msg("half swipe")
}

func (m *model) onFullSwipe(v *rowView) {
	id, ok := m.coord.ID(v.row)
	if !ok {
		return
	}
	m.archive(id)
}

func (m *model) archive(id string) {
	it, ok := m.data.itemByID(id)
	if !ok {
		return
	}
	if m.data.toggleDone(id) {
		m.notify(fmt.Sprintf("Archived row %d", it.originalIndex), noticeSuccess)
	} else {
		m.notify(fmt.Sprintf("Restored row %d", it.originalIndex), noticeInfo)
	}
	// Archiving can run from inside a coordinator step, so the pool is
	// rebound once the message has been handled.
	m.ui.refilter = m.ui.refilter || m.data.hideDone
	m.log.Debug().Str("id", id).Bool("done", m.data.done[id]).Msg("archive")
}

func (m *model) copyCurrent() tea.Cmd {
	it, ok := m.currentItem()
	if !ok {
		return nil
	}
	return m.copyItem(it)
}

func (m *model) copyItem(it *listItem) tea.Cmd {
	method, err := m.copy(it.String())
	if err != nil {
		return m.startNotice(fmt.Sprintf("Copy failed: %v", err), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied row %d (%s)", it.originalIndex, method), noticeSuccess, noticeDuration)
}

// endregion

// region Cursor

// currentItem returns the item under the cursor. The cursor is a position
// in the filtered list, not in data.items.
func (m *model) currentItem() (*listItem, bool) {
	return m.data.itemAt(m.cursor)
}

// cursorIndex is the data.items index under the cursor, or -1.
func (m *model) cursorIndex() int {
	if m.cursor < 0 || m.cursor >= len(m.data.visible) {
		return -1
	}
	return m.data.visible[m.cursor]
}

func (m *model) moveCursor(delta int) {
	if len(m.data.visible) == 0 {
		return
	}
	m.setCursor(m.cursor + delta)
}

func (m *model) setCursor(i int) {
	m.cursor = max(min(i, len(m.data.visible)-1), 0)
	m.scrollToCursor()
	m.bindVisible()
}

func (m *model) scrollToCursor() {
	h := m.ui.listHeight
	if h <= 0 {
		return
	}
	if m.cursor < m.ui.visibleStart {
		m.ui.visibleStart = m.cursor
	}
	if m.cursor >= m.ui.visibleStart+h {
		m.ui.visibleStart = m.cursor - h + 1
	}
	maxStart := max(len(m.data.visible)-h, 0)
	m.ui.visibleStart = min(max(m.ui.visibleStart, 0), maxStart)
}

// endregion
