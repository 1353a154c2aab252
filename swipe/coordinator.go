package swipe

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Coordinator keeps the logical state of rows keyed by a stable id, so that
// a row view recycled onto another item never leaks state between items.
// Create one per list and bind every row view through it.
//
// All mutations run under one mutex. Row calls made while it is held use the
// quiet paths that never notify, so the state-change observer can take the
// mutex itself.
type Coordinator struct {
	mu sync.Mutex

	states      map[string]State
	rows        map[string]*Row
	ids         map[*Row]string
	locked      map[string]struct{}
	openOnlyOne bool

	log zerolog.Logger
}

func NewCoordinator(opts ...Option) *Coordinator {
	s := buildSettings(opts)
	return &Coordinator{
		states:      make(map[string]State),
		rows:        make(map[string]*Row),
		ids:         make(map[*Row]string),
		locked:      make(map[string]struct{}),
		openOnlyOne: s.openOnlyOne,
		log:         s.logger.With().Str("component", "swipe-coordinator").Logger(),
	}
}

// Bind attaches row to id. It is idempotent. The row is detached from the id
// it had before, snapped without animation to the durable state of id, and
// given the lock flag of id.
func (c *Coordinator) Bind(row *Row, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if row.ShouldRequestLayout() {
		row.RequestLayout()
	}

	if prev, ok := c.ids[row]; ok && prev != id {
		delete(c.rows, prev)
	}
	if other, ok := c.rows[id]; ok && other != row {
		other.setGestureObserver(nil)
		delete(c.ids, other)
	}
	c.rows[id] = row
	c.ids[row] = id

	row.Abort()
	row.setGestureObserver(GestureObserverFunc(func(r *Row, s State) {
		c.onStateChanged(r, id, s)
	}))

	state, seen := c.states[id]
	if !seen {
		c.states[id] = StateClosed
	}
	row.moveTo(state.opened(), false, false)

	_, locked := c.locked[id]
	row.SetLocked(locked)

	c.log.Debug().Str("id", id).Stringer("state", c.states[id]).Bool("locked", locked).Msg("bind")
}

// Unbind detaches row from whatever id it is bound to. The durable state of
// that id is kept.
func (c *Coordinator) Unbind(row *Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.ids[row]
	if !ok {
		return
	}
	row.Abort()
	row.setGestureObserver(nil)
	delete(c.ids, row)
	delete(c.rows, id)
}

func (c *Coordinator) onStateChanged(row *Row, id string, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A row rebound since the callback was registered no longer speaks for id.
	if c.rows[id] != row {
		return
	}
	c.states[id] = state
	if c.openOnlyOne && state.opened() {
		c.closeOthers(id)
	}
}

// closeOthers marks every other open id closed and animates bound rows shut.
// Callers hold c.mu.
func (c *Coordinator) closeOthers(id string) {
	closed := 0
	for other, st := range c.states {
		if other == id || !st.opened() {
			continue
		}
		c.states[other] = StateClosed
		if row, ok := c.rows[other]; ok {
			row.moveTo(false, true, false)
		}
		closed++
	}
	for other, row := range c.rows {
		if other != id && row.State().opened() {
			row.moveTo(false, true, false)
			c.states[other] = StateClosed
			closed++
		}
	}
	if closed > 0 {
		c.log.Debug().Str("id", id).Int("closed", closed).Msg("close others")
	}
}

// OpenLayout opens id. A bound row animates open; an unbound id opens when
// it is next bound. Under open-only-one every other id is closed either way.
func (c *Coordinator) OpenLayout(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.states[id] = StateOpen
	if row, ok := c.rows[id]; ok {
		row.moveTo(true, true, false)
	}
	if c.openOnlyOne {
		c.closeOthers(id)
	}
}

// CloseLayout closes id, animating its row if bound.
func (c *Coordinator) CloseLayout(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.states[id] = StateClosed
	if row, ok := c.rows[id]; ok {
		row.moveTo(false, true, false)
	}
}

// CloseAll animates every open bound row shut and marks every open id
// closed.
func (c *Coordinator) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, row := range c.rows {
		if row.State().opened() {
			row.moveTo(false, true, false)
			c.states[id] = StateClosed
		}
	}
	for id, st := range c.states {
		if st.opened() {
			c.states[id] = StateClosed
		}
	}
}

// LockSwipe blocks user drags on the given ids.
func (c *Coordinator) LockSwipe(ids ...string) { c.setLocked(true, ids) }

// UnlockSwipe allows user drags on the given ids again.
func (c *Coordinator) UnlockSwipe(ids ...string) { c.setLocked(false, ids) }

func (c *Coordinator) setLocked(lock bool, ids []string) {
	if len(ids) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		if lock {
			c.locked[id] = struct{}{}
		} else {
			delete(c.locked, id)
		}
		if row, ok := c.rows[id]; ok {
			row.SetLocked(lock)
		}
	}
}

func (c *Coordinator) SetOpenOnlyOne(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openOnlyOne = on
}

func (c *Coordinator) OpenOnlyOne() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openOnlyOne
}

// State returns the durable state of id and whether id has been seen.
func (c *Coordinator) State(id string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[id]
	return s, ok
}

// Row returns the row currently bound to id.
func (c *Coordinator) Row(id string) (*Row, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.rows[id]
	return r, ok
}

// ID returns the id row is bound to.
func (c *Coordinator) ID(row *Row) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.ids[row]
	return id, ok
}

func (c *Coordinator) IsLocked(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.locked[id]
	return ok
}

// LockedIDs returns the locked ids in order.
func (c *Coordinator) LockedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.locked))
	for id := range c.locked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// OpenCount returns how many ids are Open or Opening.
func (c *Coordinator) OpenCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, s := range c.states {
		if s.opened() {
			n++
		}
	}
	return n
}

// Step advances every bound row by dt and reports whether any row still
// needs frames. Rows are stepped outside the lock because their settle
// transitions call back into the coordinator.
func (c *Coordinator) Step(dt time.Duration) bool {
	c.mu.Lock()
	rows := make([]*Row, 0, len(c.rows))
	for _, r := range c.rows {
		if r.Animating() {
			rows = append(rows, r)
		}
	}
	c.mu.Unlock()

	for _, r := range rows {
		r.Step(dt)
	}

	// An arriving row can start slides on others through closeOthers.
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rows {
		if r.Animating() {
			return true
		}
	}
	return false
}
