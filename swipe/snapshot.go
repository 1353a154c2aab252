package swipe

import (
	"slices"
	"strings"
)

// BundleKey is the reserved key the coordinator stores its states under.
const BundleKey = "swipe.coordinator.states"

// SnapshotEntry is one persisted id and its state code.
type SnapshotEntry struct {
	ID   string `json:"id"`
	Code int    `json:"state"`
}

// Snapshot is the flattened state table, ordered by id.
type Snapshot []SnapshotEntry

// Map returns the snapshot as a flat id to code mapping.
func (s Snapshot) Map() map[string]int {
	out := make(map[string]int, len(s))
	for _, e := range s {
		out[e.ID] = e.Code
	}
	return out
}

// SnapshotFromMap orders a flat id to code mapping into a Snapshot.
func SnapshotFromMap(m map[string]int) Snapshot {
	out := make(Snapshot, 0, len(m))
	for id, code := range m {
		out = append(out, SnapshotEntry{ID: id, Code: code})
	}
	slices.SortFunc(out, func(a, b SnapshotEntry) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Bundle is a host-owned key-value container that survives a suspend and
// resume. The coordinator only touches BundleKey.
type Bundle map[string]map[string]int

// Serialize flattens the durable state table.
func (c *Coordinator) Serialize() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := make(map[string]int, len(c.states))
	for id, s := range c.states {
		m[id] = s.Code()
	}
	return SnapshotFromMap(m)
}

// Restore replaces the durable state table. Bound rows and locks are left
// alone; rows pick up restored states on their next Bind. Unknown codes
// restore as Closed.
func (c *Coordinator) Restore(snap Snapshot) {
	states := make(map[string]State, len(snap))
	for _, e := range snap {
		states[e.ID] = StateFromCode(e.Code)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = states
	c.log.Debug().Int("ids", len(states)).Msg("restore")
}

// SaveStates writes the snapshot into b under BundleKey.
func (c *Coordinator) SaveStates(b Bundle) {
	if b == nil {
		return
	}
	b[BundleKey] = c.Serialize().Map()
}

// RestoreStates restores from b. A nil bundle or a missing key leaves the
// state table as it is.
func (c *Coordinator) RestoreStates(b Bundle) {
	if b == nil {
		return
	}
	m, ok := b[BundleKey]
	if !ok {
		return
	}
	c.Restore(SnapshotFromMap(m))
}
