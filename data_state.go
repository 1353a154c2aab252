package main

import "regexp"

type dataState struct {
	items []listItem
	index map[string]int  // item id to position in items
	done  map[string]bool // archived by a full swipe, keyed by item id

	filterRegex *regexp.Regexp
	hideDone    bool
	visible     []int // ascending positions in items that pass the filter
}

func newDataState(items []listItem) dataState {
	d := dataState{
		items: items,
		index: make(map[string]int, len(items)),
		done:  make(map[string]bool),
	}
	for i, it := range items {
		d.index[it.id] = i
	}
	d.rebuildVisible()
	return d
}

func (d *dataState) rebuildVisible() {
	d.visible = d.visible[:0]
	for i := range d.items {
		if d.includeItem(&d.items[i]) {
			d.visible = append(d.visible, i)
		}
	}
}

// itemAt returns the item at position pos of the filtered list.
func (d *dataState) itemAt(pos int) (*listItem, bool) {
	if pos < 0 || pos >= len(d.visible) {
		return nil, false
	}
	return &d.items[d.visible[pos]], true
}

func (d *dataState) itemByID(id string) (*listItem, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return &d.items[i], true
}

// toggleDone flips the archived flag of id and returns the new value.
func (d *dataState) toggleDone(id string) bool {
	if d.done[id] {
		delete(d.done, id)
		return false
	}
	d.done[id] = true
	return true
}
