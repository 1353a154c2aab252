package main

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/andareed/siftly-swipe/swipe"
)

type listItem struct {
	id            string
	cols          []string
	originalIndex int // row number in the source, not a unique ID
}

// computeID hashes the normalised columns so an item keeps its id across
// reloads and reordering of the source file.
func computeID(cols []string) string {
	h := fnv.New64a()
	for _, col := range cols {
		norm := strings.ToLower(strings.TrimSpace(col))
		h.Write([]byte(norm))
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func (it *listItem) Join(sep string) string {
	return strings.Join(it.cols, sep)
}

// String is the clipboard and search form of the item.
func (it *listItem) String() string {
	return it.Join("\t")
}

// Label is what the main surface shows.
func (it *listItem) Label() string {
	parts := make([]string, 0, len(it.cols))
	for _, c := range it.cols {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " · ")
}

// textSurface is a one-line surface whose width the host sets before layout.
type textSurface struct {
	width int
	text  string
}

func (s *textSurface) Measure() swipe.Size {
	return swipe.Size{Width: s.width, Height: 1}
}

// rowView is one recycled list line: a swipeable row and the item it shows.
type rowView struct {
	row    *swipe.Row
	main   *textSurface
	action *textSurface
	item   int // index into data.items, -1 when unbound
}
