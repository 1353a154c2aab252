package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/andareed/siftly-swipe/swipe"
)

const sessionVersion = 1

type itemDTO struct {
	ID            string   `json:"id"`
	Cols          []string `json:"cols"`
	OriginalIndex int      `json:"originalIndex"`
}

// sessionDTO is the on-disk session. Items are optional: a session saved
// next to a CSV is re-applied to the rows of that CSV.
type sessionDTO struct {
	Version     int          `json:"version"`
	Items       []itemDTO    `json:"items,omitempty"`
	Done        []string     `json:"done"`
	Locked      []string     `json:"locked"`
	OpenOnlyOne bool         `json:"openOnlyOne"`
	States      swipe.Bundle `json:"states"`
}

func toItemDTO(it listItem) itemDTO {
	return itemDTO{
		ID:            it.id,
		Cols:          append([]string(nil), it.cols...),
		OriginalIndex: it.originalIndex,
	}
}

func fromItemDTO(d itemDTO) listItem {
	return listItem{
		id:            d.ID,
		cols:          append([]string(nil), d.Cols...),
		originalIndex: d.OriginalIndex,
	}
}

func (s *sessionDTO) listItems() []listItem {
	items := make([]listItem, 0, len(s.Items))
	for _, d := range s.Items {
		items = append(items, fromItemDTO(d))
	}
	return items
}

// SaveSession writes items, archive flags, locks and the open/closed state of
// every row m has seen.
func SaveSession(m *model, path string) error {
	dto := sessionDTO{
		Version:     sessionVersion,
		Items:       make([]itemDTO, 0, len(m.data.items)),
		Done:        make([]string, 0, len(m.data.done)),
		Locked:      m.coord.LockedIDs(),
		OpenOnlyOne: m.coord.OpenOnlyOne(),
		States:      swipe.Bundle{},
	}
	for _, it := range m.data.items {
		dto.Items = append(dto.Items, toItemDTO(it))
	}
	for id := range m.data.done {
		dto.Done = append(dto.Done, id)
	}
	slices.Sort(dto.Done)
	m.coord.SaveStates(dto.States)

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	m.log.Info().Str("path", path).Int("items", len(dto.Items)).Msg("session saved")
	return nil
}

// LoadSession reads a session file.
func LoadSession(path string) (*sessionDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse session %q: %w", path, err)
	}
	if dto.Version != sessionVersion {
		return nil, fmt.Errorf("session version %d not supported (want %d)", dto.Version, sessionVersion)
	}
	return &dto, nil
}

// applySession merges s into m, only for items m currently has (by id).
// Rows pick the restored states up when they are next bound.
func applySession(m *model, s *sessionDTO) {
	present := func(id string) bool {
		_, ok := m.data.index[id]
		return ok
	}

	for _, id := range s.Done {
		if present(id) {
			m.data.done[id] = true
		}
	}

	locked := slices.DeleteFunc(slices.Clone(s.Locked), func(id string) bool { return !present(id) })
	m.coord.LockSwipe(locked...)
	m.coord.SetOpenOnlyOne(s.OpenOnlyOne)

	if states, ok := s.States[swipe.BundleKey]; ok {
		kept := make(map[string]int, len(states))
		for id, code := range states {
			if present(id) {
				kept[id] = code
			}
		}
		m.coord.RestoreStates(swipe.Bundle{swipe.BundleKey: kept})
	}

	m.log.Debug().
		Int("done", len(m.data.done)).
		Int("locked", len(locked)).
		Msg("session applied")
}
