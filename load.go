package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// loadItems picks the list source: a CSV file, then the items stored in the
// session, then n generated rows.
func loadItems(path string, sess *sessionDTO, n int) ([]listItem, error) {
	switch {
	case path != "":
		return loadCSV(path)
	case sess != nil && len(sess.Items) > 0:
		return sess.listItems(), nil
	default:
		return generateItems(n), nil
	}
}

func loadCSV(path string) ([]listItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no rows", path)
	}
	return itemsFromRecords(records), nil
}

// itemsFromRecords builds items from CSV records whose first record is the
// header. An "id" column is used as the item id and left out of the label;
// otherwise the id is a hash of the columns. Repeated ids get a "#n" suffix.
func itemsFromRecords(records [][]string) []listItem {
	idCol := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "id") {
			idCol = i
			break
		}
	}

	seen := make(map[string]int, len(records)-1)
	items := make([]listItem, 0, len(records)-1)
	for i, rec := range records[1:] {
		it := listItem{originalIndex: i + 1}
		for c, v := range rec {
			if c == idCol {
				it.id = strings.TrimSpace(v)
				continue
			}
			it.cols = append(it.cols, v)
		}
		if it.id == "" {
			it.id = computeID(it.cols)
		}
		if n := seen[it.id]; n > 0 {
			seen[it.id] = n + 1
			it.id = it.id + "#" + strconv.Itoa(n+1)
		} else {
			seen[it.id] = 1
		}
		items = append(items, it)
	}

	log.Debug().Int("items", len(items)).Bool("idColumn", idCol >= 0).Msg("csv loaded")
	return items
}

func generateItems(n int) []listItem {
	items := make([]listItem, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		items = append(items, listItem{
			id:            id,
			cols:          []string{"Item " + id, fmt.Sprintf("generated row %d of %d", i, n)},
			originalIndex: i,
		})
	}
	return items
}
