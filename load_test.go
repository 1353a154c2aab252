package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsFromRecords_IDColumn(t *testing.T) {
	items := itemsFromRecords([][]string{
		{"Host", "ID", "Status"},
		{"alpha", "a1", "up"},
		{"beta", "b2", "down"},
		{"gamma", "a1", "up"},
	})

	require.Len(t, items, 3)
	assert.Equal(t, "a1", items[0].id)
	assert.Equal(t, []string{"alpha", "up"}, items[0].cols)
	assert.Equal(t, 1, items[0].originalIndex)
	assert.Equal(t, "b2", items[1].id)
	assert.Equal(t, "a1#2", items[2].id)
}

func TestItemsFromRecords_HashedIDs(t *testing.T) {
	items := itemsFromRecords([][]string{
		{"Host", "Status"},
		{"alpha", "up"},
		{" ALPHA ", "UP"},
		{"beta", "down"},
	})

	require.Len(t, items, 3)
	assert.Equal(t, computeID([]string{"alpha", "up"}), items[0].id)
	assert.Equal(t, items[0].id+"#2", items[1].id, "normalised duplicates get a suffix")
	assert.NotEqual(t, items[0].id, items[2].id)
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,note\nfirst,a\nsecond\n"), 0o600))

	items, err := loadCSV(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[1].Label())

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = loadCSV(empty)
	require.ErrorContains(t, err, "has no rows")

	_, err = loadCSV(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}

func TestLoadItems_Precedence(t *testing.T) {
	sess := &sessionDTO{Items: []itemDTO{{ID: "s1", Cols: []string{"saved"}, OriginalIndex: 1}}}

	items, err := loadItems("", sess, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "s1", items[0].id)

	items, err = loadItems("", nil, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "3", items[2].id)
	assert.Equal(t, "Item 3 · generated row 3 of 3", items[2].Label())
}
