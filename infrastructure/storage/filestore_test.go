package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}

	require.NoError(t, store.Save("settings", payload{Name: "geral", Total: 42.5}))

	var loaded payload
	require.NoError(t, store.Load("settings", &loaded))
	assert.Equal(t, payload{Name: "geral", Total: 42.5}, loaded)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out map[string]any
	assert.ErrorIs(t, store.Load("inexistente", &out), ErrNotFound)
}

func TestFileStoreCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{nem json"), 0o644))

	var out []map[string]any
	err = store.Load("history", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("key", "primeiro"))
	require.NoError(t, store.Save("key", "segundo"))

	var out string
	require.NoError(t, store.Load("key", &out))
	assert.Equal(t, "segundo", out)
}
