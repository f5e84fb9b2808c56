package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("thing", payload{Name: "latte", Count: 2}))

	var got payload
	require.NoError(t, store.Get("thing", &got))
	assert.Equal(t, payload{Name: "latte", Count: 2}, got)
}

func TestStoreGetMissing(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var into map[string]any
	assert.ErrorIs(t, store.Get("nope", &into), ErrNotFound)
}

func TestStoreGetCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	var into map[string]any
	err = store.Get("bad", &into)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("token", "secret"))
	require.NoError(t, store.Delete("token"))

	var s string
	assert.ErrorIs(t, store.Get("token", &s), ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete("token"))
}

func TestStoreLastWriteWins(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", 1))
	require.NoError(t, store.Set("k", 2))

	var got int
	require.NoError(t, store.Get("k", &got))
	assert.Equal(t, 2, got)
}
