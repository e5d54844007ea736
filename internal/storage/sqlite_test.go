package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "greenly.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("greenly_cart", []byte(`{"items":[]}`)))

	got, err := store.Get("greenly_cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), got)
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "greenly.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("no_such_key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "greenly.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []byte("first")))
	require.NoError(t, store.Set("k", []byte("second")))

	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "greenly.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))

	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	require.NoError(t, store.Delete("k"))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenly.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("greenly_auth_token", []byte("tok-123")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("greenly_auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-123"), got)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("original")
	require.NoError(t, store.Set("k", value))
	value[0] = 'X'

	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
