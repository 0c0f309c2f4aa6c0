package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	value, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accessToken", "tok-1"))

	value, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "old"))
	require.NoError(t, store.Set(ctx, "k", "new"))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestSQLiteStore_Remove(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Remove(ctx, "k"))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, value)

	// Removing a missing key is not an error.
	assert.NoError(t, store.Remove(ctx, "k"))
}

func TestSQLiteStore_Clear(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Clear(ctx))

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSQLiteStore_ListKeysSorted(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "refreshToken", "r"))
	require.NoError(t, store.Set(ctx, "accessToken", "a"))
	require.NoError(t, store.Set(ctx, "meditationHistory", "{}"))

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"accessToken", "meditationHistory", "refreshToken"}, keys)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
