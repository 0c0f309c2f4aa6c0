package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeStore is an in-memory Store with optional failure injection.
type fakeStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func newTestRepository(store Store) *Repository {
	return NewRepository(store, slog.Default())
}

func TestRepository_LoadEmpty(t *testing.T) {
	repo := newTestRepository(newFakeStore())

	h := repo.Load(context.Background())

	require.NotNil(t, h)
	assert.Empty(t, h)
}

func TestRepository_LoadToleratesFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStore)
	}{
		{
			name: "store read fails",
			setup: func(f *fakeStore) {
				f.getErr = errors.New("disk gone")
			},
		},
		{
			name: "stored value is not JSON",
			setup: func(f *fakeStore) {
				f.values[StorageKey] = "not-json{"
			},
		},
		{
			name: "stored value is the wrong shape",
			setup: func(f *fakeStore) {
				f.values[StorageKey] = `["list","not","map"]`
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			tt.setup(store)
			repo := newTestRepository(store)

			h := repo.Load(context.Background())

			assert.Empty(t, h)
		})
	}
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	in := History{
		"mandala": {
			{ID: "r1", Count: 21, Timestamp: 1700000000000},
			{ID: "r2", Count: 33, Timestamp: 1700000100000, Synced: true, ServerID: "s2"},
		},
	}
	require.NoError(t, repo.Save(ctx, in))

	out := repo.Load(ctx)

	assert.Equal(t, in, out)
}

func TestRepository_AppendCreatesMeditation(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	rec := NewRecord(108)
	require.NoError(t, repo.Append(ctx, "prostrations", rec))

	h := repo.Load(ctx)
	require.Len(t, h["prostrations"], 1)
	assert.Equal(t, rec, h["prostrations"][0])
}

func TestRepository_AppendPreservesOrder(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	first := NewRecord(1)
	second := NewRecord(2)
	require.NoError(t, repo.Append(ctx, "mandala", first))
	require.NoError(t, repo.Append(ctx, "mandala", second))

	h := repo.Load(ctx)
	require.Len(t, h["mandala"], 2)
	assert.Equal(t, first.ID, h["mandala"][0].ID)
	assert.Equal(t, second.ID, h["mandala"][1].ID)
}

func TestRepository_AppendReturnsWriteError(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("disk full")
	repo := newTestRepository(store)

	err := repo.Append(context.Background(), "mandala", NewRecord(1))

	assert.Error(t, err)
}

func TestRepository_Update(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	rec := NewRecord(21)
	require.NoError(t, repo.Append(ctx, "mandala", rec))

	rec.Synced = true
	rec.ServerID = "srv-1"
	require.NoError(t, repo.Update(ctx, "mandala", rec))

	h := repo.Load(ctx)
	require.Len(t, h["mandala"], 1)
	assert.True(t, h["mandala"][0].Synced)
	assert.Equal(t, "srv-1", h["mandala"][0].ServerID)
	assert.Equal(t, 21, h["mandala"][0].Count)
}

func TestRepository_UpdateUnknownRecord(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "mandala", NewRecord(1)))

	err := repo.Update(ctx, "mandala", Record{ID: "missing"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = repo.Update(ctx, "unknown-meditation", Record{ID: "missing"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_MarkDeletedAndRestore(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	rec := NewRecord(33)
	require.NoError(t, repo.Append(ctx, "mandala", rec))

	require.NoError(t, repo.MarkDeleted(ctx, "mandala", rec.ID))
	h := repo.Load(ctx)
	assert.True(t, h["mandala"][0].Deleted)
	assert.Equal(t, 0, TotalCount(h, "mandala"))

	// Deleting again is a no-op in effect.
	require.NoError(t, repo.MarkDeleted(ctx, "mandala", rec.ID))
	h = repo.Load(ctx)
	assert.True(t, h["mandala"][0].Deleted)

	require.NoError(t, repo.Restore(ctx, "mandala", rec.ID))
	h = repo.Load(ctx)
	assert.False(t, h["mandala"][0].Deleted)
	assert.Equal(t, 33, TotalCount(h, "mandala"))
}

func TestRepository_MarkDeletedKeepsSyncState(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	rec := NewRecord(5)
	rec.Synced = true
	rec.ServerID = "srv-5"
	require.NoError(t, repo.Append(ctx, "mandala", rec))

	require.NoError(t, repo.MarkDeleted(ctx, "mandala", rec.ID))

	h := repo.Load(ctx)
	assert.True(t, h["mandala"][0].Synced)
	assert.Equal(t, "srv-5", h["mandala"][0].ServerID)
}

func TestRepository_MarkDeletedUnknownRecord(t *testing.T) {
	repo := newTestRepository(newFakeStore())

	err := repo.MarkDeleted(context.Background(), "mandala", "missing")

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_Clear(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "mandala", NewRecord(1)))
	require.NoError(t, repo.Clear(ctx))

	assert.Empty(t, repo.Load(ctx))
	assert.NotContains(t, store.values, StorageKey)
}
