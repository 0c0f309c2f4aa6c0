package history

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"
)

// StorageKey is the key under which the serialized history document lives in
// the local store.
const StorageKey = "meditationHistory"

// Store is the durable key-value storage the repository persists to. A
// missing key reads back as an empty string, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Repository owns the canonical on-device history document. Every mutation
// is a whole-document read-modify-write; last writer wins. Callers that can
// trigger concurrent mutations must serialize them themselves.
type Repository struct {
	store Store
	log   *slog.Logger
}

func NewRepository(store Store, log *slog.Logger) *Repository {
	return &Repository{
		store: store,
		log:   log.With("component", "history_repository"),
	}
}

// Load reads the history document. A missing document, a failed read or
// unparseable JSON all yield an empty history: for reads there is no data
// yet, never a fatal error.
func (r *Repository) Load(ctx context.Context) History {
	raw, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		r.log.Error("failed to read history from store", "error", err)
		return History{}
	}
	if raw == "" {
		return History{}
	}

	var h History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		r.log.Error("stored history is not valid JSON, treating as empty", "error", err)
		return History{}
	}
	return h
}

// Save serializes the full mapping and overwrites the stored document in a
// single write. It never merges; callers pass the complete intended state.
func (r *Repository) Save(ctx context.Context, h History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Append adds a record to the end of a meditation's sequence and persists
// the result.
func (r *Repository) Append(ctx context.Context, meditationID string, rec Record) error {
	h := r.Load(ctx)
	h[meditationID] = append(h[meditationID], rec)
	return r.Save(ctx, h)
}

// Update replaces the record with the same id within the meditation's
// sequence and persists the result. Returns ErrRecordNotFound when the
// meditation or the record is unknown.
func (r *Repository) Update(ctx context.Context, meditationID string, rec Record) error {
	h := r.Load(ctx)
	records, ok := h[meditationID]
	if !ok {
		return ErrRecordNotFound
	}

	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			return r.Save(ctx, h)
		}
	}
	return ErrRecordNotFound
}

// MarkDeleted soft-deletes a record. The record stays in storage and keeps
// its sync state; only aggregation skips it. Deleting an already-deleted
// record is a no-op in effect but still rewrites the document.
func (r *Repository) MarkDeleted(ctx context.Context, meditationID, recordID string) error {
	return r.setDeleted(ctx, meditationID, recordID, true)
}

// Restore clears the soft-delete flag, symmetric to MarkDeleted.
func (r *Repository) Restore(ctx context.Context, meditationID, recordID string) error {
	return r.setDeleted(ctx, meditationID, recordID, false)
}

func (r *Repository) setDeleted(ctx context.Context, meditationID, recordID string, deleted bool) error {
	h := r.Load(ctx)
	records, ok := h[meditationID]
	if !ok {
		return ErrRecordNotFound
	}

	for i := range records {
		if records[i].ID == recordID {
			records[i].Deleted = deleted
			return r.Save(ctx, h)
		}
	}
	return ErrRecordNotFound
}

// Clear removes the persisted document entirely.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
