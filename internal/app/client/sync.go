package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"medtracker/internal/domain/history"
)

// recordSyncer is the slice of the HTTP client the engine needs. Narrow so
// tests can substitute a fake server.
type recordSyncer interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (string, error)
}

// SyncStatus is a summary of the local history's sync state. Soft-deleted
// records are counted like any other: deletion only hides a record from
// totals, it does not change what still needs pushing.
type SyncStatus struct {
	TotalRecords   int `json:"totalRecords"`
	SyncedRecords  int `json:"syncedRecords"`
	PendingRecords int `json:"pendingRecords"`
}

// SyncEngine pushes locally created records to the server. Writes are
// local-first: a record is durable the moment it lands in the repository,
// and the remote copy is created best-effort afterwards. A record that
// fails to push stays pending and is retried on every later sweep; there
// is no retry limit and no backoff beyond the fixed inter-call delay.
type SyncEngine struct {
	repo  *history.Repository
	api   recordSyncer
	log   *slog.Logger
	delay time.Duration

	mu      sync.Mutex
	syncing bool
}

func NewSyncEngine(repo *history.Repository, api recordSyncer, log *slog.Logger, delay time.Duration) *SyncEngine {
	return &SyncEngine{
		repo:  repo,
		api:   api,
		log:   log.With("component", "sync_engine"),
		delay: delay,
	}
}

// AddRecord logs a new practice event. The local append must succeed; the
// push to the server is attempted immediately but its failure never fails
// the call. The returned record reflects the sync outcome.
func (e *SyncEngine) AddRecord(ctx context.Context, meditationID string, count int) (history.Record, error) {
	if count <= 0 {
		return history.Record{}, history.ErrInvalidCount
	}

	rec := history.NewRecord(count)
	if err := e.repo.Append(ctx, meditationID, rec); err != nil {
		return history.Record{}, err
	}

	if synced := e.syncRecordToServer(ctx, meditationID, &rec); !synced {
		e.log.Info("record saved locally, will sync later", "record_id", rec.ID)
	}
	return rec, nil
}

// syncRecordToServer pushes one record and, on success, marks it synced in
// the repository. The record is mutated in place so callers see the new
// sync state. Failures are logged and swallowed.
func (e *SyncEngine) syncRecordToServer(ctx context.Context, meditationID string, rec *history.Record) bool {
	serverID, err := e.api.CreateRecord(ctx, CreateRecordRequest{
		MeditationID: meditationID,
		Value:        rec.Count,
	})
	if err != nil {
		e.log.Warn("failed to sync record", "record_id", rec.ID, "error", err)
		return false
	}

	rec.Synced = true
	rec.ServerID = serverID
	if err := e.repo.Update(ctx, meditationID, *rec); err != nil {
		// The server now has the record but the local flag write failed, so
		// the next sweep will push a duplicate.
		e.log.Error("failed to mark record as synced", "record_id", rec.ID, "error", err)
		return false
	}

	e.log.Debug("record synced", "record_id", rec.ID, "server_id", serverID)
	return true
}

// SyncAllPending sweeps the whole history and pushes every record that is
// not yet synced, pausing between calls so the server is not hammered.
// Only one sweep runs at a time; a call that finds a sweep in progress
// returns immediately.
func (e *SyncEngine) SyncAllPending(ctx context.Context) {
	e.mu.Lock()
	if e.syncing {
		e.mu.Unlock()
		e.log.Debug("sync already in progress, skipping")
		return
	}
	e.syncing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.syncing = false
		e.mu.Unlock()
	}()

	h := e.repo.Load(ctx)

	var pending, pushed int
	for meditationID, records := range h {
		for i := range records {
			if records[i].Synced {
				continue
			}
			pending++

			rec := records[i]
			if e.syncRecordToServer(ctx, meditationID, &rec) {
				pushed++
			}

			select {
			case <-ctx.Done():
				e.log.Warn("sync interrupted", "error", ctx.Err())
				return
			case <-time.After(e.delay):
			}
		}
	}

	if pending > 0 {
		e.log.Info("sync sweep finished", "pending", pending, "pushed", pushed)
	}
}

// IsSyncing reports whether a sweep is currently running.
func (e *SyncEngine) IsSyncing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.syncing
}

// Status counts records by sync state across all meditations, deleted ones
// included.
func (e *SyncEngine) Status(ctx context.Context) SyncStatus {
	h := e.repo.Load(ctx)

	var st SyncStatus
	for _, records := range h {
		for _, rec := range records {
			st.TotalRecords++
			if rec.Synced {
				st.SyncedRecords++
			} else {
				st.PendingRecords++
			}
		}
	}
	return st
}
