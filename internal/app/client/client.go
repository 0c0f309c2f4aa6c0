// Package client wires the local store, the history repository, the sync
// engine and the HTTP client into the application facade the CLI talks to.
package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"medtracker/internal/app/client/config"
	"medtracker/internal/domain/history"
	"medtracker/internal/domain/meditation"
	"medtracker/internal/domain/user"
)

// Token storage keys. They share the store with the history document, so
// clearing the store wipes both the session and the local data.
const (
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

// App is the client application. All operations on local data work without
// a session; only logging a new record requires an authenticated user.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	api   *httpClient
	store Store
	repo  *history.Repository
	sync  *SyncEngine
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := NewSQLiteStore(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return newApp(cfg, log, store), nil
}

func newApp(cfg *config.Config, log *slog.Logger, store Store) *App {
	api := newHTTPClient(cfg, log)
	repo := history.NewRepository(store, log)

	return &App{
		cfg:   cfg,
		log:   log.With("component", "app"),
		api:   api,
		store: store,
		repo:  repo,
		sync:  NewSyncEngine(repo, api, log, cfg.SyncDelay()),
	}
}

// Login authenticates against the server and persists the token pair.
func (a *App) Login(ctx context.Context, creds user.Credentials) error {
	tokens, err := a.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.saveTokens(ctx, tokens); err != nil {
		return err
	}
	a.log.Info("logged in", "email", creds.Email)
	return nil
}

// Logout ends the session. The server call is best-effort; the local
// session and history are cleared regardless, matching the account switch
// semantics: the next user must not inherit the previous user's records.
func (a *App) Logout(ctx context.Context) error {
	if a.loadToken(ctx) {
		if err := a.api.Logout(ctx); err != nil {
			a.log.Warn("server logout failed, clearing local session anyway", "error", err)
		}
	}

	a.api.SetToken("")
	if err := a.store.Remove(ctx, accessTokenKey); err != nil {
		return fmt.Errorf("clear access token: %w", err)
	}
	if err := a.store.Remove(ctx, refreshTokenKey); err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}
	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	a.log.Info("logged out")
	return nil
}

// RefreshAuth exchanges the stored refresh token for a new token pair.
func (a *App) RefreshAuth(ctx context.Context) error {
	refresh, err := a.store.Get(ctx, refreshTokenKey)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		return ErrNoRefreshToken
	}

	tokens, err := a.api.Refresh(ctx, refresh)
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	return a.saveTokens(ctx, tokens)
}

// CurrentUser returns the authenticated profile. An expired access token is
// refreshed once; if that fails too, the caller is not authenticated.
func (a *App) CurrentUser(ctx context.Context) (user.User, error) {
	if !a.loadToken(ctx) {
		return user.User{}, ErrNotAuthenticated
	}

	u, err := a.api.Profile(ctx)
	if err == nil {
		return u, nil
	}

	if refreshErr := a.RefreshAuth(ctx); refreshErr != nil {
		a.log.Debug("session refresh failed", "error", refreshErr)
		return user.User{}, ErrNotAuthenticated
	}
	u, err = a.api.Profile(ctx)
	if err != nil {
		return user.User{}, ErrNotAuthenticated
	}
	return u, nil
}

// IsAuthenticated reports whether a usable session exists.
func (a *App) IsAuthenticated(ctx context.Context) bool {
	_, err := a.CurrentUser(ctx)
	return err == nil
}

// AddRecord logs a practice event for the authenticated user. This is the
// only local operation gated on a session.
func (a *App) AddRecord(ctx context.Context, meditationID string, count int) (history.Record, error) {
	if _, err := a.CurrentUser(ctx); err != nil {
		return history.Record{}, err
	}
	return a.sync.AddRecord(ctx, meditationID, count)
}

// History returns the full local history document.
func (a *App) History(ctx context.Context) history.History {
	return a.repo.Load(ctx)
}

// TotalCount sums the non-deleted record counts for one meditation.
func (a *App) TotalCount(ctx context.Context, meditationID string) int {
	return history.TotalCount(a.repo.Load(ctx), meditationID)
}

// DeleteRecord soft-deletes a record. Works offline.
func (a *App) DeleteRecord(ctx context.Context, meditationID, recordID string) error {
	return a.repo.MarkDeleted(ctx, meditationID, recordID)
}

// RestoreRecord undoes a soft delete. Works offline.
func (a *App) RestoreRecord(ctx context.Context, meditationID, recordID string) error {
	return a.repo.Restore(ctx, meditationID, recordID)
}

// Meditations returns the practice catalog, falling back to the built-in
// defaults when the server is unreachable.
func (a *App) Meditations(ctx context.Context) []meditation.Meditation {
	a.loadToken(ctx)
	list, err := a.api.Meditations(ctx)
	if err != nil {
		a.log.Debug("catalog fetch failed, using defaults", "error", err)
		return meditation.Defaults()
	}
	return list
}

// SyncAll pushes every pending record to the server.
func (a *App) SyncAll(ctx context.Context) {
	a.loadToken(ctx)
	a.sync.SyncAllPending(ctx)
}

// SyncStatus summarizes the local history's sync state.
func (a *App) SyncStatus(ctx context.Context) SyncStatus {
	return a.sync.Status(ctx)
}

// ClearStorage wipes the entire local store, session included.
func (a *App) ClearStorage(ctx context.Context) error {
	a.api.SetToken("")
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info("local storage cleared")
	return nil
}

func (a *App) Close() error {
	if closer, ok := a.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (a *App) saveTokens(ctx context.Context, tokens user.Tokens) error {
	if err := a.store.Set(ctx, accessTokenKey, tokens.AccessToken); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := a.store.Set(ctx, refreshTokenKey, tokens.RefreshToken); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// loadToken primes the HTTP client with the persisted access token and
// reports whether one exists.
func (a *App) loadToken(ctx context.Context) bool {
	token, err := a.store.Get(ctx, accessTokenKey)
	if err != nil || token == "" {
		return false
	}
	a.api.SetToken(token)
	return true
}
