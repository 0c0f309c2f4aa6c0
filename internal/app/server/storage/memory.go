// Package storage is the in-memory backing store of the development server.
// It exists so the client can be exercised end to end without a real
// backend; nothing survives a restart.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"medtracker/internal/domain/meditation"
	"medtracker/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ServerRecord is a record as the server stores it: flat, keyed by its own
// id, owned by a user. The server does not deduplicate; every create call
// appends a new row, which is why client retries can produce duplicates.
type ServerRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	MeditationID string    `json:"meditationId"`
	Value        int       `json:"value"`
	CreatedAt    time.Time `json:"createdAt"`
}

type account struct {
	user     user.User
	password string
}

// Memory holds users, sessions, records and the catalog behind one mutex.
type Memory struct {
	log *slog.Logger

	mu       sync.RWMutex
	accounts map[string]account // by email
	access   map[string]string  // access token -> user id
	refresh  map[string]string  // refresh token -> user id
	records  []ServerRecord
	catalog  []meditation.Meditation
}

func NewMemory(log *slog.Logger) *Memory {
	return &Memory{
		log:      log.With("component", "server_storage"),
		accounts: make(map[string]account),
		access:   make(map[string]string),
		refresh:  make(map[string]string),
		catalog:  meditation.Defaults(),
	}
}

// SeedUser registers an account, replacing any existing one with the same
// email. Used at startup for the demo user.
func (m *Memory) SeedUser(email, password, name string) user.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := user.User{ID: uuid.NewString(), Email: email, Name: name}
	m.accounts[email] = account{user: u, password: password}
	return u
}

// Login checks the credentials and issues a fresh token pair.
func (m *Memory) Login(_ context.Context, creds user.Credentials) (user.Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[creds.Email]
	if !ok || acc.password != creds.Password {
		return user.Tokens{}, ErrInvalidCredentials
	}
	return m.issueTokens(acc.user.ID), nil
}

// Refresh rotates the token pair. The old refresh token is revoked.
func (m *Memory) Refresh(_ context.Context, refreshToken string) (user.Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID, ok := m.refresh[refreshToken]
	if !ok {
		return user.Tokens{}, ErrInvalidToken
	}
	delete(m.refresh, refreshToken)
	return m.issueTokens(userID), nil
}

func (m *Memory) issueTokens(userID string) user.Tokens {
	tokens := user.Tokens{
		AccessToken:  uuid.NewString(),
		RefreshToken: uuid.NewString(),
	}
	m.access[tokens.AccessToken] = userID
	m.refresh[tokens.RefreshToken] = userID
	return tokens
}

// Validate resolves an access token to a user id.
func (m *Memory) Validate(_ context.Context, accessToken string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.access[accessToken]
	if !ok {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Revoke drops every token belonging to the user.
func (m *Memory) Revoke(_ context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t, id := range m.access {
		if id == userID {
			delete(m.access, t)
		}
	}
	for t, id := range m.refresh {
		if id == userID {
			delete(m.refresh, t)
		}
	}
}

// UserByID returns the profile for a user id.
func (m *Memory) UserByID(_ context.Context, userID string) (user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, acc := range m.accounts {
		if acc.user.ID == userID {
			return acc.user, nil
		}
	}
	return user.User{}, ErrInvalidToken
}

// CreateRecord stores a record and returns its server-assigned id.
func (m *Memory) CreateRecord(_ context.Context, userID, meditationID string, value int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := ServerRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		MeditationID: meditationID,
		Value:        value,
		CreatedAt:    time.Now(),
	}
	m.records = append(m.records, rec)
	m.log.Debug("record stored", "record_id", rec.ID, "user_id", userID)
	return rec.ID, nil
}

// Records returns the user's records in insertion order.
func (m *Memory) Records(_ context.Context, userID string) []ServerRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []ServerRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

// Meditations returns the practice catalog.
func (m *Memory) Meditations(_ context.Context) []meditation.Meditation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}
