// Package session provides the per-session stores holding flash messages and
// admin attributes (list mode, persisted filters): an in-memory store for
// single-instance deployments and a Redis-backed one.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that MemoryStore implements ports.SessionStore.
var _ ports.SessionStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory session store. Sessions expire ttl after
// their last write; a non-positive ttl disables expiry. Expired sessions are
// unreachable at once and reclaimed by a sweep that runs at most once per
// ttl.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	sessions  map[string]*memSession
	nextSweep time.Time
}

type memSession struct {
	flashes   []domain.Flash
	attrs     map[string]string
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*memSession{},
	}
}

// AddFlash appends a flash message to the session.
func (m *MemoryStore) AddFlash(_ context.Context, sessionID string, flash domain.Flash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.touchLocked(sessionID)
	s.flashes = append(s.flashes, flash)
	return nil
}

// DrainFlashes returns and removes the pending flash messages.
func (m *MemoryStore) DrainFlashes(_ context.Context, sessionID string) ([]domain.Flash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.liveLocked(sessionID)
	if !ok {
		return nil, nil
	}
	out := s.flashes
	s.flashes = nil
	return out, nil
}

// Get returns a session attribute.
func (m *MemoryStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.liveLocked(sessionID)
	if !ok {
		return "", false, nil
	}
	v, ok := s.attrs[key]
	return v, ok, nil
}

// Set stores a session attribute.
func (m *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.touchLocked(sessionID)
	s.attrs[key] = value
	return nil
}

func (m *MemoryStore) liveLocked(sessionID string) (*memSession, bool) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if m.expired(s, m.now()) {
		delete(m.sessions, sessionID)
		return nil, false
	}
	return s, true
}

// touchLocked returns the live session, creating it when needed, and pushes
// its expiry.
func (m *MemoryStore) touchLocked(sessionID string) *memSession {
	now := m.now()
	m.sweepLocked(now)

	s, ok := m.sessions[sessionID]
	if !ok || m.expired(s, now) {
		s = &memSession{attrs: map[string]string{}}
		m.sessions[sessionID] = s
	}
	s.expiresAt = now.Add(m.ttl)
	return s
}

// sweepLocked drops expired sessions once the sweep interval has elapsed.
func (m *MemoryStore) sweepLocked(now time.Time) {
	if m.ttl <= 0 || now.Before(m.nextSweep) {
		return
	}
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

func (m *MemoryStore) expired(s *memSession, now time.Time) bool {
	return m.ttl > 0 && now.After(s.expiresAt)
}
