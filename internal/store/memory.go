// internal/store/memory.go
//
// In-memory store of browser play sessions.
//
// Characteristics:
//   - Each Session owns its UsedSet and the current Match.
//   - The map is guarded by an RWMutex; each Session serialises its own
//     game actions through Lock/Unlock so the engine sees one action at a time.
//   - Sessions idle for longer than the TTL are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/forca/internal/game"
	"github.com/robalobadob/forca/internal/selection"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one player's state across rounds.
type Session struct {
	mu       sync.Mutex
	ID       string
	Used     *selection.UsedSet
	Match    *game.Match // nil until the first round starts
	LastSeen time.Time
}

// NewSession returns an empty session with a fresh UsedSet.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, Used: selection.NewUsedSet(), LastSeen: now}
}

// Lock serialises game actions on the session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases Lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions not seen since now-ttl and returns how many.
	Sweep(ctx context.Context, now time.Time, ttl time.Duration) int

	// Len is the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, now time.Time, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		stale := now.Sub(s.LastSeen) > ttl
		s.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
