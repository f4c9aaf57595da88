// internal/store/memory.go
//
// In-memory registry of live game sessions for the network adapters.
//
// Characteristics:
//   - Stores *game.Session values keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update runs the callback under the
//     write lock so each session sees one control flow at a time.
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/wordgrid/internal/game"
)

var ErrNotFound = errors.New("store: session not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Add registers s under a fresh ID and returns it.
	Add(ctx context.Context, s *game.Session) (string, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// View runs fn with shared access to the session. fn must not mutate it.
	View(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a session. Unknown IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Len is the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
	newID    func() string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session), newID: uuid.NewString}
}

func (m *memory) Add(ctx context.Context, s *game.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newID()
	m.sessions[id] = s
	return id, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) View(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
