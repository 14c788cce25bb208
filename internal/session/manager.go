package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/pawns-only-go/internal/errors"
)

// Manager tracks the live game sessions of a process.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new game between the named players and registers it
// under a fresh identifier.
func (m *Manager) Create(whiteName, blackName string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(uuid.New().String(), whiteName, blackName)
	m.sessions[s.id] = s
	return s
}

// Get returns the session with the given identifier.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[id]
	if !exists {
		return nil, errors.ErrSessionNotFound
	}
	return s, nil
}

// Remove drops a session from the manager. Removing an unknown identifier
// is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
