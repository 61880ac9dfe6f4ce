package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/exception"
)

// ErrNotFound is returned when a request addresses a session that was
// never created. There is no valid behaviour outside an active session,
// so consumers fail fast instead of falling back to defaults.
var ErrNotFound = exception.NotFound("booking session not found")

// Manager owns the active booking sessions, one per in-progress flow.
// State lives for the process lifetime only; persistence across sessions
// is explicitly out of scope.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with the wizard at the landing step and
// default search parameters.
func (m *Manager) Create() *Session {
	sess := newSession(uuid.NewString())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.ID()] = sess

	return sess
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return sess, nil
}

// Len reports the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
