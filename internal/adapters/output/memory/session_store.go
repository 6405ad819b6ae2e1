package memory

import (
	"sync"
	"time"

	"wedding-line-bot/internal/domain"
	"wedding-line-bot/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory flow session storage.
// Uses sync.Map for thread-safe access to sessions plus a registry of per-user
// mutexes so one user's webhook turns are handled strictly one at a time.
// Sessions never expire on their own: an abandoned flow stays pending until
// the user finishes or restarts it.
type MemorySessionStore struct {
	sessions sync.Map

	lockMu    sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewMemorySessionStore creates a new empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		userLocks: make(map[string]*sync.Mutex),
	}
}

// GetSession retrieves a flow session by LINE user ID.
// Returns nil if the user has no flow in progress.
func (m *MemorySessionStore) GetSession(userID string) (*domain.FlowSession, error) {
	value, exists := m.sessions.Load(userID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.FlowSession)
	if !ok {
		// If data is malformed, delete and return nil
		m.sessions.Delete(userID)
		return nil, nil
	}

	return session, nil
}

// UpdateSession creates or updates a flow session.
// The session's UpdatedAt is refreshed to the current time before storing.
func (m *MemorySessionStore) UpdateSession(session *domain.FlowSession) error {
	session.UpdatedAt = time.Now()

	m.sessions.Store(session.UserID, session)

	return nil
}

// DeleteSession removes a flow session by LINE user ID.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(userID string) error {
	m.sessions.Delete(userID)
	return nil
}

// LockUser acquires the per-user lock, creating it on first use. Lock entries
// live for the lifetime of the store; the guest list is small and bounded.
func (m *MemorySessionStore) LockUser(userID string) func() {
	m.lockMu.Lock()
	lock, ok := m.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.userLocks[userID] = lock
	}
	m.lockMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
