package output

import "wedding-line-bot/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for managing conversation flow sessions.
// A session exists if and only if the user is mid-flow; its absence means the
// user is idle. Implementations must be thread-safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves a flow session by LINE user ID.
	// Returns nil if the user has no flow in progress.
	// Returns an error only if there is a storage access failure.
	GetSession(userID string) (*domain.FlowSession, error)

	// UpdateSession creates or updates a flow session.
	// The session's UpdatedAt should be refreshed to the current time.
	// If a session with the same UserID already exists, it will be overwritten.
	// Returns an error if the session cannot be stored.
	UpdateSession(session *domain.FlowSession) error

	// DeleteSession removes a flow session by LINE user ID.
	// This operation is idempotent - deleting a non-existent session
	// should not return an error.
	// Returns an error only if there is a storage access failure.
	DeleteSession(userID string) error

	// LockUser serializes flow handling for one user. The caller holds the
	// user's lock for a whole read-modify-write turn and releases it with the
	// returned func. Distinct users never block each other.
	LockUser(userID string) (unlock func())
}
