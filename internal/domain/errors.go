package domain

import "errors"

var (
	// ErrContentUnavailable - a pre-authored card payload could not be loaded
	ErrContentUnavailable = errors.New("card content unavailable")

	// ErrStoreUnavailable - the durable store is unreachable or not configured
	ErrStoreUnavailable = errors.New("durable store unavailable")

	// ErrLineNotConfigured - the LINE messaging client has no channel token
	ErrLineNotConfigured = errors.New("line messaging client not configured")
)
