package output

import "encoding/json"

// CardSource interface - Output port
// Supplies pre-authored flex card payloads by logical key
type CardSource interface {
	// Card tries the given keys in order and returns the first payload
	// found. When every key misses it returns domain.ErrContentUnavailable.
	Card(keys ...string) (json.RawMessage, error)
}
