package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// SessionStore holds the at-most-one active Identity and mirrors it to a
// durable SessionStorage backend. The auth service is the only writer;
// guards and handlers are read-only consumers.
type SessionStore interface {
	// Load reads the durable copy into memory. Absent or malformed payloads
	// yield an empty session and a nil error; only backend failures are
	// returned. Load marks the store as loaded even when it degrades.
	Load(ctx context.Context) error
	// Set replaces the current identity and writes through to storage.
	// The in-memory session is untouched when the write fails.
	Set(ctx context.Context, identity *domain.Identity) error
	// Clear empties the session and removes the durable copy. Idempotent.
	Clear(ctx context.Context) error
	// Current returns a snapshot of the active identity, or nil.
	Current() *domain.Identity
	// Loaded reports whether the initial Load has completed.
	Loaded() bool
}

// SessionStorage persists one serialized identity record under a single key.
type SessionStorage interface {
	// Read returns the stored payload, or (nil, nil) when absent.
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
	Delete(ctx context.Context) error
	// Ping reports whether the backend is reachable (readiness probe).
	Ping(ctx context.Context) error
}
