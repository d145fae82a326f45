// Package session holds the at-most-one active identity and mirrors it to a
// durable storage backend so the session survives restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

// Store is the single mutable session cell. Writes are atomic single-step
// replacements under the lock, so no reader ever observes a half-written
// session.
type Store struct {
	mu      sync.RWMutex
	current *domain.Identity
	loaded  atomic.Bool
	storage ports.SessionStorage
	logger  zerolog.Logger
}

func NewStore(storage ports.SessionStorage, logger zerolog.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Load reads the durable copy into memory. An absent or malformed record
// degrades to an empty session; only a backend failure is reported, and even
// then the store counts as loaded so guards can start deciding.
func (s *Store) Load(ctx context.Context) error {
	defer s.loaded.Store(true)

	payload, err := s.storage.Read(ctx)
	if err != nil {
		return fmt.Errorf("session load: %w", err)
	}
	if len(payload) == 0 {
		return nil
	}

	identity, err := decodeIdentity(payload)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding malformed session record")
		return nil
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	s.logger.Debug().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("session restored")
	return nil
}

// Set replaces the current identity, writing through to storage first so a
// failed write leaves the in-memory session untouched.
func (s *Store) Set(ctx context.Context, identity *domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	if err := s.storage.Write(ctx, payload); err != nil {
		return fmt.Errorf("session set: %w", err)
	}

	clone := *identity
	s.mu.Lock()
	s.current = &clone
	s.mu.Unlock()
	return nil
}

// Clear empties the session and removes the durable copy. The in-memory
// session is cleared even when the delete fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

// Current returns a copy of the active identity, or nil. Pure read.
func (s *Store) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// Loaded reports whether the initial Load has completed.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// decodeIdentity deserializes a stored record, rejecting anything that does
// not conform to the {id, name, email, role, approved} layout.
func decodeIdentity(payload []byte) (*domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, domain.ErrMalformedSession
	}
	if identity.ID == "" || !identity.Role.IsValid() {
		return nil, domain.ErrMalformedSession
	}
	return &identity, nil
}
