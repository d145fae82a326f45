package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// AuthService authenticates and registers principals. It is the sole writer
// of the SessionStore.
type AuthService interface {
	// Login verifies credentials against the fixed table and activates the
	// matching identity. On failure the session is left exactly as it was.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	// Register creates a fresh unapproved employee identity and immediately
	// activates it; admin approval happens later on the dashboard.
	Register(ctx context.Context, name, email, password string) (*domain.Identity, error)
	// Logout clears the session. Idempotent; never fails.
	Logout(ctx context.Context) error

	// Current returns the active identity, or nil.
	Current() *domain.Identity
	// IsAuthenticated reports whether any identity is active. The approval
	// flag is intentionally not consulted.
	IsAuthenticated() bool
	// IsAdmin reports whether the active identity carries the admin role.
	IsAdmin() bool
	// Loading is true while the initial session load or a login/register
	// call is outstanding. Guards suspend admit/deny decisions while true.
	Loading() bool
}
