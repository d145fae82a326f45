package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

// Credential is one row of the fixed login table. The plaintext password is
// hashed at construction time and never kept around.
type Credential struct {
	Email    string
	Password string
	Identity domain.Identity
}

type credentialRow struct {
	hash     []byte
	identity domain.Identity
}

// AuthService implements login, registration, and logout over a fixed
// credential table. It is the only component that writes the session store.
type AuthService struct {
	sessions  ports.SessionStore
	directory ports.EmployeeRepository
	table     map[string]credentialRow
	pending   atomic.Int32
	logger    zerolog.Logger
}

// NewAuthService builds the service and hashes the seeded credentials.
// Email lookup is exact, case-sensitive as stored.
func NewAuthService(sessions ports.SessionStore, directory ports.EmployeeRepository, creds []Credential, logger zerolog.Logger) (*AuthService, error) {
	table := make(map[string]credentialRow, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		table[c.Email] = credentialRow{hash: hash, identity: c.Identity}
	}
	return &AuthService{
		sessions:  sessions,
		directory: directory,
		table:     table,
		logger:    logger,
	}, nil
}

// Login verifies the credentials and activates the matching identity.
// Any failure leaves the session exactly as it was before the call.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	s.pending.Add(1)
	defer s.pending.Add(-1)

	row, ok := s.table[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(row.hash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := row.identity
	if err := s.sessions.Set(ctx, &identity); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", identity.Email).
		Str("role", string(identity.Role)).
		Msg("login succeeded")

	return &identity, nil
}

// Register creates a fresh employee identity awaiting approval and activates
// it as the current session. Registration performs no duplicate-email check;
// the directory write is best-effort so a directory failure never blocks the
// new session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	s.pending.Add(1)
	defer s.pending.Add(-1)

	identity := &domain.Identity{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     domain.RoleEmployee,
		Approved: false,
	}

	if s.directory != nil {
		employee := &domain.Employee{
			ID:       identity.ID,
			Name:     identity.Name,
			Email:    identity.Email,
			Role:     identity.Role,
			Approved: identity.Approved,
			JoinDate: time.Now().UTC().Format("2006-01-02"),
		}
		if _, err := s.directory.Create(ctx, employee); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to record registration in directory")
		}
	}

	if err := s.sessions.Set(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("employee registered, awaiting approval")

	return identity, nil
}

// Logout clears the session. Storage failures are logged and swallowed so
// logout always succeeds; calling it twice is the same as calling it once.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove durable session copy")
	}
	return nil
}

// Current returns the active identity, or nil.
func (s *AuthService) Current() *domain.Identity {
	return s.sessions.Current()
}

// IsAuthenticated reports whether any identity is active. The approval flag
// is not consulted: unapproved employees authenticate like approved ones.
func (s *AuthService) IsAuthenticated() bool {
	return s.sessions.Current() != nil
}

// IsAdmin reports whether the active identity carries the admin role.
func (s *AuthService) IsAdmin() bool {
	return s.sessions.Current().IsAdmin()
}

// Loading is true until the initial session load completes and whenever a
// login or registration is in flight.
func (s *AuthService) Loading() bool {
	return !s.sessions.Loaded() || s.pending.Load() > 0
}
