// Package session holds the signed-in identity for the lifetime of the
// process and persists it between runs, standing in for the browser's local
// storage in a browser client. The session is an explicit collaborator
// passed to whoever needs the display name; there are no ambient globals.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/ports"
)

// Session is the explicit session context: hydrate from disk, login/signup
// through the auth client, logout. Safe for concurrent use.
type Session struct {
	auth   ports.AuthClient
	store  ports.SessionStore
	logger *slog.Logger

	mu   sync.RWMutex
	user *domain.User
}

// New creates a Session backed by the given auth client and store.
func New(auth ports.AuthClient, store ports.SessionStore, logger *slog.Logger) *Session {
	return &Session{auth: auth, store: store, logger: logger}
}

// Hydrate loads a previously persisted identity. A missing state file is a
// clean "not logged in", not an error.
func (s *Session) Hydrate() error {
	user, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Login authenticates against the tracker API and persists the identity on
// success. Memory is untouched when the server rejects the credentials.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "logged in", slog.String("user_id", user.ID))
	return user, nil
}

// Signup creates an account and persists the identity on success.
func (s *Session) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := s.auth.Signup(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "account created", slog.String("user_id", user.ID))
	return user, nil
}

// Logout clears the in-memory identity and removes the state file. Logging
// out while logged out is a no-op.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Current returns a copy of the signed-in identity, or nil when logged out.
func (s *Session) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// DisplayName returns the signed-in user's name, or "" when logged out. The
// front end uses it as the default reporter/author value.
func (s *Session) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return ""
	}
	return s.user.Name
}
