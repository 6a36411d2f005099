// Package session implements the demo sign-in flow. There is no real
// authentication: any email with a long-enough password signs in, and at
// most one user record exists at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/seed"
	"fintrack/internal/storage"
)

// ErrInvalidCredentials signals a rejected sign-in or sign-up attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLen = 8

// Store tracks the current user, mirrored to a storage.UserStore.
type Store struct {
	mu    sync.Mutex
	users storage.UserStore
	user  *core.User
}

func New(users storage.UserStore) *Store {
	return &Store{users: users}
}

// Load restores a previously signed-in user, if any.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	s.user = u
	return nil
}

// SignIn accepts any non-empty email with a password of at least eight
// characters. A previously stored account is reused; otherwise the demo
// account is activated.
func (s *Store) SignIn(ctx context.Context, email, password string) (core.User, error) {
	if err := checkCredentials(email, password); err != nil {
		return core.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.users.Load(ctx)
	if err != nil {
		return core.User{}, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		demo := seed.DemoUser()
		u = &demo
	}
	if err := s.users.Save(ctx, *u); err != nil {
		return core.User{}, fmt.Errorf("save user: %w", err)
	}
	s.user = u
	return *u, nil
}

// SignUp creates a fresh account with the default currency. The password is
// checked against the same demo policy and then discarded.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (core.User, error) {
	if strings.TrimSpace(name) == "" {
		return core.User{}, ErrInvalidCredentials
	}
	if err := checkCredentials(email, password); err != nil {
		return core.User{}, err
	}

	u := core.User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Currency: core.USD,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.users.Save(ctx, u); err != nil {
		return core.User{}, fmt.Errorf("save user: %w", err)
	}
	s.user = &u
	return u, nil
}

// SignOut clears the stored user record.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.users.Clear(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.user = nil
	return nil
}

// Current returns the signed-in user, if any.
func (s *Store) Current() (core.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return core.User{}, false
	}
	return *s.user, true
}

// UpdateProfile merges the patch onto the signed-in user and persists the
// result. Currency changes are validated against the supported set.
func (s *Store) UpdateProfile(ctx context.Context, patch core.UserPatch) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return core.User{}, ErrInvalidCredentials
	}

	updated := patch.Apply(*s.user)
	if err := updated.Validate(); err != nil {
		return core.User{}, err
	}
	if err := s.users.Save(ctx, updated); err != nil {
		return core.User{}, fmt.Errorf("save user: %w", err)
	}
	s.user = &updated
	return updated, nil
}

func checkCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || len(password) < minPasswordLen {
		return ErrInvalidCredentials
	}
	return nil
}
