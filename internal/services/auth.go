// Package services contains the application services of notekeeper.
// This file defines the authentication service: login, signup, logout, and
// session restore over the locally persisted collections.
package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/session"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/users"
)

// MinPasswordLength is the signup validation floor, counted in runes.
const MinPasswordLength = 4

// AuthService tracks the active user in memory; the persisted session slot
// is the source of truth across restarts.
//
// Contract:
//   - Login: plaintext-equality check against the stored record; unknown
//     user and wrong password both surface as common.ErrInvalidCredentials.
//   - Signup: validates, rejects duplicate usernames without side effects,
//     then behaves like a successful login for the new user.
//   - Logout: clears the in-memory user and the persisted slot.
//   - Restore: adopts a previously stored session verbatim, without
//     re-validating credentials.
//   - Current: the active user, or nil when unauthenticated.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	Current() *models.User
}

type authService struct {
	users   users.Repository
	session session.Repository
	log     logging.Logger
	current *models.User
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(users users.Repository, session session.Repository, log logging.Logger) AuthService {
	return &authService{users: users, session: session, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	found, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if found == nil || found.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	a.current = found
	if err := a.session.Set(ctx, *found); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "user logged in", "username", username)
	return found, nil
}

func (a *authService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrEmptyCredentials
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, common.ErrPasswordTooShort
	}

	existing, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if existing != nil {
		return nil, common.ErrUsernameTaken
	}

	user := models.NewUser(username, password)
	if err := a.users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	a.current = &user
	if err := a.session.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	a.log.Info(ctx, "user registered", "username", username)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.current = nil
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	stored, err := a.session.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if stored == nil {
		return nil, nil
	}

	a.current = stored
	a.log.Debug(ctx, "session restored", "username", stored.Username)
	return stored, nil
}

func (a *authService) Current() *models.User {
	return a.current
}
