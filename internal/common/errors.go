// Package common defines shared sentinel errors used across notekeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors. ErrInvalidCredentials deliberately covers both
	// "user does not exist" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Validation errors, surfaced to the user as messages.
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmptyNote        = errors.New("note needs a title or a body")
	ErrNotAuthenticated = errors.New("not logged in")
)
