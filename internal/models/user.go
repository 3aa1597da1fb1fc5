// Package models defines the records persisted by the notes application.
// Field tags match the stored JSON documents exactly; changing them changes
// the on-device data format.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password is stored and compared
// verbatim; this mirrors the stored document format and is a known
// limitation, not an invitation.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser constructs a User with a fresh id and creation timestamp.
func NewUser(username, password string) User {
	return User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
}
