// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the persisted identity of an account that can log in.
type User struct {
	ID           uuid.UUID // Generated by the identity store at creation, never changes.
	Email        string    // Unique login identifier, stored trimmed and lower-cased.
	PasswordHash string    `json:"-"` // Self-describing Argon2id PHC string.
	Role         Role      // Defaults to RoleUser.
	CreatedAt    time.Time // Set once by the identity store.
}

// PublicUser is the client-facing view of a User. It has no field for the password hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the secret material from the identity.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NormalizeEmail is the identity store's email policy: trimmed and lower-cased,
// so "A@X.com" and "a@x.com" name the same identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
