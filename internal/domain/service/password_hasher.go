// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash derives a self-describing hash from a plaintext password with a fresh random salt.
	Hash(ctx context.Context, password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes yield false, never an error.
	Check(ctx context.Context, password, hash string) bool

	// ValidatePasswordStrength applies the configured password policy.
	ValidatePasswordStrength(password string) error
}
