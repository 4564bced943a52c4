// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no identity matches the lookup.
// It is internal to the auth flow and is never surfaced raw to login callers.
var ErrUserNotFound = domainerrors.ErrUserNotFound

// UserRepository is the identity store gateway. Implementations own the users table,
// generate identifiers and enforce email uniqueness.
type UserRepository interface {
	// Create stores a new identity for email with the given hash and returns the full stored record.
	// It fails with a KindConflict error when the email is already taken.
	Create(ctx context.Context, email, passwordHash string) (*entity.User, error)

	// FindByEmail retrieves a single identity by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single identity by its ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
