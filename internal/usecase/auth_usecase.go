// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ticketdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the stored identity minus its secret.
type RegisterOutput struct {
	User *entity.PublicUser
}

// LoginUser is the identity summary returned next to a fresh token.
type LoginUser struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// AuthUsecase defines the credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register stores a new identity. No token is issued.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and mints a bearer token.
	// Unknown email and wrong password fail with the same error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate validates a bearer token and returns its claims.
	Authenticate(ctx context.Context, token string) (*entity.SessionClaims, error)

	// Me returns the public view of the identity a token was minted for.
	Me(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
}
