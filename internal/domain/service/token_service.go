package service

import "ticketdesk/internal/domain/entity"

// TokenService mints and verifies signed, time-limited session tokens.
type TokenService interface {
	// Mint issues a token for subjectID that expires entity.SessionLifetime from now.
	Mint(subjectID string) (string, error)

	// Validate verifies the signature and expiry of token and returns its claims.
	// Every failure matches domainerrors.ErrInvalidToken.
	Validate(token string) (*entity.SessionClaims, error)
}
