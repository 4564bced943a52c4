package entity

import "time"

// SessionLifetime is the fixed validity window of a bearer token.
const SessionLifetime = 24 * time.Hour

// SessionClaims is the payload carried by a bearer token. It is never persisted.
type SessionClaims struct {
	Subject   string    // The User ID as a string.
	ExpiresAt time.Time // Always issuedAt + SessionLifetime, truncated to seconds on the wire.
}

// NewSessionClaims builds the claims for a token issued at issuedAt.
func NewSessionClaims(subject string, issuedAt time.Time) SessionClaims {
	return SessionClaims{
		Subject:   subject,
		ExpiresAt: issuedAt.Add(SessionLifetime),
	}
}
