package auth

import (
	"strings"
	"time"

	"ticketdesk/config"
	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/service"
	"ticketdesk/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// JWTOption customizes a jwtService.
type JWTOption func(*jwtService)

// WithClock replaces the wall clock used for minting and expiry checks.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService. It refuses an empty signing secret.
func NewJWTService(cfg *config.Config, opts ...JWTOption) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingSigningSecret, "jwt signing secret must be provided")
	}

	s := &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Mint creates a token carrying only sub and exp, valid for entity.SessionLifetime.
func (s *jwtService) Mint(subjectID string) (string, error) {
	session := entity.NewSessionClaims(subjectID, s.now())
	claims := jwt.RegisteredClaims{
		Subject:   session.Subject,
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate checks the algorithm, signature and expiry of a token.
func (s *jwtService) Validate(tokenString string) (*entity.SessionClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenMalformed, "token has no subject")
	}

	return &entity.SessionClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(domainerrors.ErrTokenSignatureInvalid, err.Error())
	default:
		return errors.Wrap(domainerrors.ErrTokenMalformed, err.Error())
	}
}
