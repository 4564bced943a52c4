package middleware

import (
	"strings"

	deliverycontext "ticketdesk/internal/delivery/context"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes with a bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			return err
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domainerrors.ErrTokenMalformed
		}
		deliverycontext.SetSubject(c, userID)

		return next(c)
	}
}

// Optional returns Authenticate unless disabled, in which case requests pass through untouched.
func (m *AuthMiddleware) Optional(disabled bool) echo.MiddlewareFunc {
	if disabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return m.Authenticate
}
