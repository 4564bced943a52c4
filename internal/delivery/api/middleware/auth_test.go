package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ticketdesk/internal/delivery/context"
	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"
	mockUC "ticketdesk/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(mw echo.MiddlewareFunc, header string) (echo.Context, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := mw(func(echo.Context) error {
		called = true

		return nil
	})(c)

	return c, called, err
}

func TestAuthenticate_SetsSubject(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	userID := uuid.New()
	authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.SessionClaims{Subject: userID.String()}, nil)

	c, called, err := runAuthenticate(NewAuthMiddleware(authUC).Authenticate, "bearer tok")
	require.NoError(t, err)
	assert.True(t, called)

	subject, ok := deliverycontext.GetSubject(c)
	assert.True(t, ok)
	assert.Equal(t, userID, subject)
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		_, called, err := runAuthenticate(NewAuthMiddleware(mockUC.NewMockAuthUsecase(t)).Authenticate, "")
		assert.False(t, called)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("empty bearer", func(t *testing.T) {
		_, called, err := runAuthenticate(NewAuthMiddleware(mockUC.NewMockAuthUsecase(t)).Authenticate, "Bearer ")
		assert.False(t, called)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("expired token", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "old").Return(nil, domainerrors.ErrTokenExpired)

		_, called, err := runAuthenticate(NewAuthMiddleware(authUC).Authenticate, "Bearer old")
		assert.False(t, called)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.SessionClaims{Subject: "42"}, nil)

		_, called, err := runAuthenticate(NewAuthMiddleware(authUC).Authenticate, "Bearer tok")
		assert.False(t, called)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
	})
}

func TestOptional_DisabledPassesThrough(t *testing.T) {
	_, called, err := runAuthenticate(NewAuthMiddleware(mockUC.NewMockAuthUsecase(t)).Optional(true), "")

	require.NoError(t, err)
	assert.True(t, called)
}
