package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "ticketdesk/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	err := m.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	assert.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromCtx
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	header, fromCtx := runRequestID(t, "abc-123")

	assert.Equal(t, "abc-123", header)
	assert.Equal(t, "abc-123", fromCtx)
}

func TestRequestID_ReplacesMissingOrUnsafeValues(t *testing.T) {
	for _, raw := range []string{"", "has space", strings.Repeat("x", maxRequestIDLength+1)} {
		header, fromCtx := runRequestID(t, raw)

		_, err := uuid.Parse(header)
		assert.NoError(t, err, raw)
		assert.Equal(t, header, fromCtx)
	}
}

func TestLoggerMiddleware_RendersErrorsOnce(t *testing.T) {
	var calls int
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		calls++
		_ = c.NoContent(http.StatusTeapot)
	}
	m := &LoggerMiddleware{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), debug: true}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	err := m.Handle(func(echo.Context) error { return echo.ErrNotFound })(c)

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
