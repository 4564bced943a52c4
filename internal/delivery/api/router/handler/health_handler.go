package handler

import (
	"net/http"

	"ticketdesk/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers GET / with the plain-text liveness banner older probes expect.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Running")
}

// HealthCheck answers GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
