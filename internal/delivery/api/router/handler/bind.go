// Package handler translates HTTP requests into use case calls.
package handler

import (
	"net/http"

	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the echo validator on it.
// Undecodable bodies become ErrValidationFailed.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
			return err
		}

		return domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object")
	}

	return c.Validate(req)
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}
