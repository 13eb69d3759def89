// Package handler contains the HTTP handlers of the shop API.
package handler

import (
	"gadgetshop/internal/delivery/api/response"
	domainerrors "gadgetshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and runs its validate tags.
// The returned error is already rendered, handlers return it as is.
func bindAndValidate(c echo.Context, req any, what string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid "+what+" input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return true, nil
}
