package handler

import (
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}
