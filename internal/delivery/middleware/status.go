package middleware

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const statusClientClosedRequest = 499

// responseStatus is the status the client will see. The error handler only runs after the
// middleware chain returns, so for a failed request it is derived from the error.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	if errors.IsCanceled(err) {
		return statusClientClosedRequest
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
