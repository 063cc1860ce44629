package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LocationMiddleware scopes the UI location (path, search and hash) sent by the presentation
// layer to the request, so a login redirect can bring the user back to it.
type LocationMiddleware struct{}

// NewLocationMiddleware creates a new location middleware
func NewLocationMiddleware() *LocationMiddleware {
	return &LocationMiddleware{}
}

// Process copies a same-origin X-Current-Location header into the request context.
func (m *LocationMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if loc := sanitizeLocation(c.Request().Header.Get(deliverycontext.HeaderXCurrentLocation)); loc != "" {
			ctx := deliverycontext.WithLocation(c.Request().Context(), loc)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// sanitizeLocation keeps only in-app locations; anything absolute or protocol-relative is dropped.
func sanitizeLocation(raw string) string {
	loc := strings.TrimSpace(raw)
	if !strings.HasPrefix(loc, "/") || strings.HasPrefix(loc, "//") || strings.HasPrefix(loc, "/\\") {
		return ""
	}

	return loc
}
