package middleware

import (
	"time"

	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records the count and latency of shell API requests per route.
type MetricsMiddleware struct {
	skip map[string]bool
}

// NewMetricsMiddleware creates a new metrics middleware. Requests to the skipped routes,
// typically the scrape endpoint itself, are not recorded.
func NewMetricsMiddleware(skipRoutes ...string) *MetricsMiddleware {
	skip := make(map[string]bool, len(skipRoutes))
	for _, r := range skipRoutes {
		skip[r] = true
	}

	return &MetricsMiddleware{skip: skip}
}

// Handle records the request once the handler returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		if !m.skip[route] {
			metrics.RecordHTTPRequest(c.Request().Method, route, responseStatus(c, err), time.Since(start))
		}

		return err
	}
}
