package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "/products/p1?tab=reviews#top", want: "/products/p1?tab=reviews#top"},
		{raw: "  /cart ", want: "/cart"},
		{raw: "", want: ""},
		{raw: "https://evil.example/", want: ""},
		{raw: "//evil.example/", want: ""},
		{raw: `/\evil.example`, want: ""},
		{raw: "products", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeLocation(tt.raw))
		})
	}
}

func TestLocationMiddleware_Process(t *testing.T) {
	var got string
	next := func(c echo.Context) error {
		got = deliverycontext.GetLocation(c.Request().Context())
		return nil
	}

	req := httptest.NewRequest(http.MethodPost, "/wishlist/items/p1/toggle", nil)
	req.Header.Set(deliverycontext.HeaderXCurrentLocation, "/products/p1")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	require.NoError(t, NewLocationMiddleware().Process(next)(c))
	assert.Equal(t, "/products/p1", got)

	req = httptest.NewRequest(http.MethodPost, "/wishlist/items/p1/toggle", nil)
	req.Header.Set(deliverycontext.HeaderXCurrentLocation, "//evil.example")
	c = echo.New().NewContext(req, httptest.NewRecorder())

	require.NoError(t, NewLocationMiddleware().Process(next)(c))
	assert.Equal(t, "/", got)
}
