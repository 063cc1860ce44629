package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "handler wrote", err: nil, want: http.StatusCreated},
		{name: "echo error", err: echo.ErrNotFound, want: http.StatusNotFound},
		{name: "app error", err: errors.WithStack(domainerrors.ErrCartEmpty), want: http.StatusBadRequest},
		{name: "remote failure", err: domainerrors.NewAPIError(http.StatusBadGateway, ""), want: http.StatusBadGateway},
		{name: "client gone", err: errors.Wrap(context.Canceled, "list cart"), want: 499},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/cart/items", nil), rec)
			c.Response().WriteHeader(http.StatusCreated)

			assert.Equal(t, tt.want, responseStatus(c, tt.err))
		})
	}
}
