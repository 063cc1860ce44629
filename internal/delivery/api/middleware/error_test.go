package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "app error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email: email"), "sign in"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Please check the highlighted fields",
			wantDetails: "email: email",
		},
		{
			name:        "remote failure passes the body through",
			err:         errors.WithStack(domainerrors.NewAPIError(http.StatusConflict, "Already paid")),
			wantStatus:  http.StatusConflict,
			wantCode:    "REMOTE_REQUEST_FAILED",
			wantMessage: "Already paid",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error hides internals",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_LoginRequired(t *testing.T) {
	rec, body := handleError(t, errors.WithStack(&domainerrors.LoginRequiredError{
		ReturnTo:    "/wishlist",
		RedirectURL: "/auth?returnTo=%2Fwishlist",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "LOGIN_REQUIRED", body.Error.Code)
	assert.Equal(t, map[string]any{"redirectUrl": "/auth?returnTo=%2Fwishlist", "returnTo": "/wishlist"}, body.Error.Details)
}

func TestErrorMiddleware_ClientGone(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/wishlist", nil), rec)

	m.HandleHTTPError(errors.Wrap(context.Canceled, "failed to reconcile wishlist"), c)

	assert.Equal(t, 499, rec.Code)
	assert.Empty(t, rec.Body.String())
}
