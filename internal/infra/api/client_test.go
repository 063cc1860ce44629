package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL + "/"}, staticToken(token), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{}, nil, nil)
	assert.Error(t, err)
}

func TestClient_Do_AttachesBearerTokenAndJSONContentType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/orders", r.URL.Path)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, `[{"id":"o1"}]`)
	}, "tok-123")

	res, err := client.Get(context.Background(), "/orders", nil)

	require.NoError(t, err)
	assert.Equal(t, ResultJSON, res.Kind)
	assert.Equal(t, "o1", res.JSON().Get("0.id").String())
}

func TestClient_Do_NoTokenNoAuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}, "")

	res, err := client.Delete(context.Background(), "/wishlist/p1")

	require.NoError(t, err)
	assert.Equal(t, ResultEmpty, res.Kind)
	assert.False(t, res.JSON().Exists())
}

func TestClient_Do_MultipartKeepsBoundaryContentType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ada", r.FormValue("customerName"))

		f, header, err := r.FormFile("receipt")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "receipt.png", header.Filename)
		assert.Equal(t, []byte("png-bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"o1"}`)
	}, "tok")

	form := NewMultipartBody().
		Field("customerName", "Ada").
		File("receipt", &entity.FileUpload{Filename: "receipt.png", ContentType: "image/png", Data: []byte("png-bytes")})

	_, err := client.Post(context.Background(), "/orders", form)
	require.NoError(t, err)
}

func TestClient_Do_TextResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "pong")
	}, "")

	res, err := client.Get(context.Background(), "/ping", nil)

	require.NoError(t, err)
	assert.Equal(t, ResultText, res.Kind)
	assert.Equal(t, "pong", res.Text())
}

func TestClient_Do_ErrorStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"server text", http.StatusBadRequest, "Product out of stock", "Product out of stock"},
		{"empty body", http.StatusInternalServerError, "", "Request failed with status 500"},
		{"whitespace body", http.StatusNotFound, "  \n", "Request failed with status 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, "")

			_, err := client.Get(context.Background(), "/products/1", nil)

			var apiErr *domainerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message())
			assert.Equal(t, tt.wantMessage, domainerrors.UserMessage(err))
		})
	}
}

func TestClient_Do_QueryString(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p 1", r.URL.Query().Get("productId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	}, "")

	reviews, err := NewReviewClient(client).ListByProduct(context.Background(), "p 1")

	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestClient_Do_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/products", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
