package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/products", "/products"},
		{"/products/42", "/products/:id"},
		{"/orders/3f2a9c1e-5b7d-4e2f-9a1b-1234567890ab/status", "/orders/:id/status"},
		{"/reviews?productId=7", "/reviews"},
		{"/users/me", "/users/me"},
		{"/rest/v1/cart_items", "/rest/v1/cart_items"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalPath(tt.path))
		})
	}
}

func TestRecordRemoteRequest(t *testing.T) {
	before := testutil.ToFloat64(remoteRequests.WithLabelValues("api", "GET", "/orders/:id", "404"))

	RecordRemoteRequest("api", "get", "/orders/123", http.StatusNotFound, 10*time.Millisecond)

	after := testutil.ToFloat64(remoteRequests.WithLabelValues("api", "GET", "/orders/:id", "404"))
	assert.InDelta(t, 1, after-before, 0.0001)
}

func TestHandler(t *testing.T) {
	RecordNotice("success")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_ui_notices_total")
}

func TestRegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	unregister, err := RegisterDB(db, "cart")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="cart"}`)

	unregister()
	again, err := RegisterDB(db, "cart")
	require.NoError(t, err)
	again()
}
