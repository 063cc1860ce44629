package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRow struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// fakeCartTable serves cart_items the way PostgREST does for the id/user_id filters the
// repository sends.
type fakeCartTable struct {
	mu   sync.Mutex
	rows []fakeCartRow
}

func (f *fakeCartTable) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rows = removeFakeRows(f.rows, id)
}

func (f *fakeCartTable) snapshot() []fakeCartRow {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]fakeCartRow(nil), f.rows...)
}

func removeFakeRows(rows []fakeCartRow, id string) []fakeCartRow {
	kept := rows[:0]
	for _, r := range rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	return kept
}

func (f *fakeCartTable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := strings.TrimPrefix(r.URL.Query().Get("id"), "eq.")
	matched := make([]fakeCartRow, 0, 1)
	for i := range f.rows {
		if id == "" || f.rows[i].ID == id {
			matched = append(matched, f.rows[i])
		}
	}

	switch r.Method {
	case http.MethodPatch:
		var patch struct {
			Quantity int `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for i := range f.rows {
			if f.rows[i].ID == id {
				f.rows[i].Quantity = patch.Quantity
			}
		}
	case http.MethodDelete:
		f.rows = removeFakeRows(f.rows, id)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(matched)
}

func TestCartService_UpdateQuantity_RowDeletedElsewhere(t *testing.T) {
	table := &fakeCartTable{rows: []fakeCartRow{{ID: "r1", UserID: "u1", ProductID: "p1", Quantity: 1}}}
	srv := httptest.NewServer(table)
	t.Cleanup(srv.Close)

	client, err := supabase.NewClient(supabase.Config{URL: srv.URL, AnonKey: "anon"}, nil, newDiscardLogger())
	require.NoError(t, err)

	session, _ := newSessionMock(t, testUser)
	notifier, notices := newNotifierMock(t)
	service := NewCartService(supabase.NewCartRepository(client), session, notifier, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, service.LoadCartItems(ctx))
	require.Len(t, service.Items(), 1)

	table.remove("r1")

	err = service.UpdateQuantity(ctx, "p1", 5)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	assert.Equal(t, 1, service.ItemCount())
	assert.Empty(t, table.snapshot())
	assert.Len(t, notices.byLevel(entity.NoticeError), 1)
}
