package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Auth   string
	APIKey string
}

func newTestClient(t *testing.T, token string, respond func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
			Auth:   r.Header.Get("Authorization"),
			APIKey: r.Header.Get("apikey"),
		})
		respond(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "anon"}, staticToken(token), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client, &requests
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{AnonKey: "anon"}, nil, nil)
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "http://localhost"}, nil, nil)
	assert.Error(t, err)
}

func TestClient_Headers(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantAuth string
	}{
		{"signed in uses the user token", "user-token", "Bearer user-token"},
		{"guest falls back to the anon key", "", "Bearer anon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := newTestClient(t, tt.token, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, `[]`)
			})

			_, err := client.From("profiles").Execute(context.Background())

			require.NoError(t, err)
			require.Len(t, *requests, 1)
			assert.Equal(t, tt.wantAuth, (*requests)[0].Auth)
			assert.Equal(t, "anon", (*requests)[0].APIKey)
			assert.Equal(t, "/rest/v1/profiles", (*requests)[0].Path)
		})
	}
}

func TestClient_ErrorBody(t *testing.T) {
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"code":"42501","message":"permission denied for table orders","details":"rls"}`)
	})

	_, err := client.From("orders").Execute(context.Background())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "rls", appErr.Details())

	var pgErr *Error
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, http.StatusForbidden, pgErr.StatusCode)
	assert.Equal(t, "42501", pgErr.Code)
}

func TestQueryBuilder_BuildURL(t *testing.T) {
	client, err := NewClient(Config{URL: "http://db.local/", AnonKey: "anon"}, nil, nil)
	require.NoError(t, err)

	got := client.From("cart_items").
		Select("id,products(name)").
		Eq("user_id", "u 1").
		Order("created_at", OrderDesc).
		Limit(5).
		buildURL()

	assert.Equal(t, "http://db.local/rest/v1/cart_items?select=id%2Cproducts%28name%29&user_id=eq.u+1&order=created_at.desc&limit=5", got)
}

func TestCartRepository_ListByUser(t *testing.T) {
	client, requests := newTestClient(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id":"row-1","user_id":"u1","product_id":"p1","quantity":2,"products":{"name":"Lamp","price":25000,"image_url":"https://cdn/l.png"}},
			{"id":"row-2","user_id":"u1","product_id":"p2","quantity":1,"products":null}
		]`)
	})

	rows, err := NewCartRepository(client).ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []entity.CartRow{
		{ID: "row-1", UserID: "u1", ProductID: "p1", Quantity: 2, Name: "Lamp", Price: 25000, Image: "https://cdn/l.png"},
		{ID: "row-2", UserID: "u1", ProductID: "p2", Quantity: 1},
	}, rows)
	assert.Contains(t, (*requests)[0].Query, "user_id=eq.u1")
}

func TestCartRepository_Add_IncrementsExistingRow(t *testing.T) {
	client, requests := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, `[{"id":"row-1","quantity":2}]`)

			return
		}
		writeJSON(w, http.StatusOK, `[{"id":"row-1"}]`)
	})

	err := NewCartRepository(client).Add(context.Background(), "u1", "p1")

	require.NoError(t, err)
	require.Len(t, *requests, 2)
	patch := (*requests)[1]
	assert.Equal(t, http.MethodPatch, patch.Method)
	assert.Equal(t, "select=id&id=eq.row-1&user_id=eq.u1", patch.Query)
	assert.JSONEq(t, `{"quantity":3}`, patch.Body)
}

func TestCartRepository_Add_InsertsNewRow(t *testing.T) {
	client, requests := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, `[]`)

			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := NewCartRepository(client).Add(context.Background(), "u1", "p1")

	require.NoError(t, err)
	require.Len(t, *requests, 2)
	insert := (*requests)[1]
	assert.Equal(t, http.MethodPost, insert.Method)
	assert.JSONEq(t, `{"user_id":"u1","product_id":"p1","quantity":1}`, insert.Body)
}

func TestCartRepository_RowWrites(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		body    string
		write   func(repo repository.CartRepository) error
		wantErr error
	}{
		{
			name:   "update matched",
			method: http.MethodPatch,
			body:   `[{"id":"row-1"}]`,
			write: func(repo repository.CartRepository) error {
				return repo.UpdateQuantity(context.Background(), "u1", "row-1", 5)
			},
		},
		{
			name:   "update of a deleted row",
			method: http.MethodPatch,
			body:   `[]`,
			write: func(repo repository.CartRepository) error {
				return repo.UpdateQuantity(context.Background(), "u1", "row-1", 5)
			},
			wantErr: domainerrors.ErrCartItemNotFound,
		},
		{
			name:   "delete matched",
			method: http.MethodDelete,
			body:   `[{"id":"row-1"}]`,
			write: func(repo repository.CartRepository) error {
				return repo.Delete(context.Background(), "u1", "row-1")
			},
		},
		{
			name:   "delete of a deleted row",
			method: http.MethodDelete,
			body:   `[]`,
			write: func(repo repository.CartRepository) error {
				return repo.Delete(context.Background(), "u1", "row-1")
			},
			wantErr: domainerrors.ErrCartItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prefer string
			client, requests := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				prefer = r.Header.Get("Prefer")
				writeJSON(w, http.StatusOK, tt.body)
			})

			err := tt.write(NewCartRepository(client))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, *requests, 1)
			assert.Equal(t, tt.method, (*requests)[0].Method)
			assert.Equal(t, "select=id&id=eq.row-1&user_id=eq.u1", (*requests)[0].Query)
			assert.Equal(t, "return=representation", prefer)
		})
	}
}

func TestCartRepository_DeleteByUser(t *testing.T) {
	client, requests := newTestClient(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, NewCartRepository(client).DeleteByUser(context.Background(), "u1"))

	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Equal(t, "user_id=eq.u1", (*requests)[0].Query)
}

func TestAdminRepository_ListOrders(t *testing.T) {
	client, requests := newTestClient(t, "admin", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{
			"id":"o1","user_id":null,"status":"paid","total_amount":50750,
			"customer_name":"Ada","customer_email":"ada@example.com","customer_phone":"08123",
			"shipping_address":"1 Main St","notes":null,"payment_receipt_url":"https://cdn/r.png",
			"created_at":"2024-05-01T10:00:00.123456+00:00",
			"order_items":[{"product_id":"p1","quantity":2,"price":25000,"products":{"name":"Lamp","image_url":"i"}}]
		}]`)
	})

	orders, err := NewAdminRepository(client).ListOrders(context.Background(), repository.OrderFilter{Status: entity.OrderStatusPaid, Limit: 10})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Empty(t, orders[0].UserID)
	assert.Equal(t, int64(50750), orders[0].TotalAmount)
	assert.Equal(t, "https://cdn/r.png", orders[0].ReceiptURL)
	assert.True(t, orders[0].CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC)))
	assert.Equal(t, []entity.OrderItem{{ProductID: "p1", Name: "Lamp", Image: "i", UnitPrice: 25000, Quantity: 2}}, orders[0].Items)

	query := (*requests)[0].Query
	assert.Contains(t, query, "status=eq.paid")
	assert.Contains(t, query, "order=created_at.desc")
	assert.Contains(t, query, "limit=10")
}

func TestAdminRepository_ListProfilesAndRoles(t *testing.T) {
	client, _ := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/profiles":
			writeJSON(w, http.StatusOK, `[{"id":"u1","email":"ada@example.com","full_name":null,"phone":"1","created_at":"2024-05-01T10:00:00Z"}]`)
		case "/rest/v1/user_roles":
			writeJSON(w, http.StatusOK, `[{"user_id":"u1","role":"admin"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewAdminRepository(client)

	profiles, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	roles, err := repo.ListUserRoles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.Profile{{ID: "u1", Email: "ada@example.com", Phone: "1", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}}, profiles)
	assert.Equal(t, []entity.UserRole{{UserID: "u1", Role: entity.RoleAdmin}}, roles)
}

func TestAdminRepository_ContactMessages(t *testing.T) {
	client, requests := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}
		msgs := []map[string]any{{"id": "m1", "name": "Bo", "email": "bo@example.com", "subject": nil, "message": "Hi", "created_at": "2024-05-01T10:00:00Z"}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(msgs)
	})
	repo := NewAdminRepository(client)

	messages, err := repo.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.DeleteContactMessage(context.Background(), "m1"))

	require.Len(t, messages, 1)
	assert.Equal(t, "Hi", messages[0].Message)
	assert.Empty(t, messages[0].Subject)
	assert.Equal(t, "id=eq.m1", (*requests)[1].Query)
}
