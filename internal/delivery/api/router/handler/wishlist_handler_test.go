package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWishlist records toggles and fails with err when set.
type stubWishlist struct {
	usecase.WishlistUsecase

	items   []entity.WishlistItem
	toggled []entity.WishlistItem
	err     error
}

func (s *stubWishlist) ToggleItem(_ context.Context, item entity.WishlistItem) error {
	if s.err != nil {
		return s.err
	}
	s.toggled = append(s.toggled, item)
	s.items = append(s.items, item)

	return nil
}

func (s *stubWishlist) Items() []entity.WishlistItem { return s.items }
func (s *stubWishlist) Count() int                   { return len(s.items) }

func TestWishlistHandler_ToggleItem(t *testing.T) {
	stub := &stubWishlist{}
	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: stub})

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/wishlist/items/p1/toggle", `{"name":"Lamp","price":25000}`)
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	require.NoError(t, h.ToggleItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []entity.WishlistItem{{ID: "p1", Name: "Lamp", Price: 25000}}, stub.toggled)

	var view WishlistView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, 1, view.Count)
}

func TestWishlistHandler_ToggleItem_GuestRedirect(t *testing.T) {
	stub := &stubWishlist{err: &domainerrors.LoginRequiredError{
		ReturnTo:    "/products/p1",
		RedirectURL: "/auth?returnTo=%2Fproducts%2Fp1",
	}}
	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: stub})

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/wishlist/items/p1/toggle", `{"name":"Lamp","price":25000}`)
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	require.NoError(t, h.ToggleItem(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "LOGIN_REQUIRED", env.Error.Code)
	assert.Equal(t, map[string]any{
		"redirectUrl": "/auth?returnTo=%2Fproducts%2Fp1",
		"returnTo":    "/products/p1",
	}, env.Error.Details)
}
