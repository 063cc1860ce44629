package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
}

// WishlistHandler exposes the wishlist synchronizer.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{wishlistUC: params.WishlistUC}
}

// WishlistView is the wishlist as rendered.
type WishlistView struct {
	Items []entity.WishlistItem `json:"items"`
	Count int                   `json:"count"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view())
}

// Reload refetches the wishlist.
func (h *WishlistHandler) Reload(c echo.Context) error {
	if err := h.wishlistUC.LoadWishlist(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

// AddItem handles POST /wishlist/items. Guests may get a login redirect instead.
func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req ProductSnapshot
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishlistUC.AddItem(c.Request().Context(), req.toWishlistItem()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

// ToggleItem handles POST /wishlist/items/:productId/toggle
func (h *WishlistHandler) ToggleItem(c echo.Context) error {
	var req ProductSnapshot
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist item")
	}
	req.ID = c.Param("productId")
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishlistUC.ToggleItem(c.Request().Context(), req.toWishlistItem()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

// RemoveItem handles DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	if err := h.wishlistUC.RemoveItem(c.Request().Context(), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	if err := h.wishlistUC.ClearWishlist(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

func (h *WishlistHandler) view() WishlistView {
	return WishlistView{Items: h.wishlistUC.Items(), Count: h.wishlistUC.Count()}
}
