package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler exposes the cart synchronizer.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// UpdateQuantityRequest represents the request body for changing a line quantity.
// Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// GetCart returns the cart sheet: lines, item count and totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// Reload refetches the cart from the remote table.
func (h *CartHandler) Reload(c echo.Context) error {
	if err := h.cartUC.LoadCartItems(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	var req ProductSnapshot
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.AddItem(c.Request().Context(), req.toProduct()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// UpdateQuantity handles PATCH /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), c.Param("productId"), req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}
