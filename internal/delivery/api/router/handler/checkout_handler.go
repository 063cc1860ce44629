package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// receiptField is the multipart field carrying the bank-transfer receipt.
const receiptField = "receipt"

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler turns the cart into an order.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: params.CheckoutUC}
}

// Preview handles GET /checkout
func (h *CheckoutHandler) Preview(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.checkoutUC.Preview())
}

// PlaceOrder handles the multipart POST /checkout
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	input, err := checkoutForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.checkoutUC.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// PlaceGuestOrder handles the multipart POST /checkout/guest. The lines come as a JSON array in
// the "items" field.
func (h *CheckoutHandler) PlaceGuestOrder(c echo.Context) error {
	input, err := checkoutForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var items []entity.CartItem
	if raw := c.FormValue("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid order items")
		}
	}

	out, err := h.checkoutUC.PlaceGuestOrder(c.Request().Context(), usecase.GuestCheckoutInput{
		CheckoutInput: input,
		Items:         items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

func checkoutForm(c echo.Context) (usecase.CheckoutInput, error) {
	receipt, err := readUpload(c, receiptField)
	if err != nil {
		return usecase.CheckoutInput{}, err
	}

	return usecase.CheckoutInput{
		CustomerName:    c.FormValue("customerName"),
		CustomerEmail:   c.FormValue("customerEmail"),
		CustomerPhone:   c.FormValue("customerPhone"),
		ShippingAddress: c.FormValue("shippingAddress"),
		Notes:           c.FormValue("notes"),
		Receipt:         receipt,
	}, nil
}
