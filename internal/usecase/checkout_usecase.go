package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// CheckoutInput is the checkout form: contact and shipping details plus the bank-transfer receipt.
type CheckoutInput struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string             `json:"customerPhone" validate:"required"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	Notes           string             `json:"notes"`
	Receipt         *entity.FileUpload `json:"-"`
}

// GuestCheckoutInput carries the lines explicitly since guests have no remote cart.
type GuestCheckoutInput struct {
	CheckoutInput
	Items []entity.CartItem `json:"items" validate:"dive"`
}

// CheckoutOutput is the created order with the totals the shopper saw.
type CheckoutOutput struct {
	Order  *entity.Order  `json:"order"`
	Totals pricing.Totals `json:"totals"`
}

// CheckoutUsecase turns the cart into an order.
type CheckoutUsecase interface {
	// Preview returns the totals of the current cart.
	Preview() CartSummary
	PlaceOrder(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)
	PlaceGuestOrder(ctx context.Context, input GuestCheckoutInput) (*CheckoutOutput, error)
}
