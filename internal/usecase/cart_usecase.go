package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// CartSummary is what the cart sheet renders.
type CartSummary struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Totals    pricing.Totals    `json:"totals"`
}

// CartUsecase keeps the local cart in step with the remote per-user cart table.
// A cart needs a signed-in user; there is no guest cart.
type CartUsecase interface {
	AddItem(ctx context.Context, product entity.Product) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
	LoadCartItems(ctx context.Context) error

	Items() []entity.CartItem
	Total() int64
	ItemCount() int
	Summary() CartSummary
}
