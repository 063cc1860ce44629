package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase keeps the local wishlist in step with the remote wishlist for signed-in
// users, or with local storage for guests.
type WishlistUsecase interface {
	AddItem(ctx context.Context, item entity.WishlistItem) error
	ToggleItem(ctx context.Context, item entity.WishlistItem) error
	RemoveItem(ctx context.Context, productID string) error
	ClearWishlist(ctx context.Context) error
	LoadWishlist(ctx context.Context) error

	Items() []entity.WishlistItem
	Count() int
	IsWished(productID string) bool
}
