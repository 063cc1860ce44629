package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository is the remote wishlist of the signed-in user.
// The user is identified by the bearer token attached to each call.
type WishlistRepository interface {
	// List returns the whole remote wishlist.
	List(ctx context.Context) ([]entity.WishlistItem, error)

	// Add saves a product to the remote wishlist.
	Add(ctx context.Context, item entity.WishlistItem) error

	// Remove deletes a product from the remote wishlist.
	Remove(ctx context.Context, productID string) error
}
