// Package repository defines the interfaces for the remote and client-side stores.
// These interfaces act as a contract between the use cases and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository is the per-user cart table of the database-as-a-service backend.
// Rows are keyed by their own row ID; lookups by product go through ListByUser.
type CartRepository interface {
	// ListByUser returns every cart row of the user joined with its product.
	ListByUser(ctx context.Context, userID string) ([]entity.CartRow, error)

	// Add increments the user's row for the product, or inserts it with quantity 1.
	Add(ctx context.Context, userID, productID string) error

	// UpdateQuantity sets the quantity of a single row. It returns ErrCartItemNotFound
	// when no row of the user matched.
	UpdateQuantity(ctx context.Context, userID, rowID string, quantity int) error

	// Delete removes a single row, with the same ErrCartItemNotFound contract.
	Delete(ctx context.Context, userID, rowID string) error

	// DeleteByUser removes every row of the user.
	DeleteByUser(ctx context.Context, userID string) error
}
