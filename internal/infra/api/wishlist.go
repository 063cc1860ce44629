package api

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// WishlistClient is the remote wishlist of the token's user.
type WishlistClient struct {
	client *Client
}

var _ repository.WishlistRepository = (*WishlistClient)(nil)

// NewWishlistClient is the constructor for WishlistClient.
func NewWishlistClient(client *Client) *WishlistClient {
	return &WishlistClient{client: client}
}

// List returns the whole wishlist.
func (w *WishlistClient) List(ctx context.Context) ([]entity.WishlistItem, error) {
	res, err := w.client.Get(ctx, "/wishlist", nil)
	if err != nil {
		return nil, err
	}

	return parseWishlist(res.JSON()), nil
}

// Add saves a product.
func (w *WishlistClient) Add(ctx context.Context, item entity.WishlistItem) error {
	_, err := w.client.Post(ctx, "/wishlist", JSONBody(map[string]any{
		"productId": item.ID,
		"name":      item.Name,
		"price":     item.Price,
		"image":     item.Image,
	}))

	return err
}

// Remove deletes a product.
func (w *WishlistClient) Remove(ctx context.Context, productID string) error {
	_, err := w.client.Delete(ctx, "/wishlist/"+url.PathEscape(productID))

	return err
}
