package supabase

import (
	"context"
	"math"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

const (
	cartTable   = "cart_items"
	cartColumns = "id,user_id,product_id,quantity,products(name,price,image_url)"
)

type cartRowRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Products  *struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		ImageURL string  `json:"image_url"`
	} `json:"products"`
}

func (r cartRowRecord) toEntity() entity.CartRow {
	row := entity.CartRow{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
	if r.Products != nil {
		row.Name = r.Products.Name
		row.Price = int64(math.Round(r.Products.Price))
		row.Image = r.Products.ImageURL
	}

	return row
}

type cartRepository struct {
	client *Client
}

// NewCartRepository creates the PostgREST-backed cart repository.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID string) ([]entity.CartRow, error) {
	var records []cartRowRecord
	err := repo.client.From(cartTable).
		Select(cartColumns).
		Eq("user_id", userID).
		Order("created_at", OrderAsc).
		ExecuteInto(ctx, &records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart rows")
	}

	rows := make([]entity.CartRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.toEntity())
	}

	return rows, nil
}

func (repo *cartRepository) Add(ctx context.Context, userID, productID string) error {
	var existing []cartRowRecord
	err := repo.client.From(cartTable).
		Select("id,quantity").
		Eq("user_id", userID).
		Eq("product_id", productID).
		Limit(1).
		ExecuteInto(ctx, &existing)
	if err != nil {
		return errors.Wrap(err, "failed to look up cart row")
	}

	if len(existing) > 0 {
		return repo.UpdateQuantity(ctx, userID, existing[0].ID, existing[0].Quantity+1)
	}

	_, err = repo.client.From(cartTable).
		Insert(map[string]any{"user_id": userID, "product_id": productID, "quantity": 1}).
		Execute(ctx)

	return errors.Wrap(err, "failed to insert cart row")
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, rowID string, quantity int) error {
	var matched []cartRowRecord
	err := repo.client.From(cartTable).
		Update(map[string]any{"quantity": quantity}).
		Eq("id", rowID).
		Eq("user_id", userID).
		Returning("id").
		ExecuteInto(ctx, &matched)
	if err != nil {
		return errors.Wrap(err, "failed to update cart row")
	}
	if len(matched) == 0 {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID, rowID string) error {
	var matched []cartRowRecord
	err := repo.client.From(cartTable).
		Delete().
		Eq("id", rowID).
		Eq("user_id", userID).
		Returning("id").
		ExecuteInto(ctx, &matched)
	if err != nil {
		return errors.Wrap(err, "failed to delete cart row")
	}
	if len(matched) == 0 {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	return nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := repo.client.From(cartTable).
		Delete().
		Eq("user_id", userID).
		Execute(ctx)

	return errors.Wrap(err, "failed to clear cart")
}
