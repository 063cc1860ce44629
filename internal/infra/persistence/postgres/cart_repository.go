package postgres

import (
	"context"
	"math"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
	tm *txManager
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
		tm: newTxManager(db),
	}
}

// ListByUser returns the user's rows joined with their product, oldest first.
func (repo *cartRepository) ListByUser(ctx context.Context, userID string) ([]entity.CartRow, error) {
	var views []model.CartRowView

	err := repo.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.user_id, cart_items.product_id, cart_items.quantity, " +
			"products.name, products.price, products.image_url").
		Joins("LEFT JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Scan(&views).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cart rows")
	}

	rows := make([]entity.CartRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, toCartRowDomain(v))
	}

	return rows, nil
}

// Add increments the user's row for the product, or inserts it with quantity 1.
func (repo *cartRepository) Add(ctx context.Context, userID, productID string) error {
	return repo.tm.execute(ctx, func(tx *gorm.DB) error {
		var existing model.CartItemModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Take(&existing).Error

		switch {
		case err == nil:
			if err := tx.Model(&model.CartItemModel{}).
				Where("id = ?", existing.ID).
				Update("quantity", gorm.Expr("quantity + ?", 1)).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to increment cart row")
			}

			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := &model.CartItemModel{UserID: userID, ProductID: productID, Quantity: 1}
			if err := tx.Create(row).Error; err != nil {
				if isForeignKeyConstraintViolation(err) {
					return errors.WithStack(domainerrors.ErrNotFound.WithDetails("product " + productID))
				}
				if isUniqueConstraintViolation(err) {
					return domainerrors.NewDatabaseExecuteError(err, "cart row was added concurrently")
				}

				return domainerrors.NewDatabaseExecuteError(err, "failed to insert cart row")
			}

			return nil
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to look up cart row")
		}
	})
}

// UpdateQuantity sets the quantity of a single row owned by the user.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, rowID string, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", rowID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart row")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	return nil
}

// Delete removes a single row owned by the user.
func (repo *cartRepository) Delete(ctx context.Context, userID, rowID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", rowID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart row")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	return nil
}

// DeleteByUser removes every row of the user.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartRowDomain(v model.CartRowView) entity.CartRow {
	row := entity.CartRow{
		ID:        v.ID,
		UserID:    v.UserID,
		ProductID: v.ProductID,
		Quantity:  v.Quantity,
	}
	if v.Name != nil {
		row.Name = *v.Name
	}
	if v.Price != nil {
		row.Price = int64(math.Round(*v.Price))
	}
	if v.ImageURL != nil {
		row.Image = *v.ImageURL
	}

	return row
}
