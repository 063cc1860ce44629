// Package postgres reads and writes the storefront tables directly with GORM, as an
// alternative to the PostgREST data source.
package postgres

import (
	"context"

	"storefront/internal/errors"

	"gorm.io/gorm"
)

// txManager runs multi-statement writes in a single transaction.
type txManager struct {
	db *gorm.DB
}

func newTxManager(db *gorm.DB) *txManager {
	return &txManager{db: db}
}

// execute runs fn within a transaction, rolling back when fn fails or panics.
func (tm *txManager) execute(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
