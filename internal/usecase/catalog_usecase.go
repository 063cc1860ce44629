package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// CatalogUsecase browses products.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, query service.ProductQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}
