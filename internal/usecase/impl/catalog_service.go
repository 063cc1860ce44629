package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	products service.ProductAPI
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(products service.ProductAPI, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{products: products, logger: logger}
}

// ListProducts returns the products matching the query.
func (srv *catalogService) ListProducts(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	query.Category = strings.TrimSpace(query.Category)
	query.Search = strings.TrimSpace(query.Search)

	products, err := srv.products.List(ctx, query)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.products.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}
