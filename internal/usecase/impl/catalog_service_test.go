package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_TrimsQuery(t *testing.T) {
	products := mockSvc.NewMockProductAPI(t)
	srv := NewCatalogService(products, newDiscardLogger())
	ctx := context.Background()

	products.EXPECT().List(ctx, service.ProductQuery{Category: "lighting", Search: "lamp"}).
		Return([]entity.Product{lamp}, nil)

	got, err := srv.ListProducts(ctx, service.ProductQuery{Category: " lighting ", Search: "lamp  "})

	require.NoError(t, err)
	assert.Equal(t, []entity.Product{lamp}, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	products := mockSvc.NewMockProductAPI(t)
	srv := NewCatalogService(products, newDiscardLogger())
	ctx := context.Background()

	products.EXPECT().Get(ctx, "missing").Return(nil, domainerrors.NewAPIError(404, "Product not found"))

	_, err := srv.GetProduct(ctx, "missing")

	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPCode())
}
