package api

import (
	"context"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// ProductClient covers /products.
type ProductClient struct {
	client *Client
}

var _ service.ProductAPI = (*ProductClient)(nil)

// NewProductClient is the constructor for ProductClient.
func NewProductClient(client *Client) *ProductClient {
	return &ProductClient{client: client}
}

// List returns the products matching the query.
func (p *ProductClient) List(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	res, err := p.client.Get(ctx, "/products", params)
	if err != nil {
		return nil, err
	}

	return parseProducts(res.JSON()), nil
}

// Get returns one product.
func (p *ProductClient) Get(ctx context.Context, id string) (*entity.Product, error) {
	res, err := p.client.Get(ctx, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return productResult(res)
}

// Create posts the product as multipart form data.
func (p *ProductClient) Create(ctx context.Context, input service.ProductInput) (*entity.Product, error) {
	form := NewMultipartBody().
		Field("name", input.Name).
		Field("description", input.Description).
		Field("price", strconv.FormatInt(input.Price, 10)).
		Field("category", input.Category).
		Field("stock", strconv.Itoa(input.Stock))
	if input.ImageURL != "" {
		form.Field("image_url", input.ImageURL)
	}

	res, err := p.client.Post(ctx, "/products", form)
	if err != nil {
		return nil, err
	}

	return productResult(res)
}

// Update patches the product.
func (p *ProductClient) Update(ctx context.Context, id string, input service.ProductInput) (*entity.Product, error) {
	body := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"category":    input.Category,
		"stock":       input.Stock,
	}
	if input.ImageURL != "" {
		body["image_url"] = input.ImageURL
	}

	res, err := p.client.Patch(ctx, "/products/"+url.PathEscape(id), JSONBody(body))
	if err != nil {
		return nil, err
	}

	return productResult(res)
}

// Delete removes the product.
func (p *ProductClient) Delete(ctx context.Context, id string) error {
	_, err := p.client.Delete(ctx, "/products/"+url.PathEscape(id))

	return err
}

func productResult(res *Result) (*entity.Product, error) {
	product := parseProduct(unwrap(res.JSON(), "product", "data"))
	if product.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("malformed product response"))
	}

	return &product, nil
}
