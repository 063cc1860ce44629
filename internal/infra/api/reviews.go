package api

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// ReviewClient covers /reviews.
type ReviewClient struct {
	client *Client
}

var _ service.ReviewAPI = (*ReviewClient)(nil)

// NewReviewClient is the constructor for ReviewClient.
func NewReviewClient(client *Client) *ReviewClient {
	return &ReviewClient{client: client}
}

// ListByProduct returns the reviews of a product.
func (r *ReviewClient) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	res, err := r.client.Get(ctx, "/reviews", url.Values{"productId": {productID}})
	if err != nil {
		return nil, err
	}

	return parseReviews(res.JSON()), nil
}

// Create posts a review.
func (r *ReviewClient) Create(ctx context.Context, input service.CreateReviewInput) (*entity.Review, error) {
	res, err := r.client.Post(ctx, "/reviews", JSONBody(map[string]any{
		"productId": input.ProductID,
		"rating":    input.Rating,
		"comment":   input.Comment,
	}))
	if err != nil {
		return nil, err
	}

	review := parseReview(unwrap(res.JSON(), "data"))
	if review.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("malformed review response"))
	}

	return &review, nil
}
