package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewInput is the review form.
type ReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// ReviewUsecase reads and submits product reviews.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, productID string) ([]entity.Review, error)
	SubmitReview(ctx context.Context, input ReviewInput) (*entity.Review, error)
}
