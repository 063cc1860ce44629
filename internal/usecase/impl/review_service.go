package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type reviewService struct {
	reviews  service.ReviewAPI
	session  usecase.SessionUsecase
	notifier service.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviews service.ReviewAPI,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviews:  reviews,
		session:  session,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns the reviews of a product.
func (srv *reviewService) ListReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	reviews, err := srv.reviews.ListByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews", slog.String("product_id", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// SubmitReview posts a review. Rating and comment are checked before any request.
func (srv *reviewService) SubmitReview(ctx context.Context, input usecase.ReviewInput) (*entity.Review, error) {
	if srv.session.User() == nil {
		notifyInfo(ctx, srv.notifier, "Please sign in", "Sign in to leave a review")

		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	input.Comment = strings.TrimSpace(input.Comment)
	if err := srv.validate.Struct(input); err != nil {
		err = validationError(err)
		notifyError(ctx, srv.notifier, "Cannot submit review", err)

		return nil, err
	}

	review, err := srv.reviews.Create(ctx, service.CreateReviewInput{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit review", slog.String("product_id", input.ProductID), slog.Any("error", err))
		notifyError(ctx, srv.notifier, "Could not submit review", err)

		return nil, errors.Wrap(err, "failed to submit review")
	}

	notifySuccess(ctx, srv.notifier, "Review submitted", "Thanks for your feedback")

	return review, nil
}
