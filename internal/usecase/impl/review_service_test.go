package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T, user *entity.User) (*reviewService, *mockSvc.MockReviewAPI, *noticeRecorder) {
	t.Helper()

	reviews := mockSvc.NewMockReviewAPI(t)
	session, _ := newSessionMock(t, user)
	notifier, notices := newNotifierMock(t)

	return NewReviewService(reviews, session, notifier, newDiscardLogger()).(*reviewService), reviews, notices
}

func TestReviewService_SubmitReview(t *testing.T) {
	srv, reviews, notices := createTestReviewService(t, testUser)
	ctx := context.Background()

	reviews.EXPECT().Create(ctx, service.CreateReviewInput{ProductID: "p1", Rating: 5, Comment: "Bright"}).
		Return(&entity.Review{ID: "r1", ProductID: "p1", Rating: 5, Comment: "Bright"}, nil)

	review, err := srv.SubmitReview(ctx, usecase.ReviewInput{ProductID: "p1", Rating: 5, Comment: "  Bright "})

	require.NoError(t, err)
	assert.Equal(t, "r1", review.ID)
	assert.Equal(t, []string{"Review submitted"}, notices.titles())
}

func TestReviewService_SubmitReview_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  usecase.ReviewInput
		detail string
	}{
		{name: "no rating", input: usecase.ReviewInput{ProductID: "p1", Comment: "ok"}, detail: "rating: required"},
		{name: "rating too high", input: usecase.ReviewInput{ProductID: "p1", Rating: 6, Comment: "ok"}, detail: "rating: max"},
		{name: "blank comment", input: usecase.ReviewInput{ProductID: "p1", Rating: 3, Comment: "   "}, detail: "comment: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, reviews, notices := createTestReviewService(t, testUser)

			_, err := srv.SubmitReview(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.detail)
			assert.Len(t, notices.byLevel(entity.NoticeError), 1)
			reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestReviewService_SubmitReview_Guest(t *testing.T) {
	srv, _, notices := createTestReviewService(t, nil)

	_, err := srv.SubmitReview(context.Background(), usecase.ReviewInput{ProductID: "p1", Rating: 5, Comment: "ok"})

	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
	assert.Equal(t, []string{"Please sign in"}, notices.titles())
}

func TestReviewService_SubmitReview_RemoteFailure(t *testing.T) {
	srv, reviews, notices := createTestReviewService(t, testUser)
	ctx := context.Background()

	reviews.EXPECT().Create(ctx, mock.Anything).Return(nil, domainerrors.NewAPIError(409, "You already reviewed this product"))

	_, err := srv.SubmitReview(ctx, usecase.ReviewInput{ProductID: "p1", Rating: 4, Comment: "again"})

	require.Error(t, err)
	errs := notices.byLevel(entity.NoticeError)
	require.Len(t, errs, 1)
	assert.Equal(t, "You already reviewed this product", errs[0].Message)
}

func TestReviewService_ListReviews(t *testing.T) {
	srv, reviews, _ := createTestReviewService(t, nil)
	ctx := context.Background()

	reviews.EXPECT().ListByProduct(ctx, "p1").Return([]entity.Review{{ID: "r1"}}, nil)

	got, err := srv.ListReviews(ctx, "p1")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
