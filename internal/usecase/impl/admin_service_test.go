package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAdmin = &entity.User{ID: "a1", Email: "ops@example.com", Role: entity.RoleAdmin}

type adminServiceFixture struct {
	service  *adminService
	products *mockSvc.MockProductAPI
	orders   *mockSvc.MockOrderAPI
	users    *mockSvc.MockUserAPI
	metrics  *mockSvc.MockMetricsAPI
	tables   *mockRepo.MockAdminRepository
	uploader *mockSvc.MockMediaUploader
	notices  *noticeRecorder
}

func createTestAdminService(t *testing.T, user *entity.User) *adminServiceFixture {
	t.Helper()

	fx := &adminServiceFixture{
		products: mockSvc.NewMockProductAPI(t),
		orders:   mockSvc.NewMockOrderAPI(t),
		users:    mockSvc.NewMockUserAPI(t),
		metrics:  mockSvc.NewMockMetricsAPI(t),
		tables:   mockRepo.NewMockAdminRepository(t),
		uploader: mockSvc.NewMockMediaUploader(t),
	}
	session, _ := newSessionMock(t, user)
	notifier, notices := newNotifierMock(t)
	fx.notices = notices
	fx.service = NewAdminService(
		AdminAPIs{Products: fx.products, Orders: fx.orders, Users: fx.users, Metrics: fx.metrics},
		fx.tables,
		fx.uploader,
		session,
		notifier,
		newDiscardLogger(),
	).(*adminService)

	return fx
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	tests := []struct {
		name    string
		user    *entity.User
		wantErr error
	}{
		{name: "guest", user: nil, wantErr: domainerrors.ErrSignInRequired},
		{name: "shopper", user: testUser, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t, tt.user)
			ctx := context.Background()

			_, err := fx.service.ListCustomers(ctx)
			assert.ErrorIs(t, err, tt.wantErr)

			err = fx.service.DeleteProduct(ctx, "p1")
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = fx.service.CreateProduct(ctx, usecase.ProductForm{Name: "Lamp", Category: "lighting"})
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = fx.service.MetricsOverview(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdminService_CreateProduct_UploadsImageFirst(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()
	image := &entity.FileUpload{Filename: "lamp.png", ContentType: "image/png", Data: []byte{0x89}}

	fx.uploader.EXPECT().Upload(ctx, image).Return("https://media.example/lamp.png", nil).Once()
	fx.products.EXPECT().Create(ctx, service.ProductInput{
		Name:     "Lamp",
		Price:    25000,
		Category: "lighting",
		Stock:    3,
		ImageURL: "https://media.example/lamp.png",
	}).Return(&entity.Product{ID: "p1", Name: "Lamp"}, nil).Once()

	product, err := fx.service.CreateProduct(ctx, usecase.ProductForm{
		Name:     "Lamp",
		Price:    25000,
		Category: "lighting",
		Stock:    3,
		ImageURL: "https://old.example/lamp.png",
		Image:    image,
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, []string{"Product created"}, fx.notices.titles())
}

func TestAdminService_UpdateProduct_UploadFailureStopsSave(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	fx.uploader.EXPECT().Upload(ctx, mock.Anything).
		Return("", domainerrors.ErrUploadFailed.WithDetails("host said no"))

	_, err := fx.service.UpdateProduct(ctx, "p1", usecase.ProductForm{
		Name:     "Lamp",
		Category: "lighting",
		Image:    &entity.FileUpload{Filename: "x.png", Data: []byte{1}},
	})

	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	fx.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	errs := fx.notices.byLevel(entity.NoticeError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Image upload failed", errs[0].Title)
}

func TestAdminService_CreateProduct_Validation(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)

	_, err := fx.service.CreateProduct(context.Background(), usecase.ProductForm{Category: "lighting", Price: -1})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "name: required")
	assert.Contains(t, err.Error(), "price: gte")
}

func TestAdminService_DeleteUser_CannotDeleteSelf(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)

	err := fx.service.DeleteUser(context.Background(), "a1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminService_DeleteUser(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	fx.users.EXPECT().Delete(ctx, "u1").Return(nil)

	require.NoError(t, fx.service.DeleteUser(ctx, "u1"))
	assert.Equal(t, []string{"User deleted"}, fx.notices.titles())
}

func TestAdminService_ListCustomers_JoinsRoles(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	fx.tables.EXPECT().ListProfiles(ctx).Return([]entity.Profile{
		{ID: "a1", Email: "ops@example.com"},
		{ID: "u1", Email: "ada@example.com"},
	}, nil)
	fx.tables.EXPECT().ListUserRoles(ctx).Return([]entity.UserRole{
		{UserID: "a1", Role: entity.RoleAdmin},
		{UserID: "a1", Role: entity.RoleCustomer},
		{UserID: "a1", Role: entity.RoleAdmin},
		{UserID: "u1", Role: entity.Role("moderator")},
	}, nil)

	customers, err := fx.service.ListCustomers(ctx)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleCustomer}, customers[0].Roles)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, customers[1].Roles)
	assert.Equal(t, "ada@example.com", customers[1].Email)
}

func TestAdminService_ListOrders(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()
	filter := repository.OrderFilter{Status: entity.OrderStatusPaid, Limit: 10}

	fx.tables.EXPECT().ListOrders(ctx, filter).Return([]entity.Order{*sampleOrder()}, nil)

	orders, err := fx.service.ListOrders(ctx, filter)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(51511), orders[0].Totals.Total)
}

func TestAdminService_ListOrders_RejectsUnknownStatus(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)

	_, err := fx.service.ListOrders(context.Background(), repository.OrderFilter{Status: "lost"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	_, err := fx.service.UpdateOrderStatus(ctx, "o1", "teleported")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.orders.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusShipped).
		Return(&entity.Order{ID: "o1", Status: entity.OrderStatusShipped}, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, "o1", entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestAdminService_ConfirmPayment_Failure(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	fx.orders.EXPECT().ConfirmPayment(ctx, "o1").Return(nil, domainerrors.NewAPIError(409, "Already paid"))

	_, err := fx.service.ConfirmPayment(ctx, "o1")

	require.Error(t, err)
	errs := fx.notices.byLevel(entity.NoticeError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Already paid", errs[0].Message)
}

func TestAdminService_ContactMessages(t *testing.T) {
	fx := createTestAdminService(t, testAdmin)
	ctx := context.Background()

	fx.tables.EXPECT().ListContactMessages(ctx).Return([]entity.ContactMessage{{ID: "m1"}}, nil)
	fx.tables.EXPECT().DeleteContactMessage(ctx, "m1").Return(nil)

	messages, err := fx.service.ListContactMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	require.NoError(t, fx.service.DeleteContactMessage(ctx, "m1"))
	assert.Equal(t, []string{"Message deleted"}, fx.notices.titles())
}
