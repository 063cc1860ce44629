package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInvoiceSettings = InvoiceSettings{
	CurrencySymbol:  "₦",
	BankName:        "First Bank",
	AccountName:     "House of Kings",
	AccountNumber:   "0123456789",
	ReferencePrefix: "HOK-",
}

type orderServiceFixture struct {
	service *orderService
	orders  *mockSvc.MockOrderAPI
	qrcode  *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T, user *entity.User) *orderServiceFixture {
	t.Helper()

	fx := &orderServiceFixture{
		orders: mockSvc.NewMockOrderAPI(t),
		qrcode: mockSvc.NewMockQRCodeService(t),
	}
	session, _ := newSessionMock(t, user)
	fx.service = NewOrderService(fx.orders, session, fx.qrcode, testInvoiceSettings, newDiscardLogger()).(*orderService)

	return fx
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:              "3f2a9c1e-77b0-4d5e-9a61-0c2b8e4f1d20",
		Status:          entity.OrderStatusAwaitingConfirmation,
		TotalAmount:     1,
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "0812",
		ShippingAddress: "1 Analytical St",
		CreatedAt:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ProductID: "p1", Name: "Lamp", UnitPrice: 25000, Quantity: 2},
			{ProductID: "p2", Name: "Pin", UnitPrice: 750, Quantity: 1},
		},
	}
}

func TestOrderService_RequiresSignIn(t *testing.T) {
	fx := createTestOrderService(t, nil)
	ctx := context.Background()

	_, err := fx.service.ListOrders(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)

	_, err = fx.service.GetOrder(ctx, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)

	_, err = fx.service.InvoiceQRCode(ctx, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
}

func TestOrderService_ListOrders_DerivesTotalsLocally(t *testing.T) {
	fx := createTestOrderService(t, testUser)
	ctx := context.Background()

	fx.orders.EXPECT().List(ctx).Return([]entity.Order{*sampleOrder(), {ID: "empty"}}, nil)

	details, err := fx.service.ListOrders(ctx)

	require.NoError(t, err)
	require.Len(t, details, 2)
	// the server's stored total is ignored for display
	assert.Equal(t, int64(50750), details[0].Totals.Subtotal)
	assert.Equal(t, int64(761), details[0].Totals.ProcessingFee)
	assert.Equal(t, int64(51511), details[0].Totals.Total)
	assert.Equal(t, int64(0), details[1].Totals.Total)
	assert.Equal(t, "empty", details[1].Order.ID)
}

func TestOrderService_ListOrders_Failure(t *testing.T) {
	fx := createTestOrderService(t, testUser)
	ctx := context.Background()

	fx.orders.EXPECT().List(ctx).Return(nil, domainerrors.NewAPIError(503, ""))

	_, err := fx.service.ListOrders(ctx)

	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.Status)
}

func TestOrderService_Invoice(t *testing.T) {
	fx := createTestOrderService(t, testUser)
	ctx := context.Background()
	order := sampleOrder()

	fx.orders.EXPECT().Get(ctx, order.ID).Return(order, nil)

	inv, err := fx.service.Invoice(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "awaiting_confirmation", inv.Status)
	assert.Equal(t, "2026-03-14", inv.IssuedAt)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "₦25,000", inv.Lines[0].UnitPrice)
	assert.Equal(t, "₦50,000", inv.Lines[0].LineTotal)
	assert.Equal(t, "₦50,750", inv.Subtotal)
	assert.Equal(t, "₦761", inv.ProcessingFee)
	assert.Equal(t, "₦51,511", inv.Total)
	assert.Equal(t, "HOK-3F2A9C1E", inv.PaymentReference)
	assert.Equal(t, "First Bank", inv.BankName)
	assert.Equal(t, "0123456789", inv.AccountNumber)
}

func TestOrderService_PaymentReference(t *testing.T) {
	fx := createTestOrderService(t, testUser)

	assert.Equal(t, "HOK-ABCDEF12", fx.service.PaymentReference("abcdef12-3456"))
	assert.Equal(t, "HOK-O1", fx.service.PaymentReference("o1"))
}

func TestOrderService_InvoiceQRCode(t *testing.T) {
	fx := createTestOrderService(t, testUser)
	ctx := context.Background()
	order := sampleOrder()

	fx.orders.EXPECT().Get(ctx, order.ID).Return(order, nil)
	fx.qrcode.EXPECT().GeneratePaymentQR(service.PaymentQRPayload{
		Reference:     "HOK-3F2A9C1E",
		Amount:        51511,
		BankName:      "First Bank",
		AccountNumber: "0123456789",
	}).Return([]byte("png"), nil)

	png, err := fx.service.InvoiceQRCode(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_InvoiceQRCode_RenderFailure(t *testing.T) {
	fx := createTestOrderService(t, testUser)
	ctx := context.Background()
	order := sampleOrder()

	fx.orders.EXPECT().Get(ctx, order.ID).Return(order, nil)
	fx.qrcode.EXPECT().GeneratePaymentQR(service.PaymentQRPayload{
		Reference:     "HOK-3F2A9C1E",
		Amount:        51511,
		BankName:      "First Bank",
		AccountNumber: "0123456789",
	}).Return(nil, errors.New("too long"))

	_, err := fx.service.InvoiceQRCode(ctx, order.ID)

	assert.ErrorContains(t, err, "too long")
}
