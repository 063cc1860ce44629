package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// InvoiceSettings are the bank-transfer details printed on every invoice.
type InvoiceSettings struct {
	CurrencySymbol  string
	BankName        string
	AccountName     string
	AccountNumber   string
	ReferencePrefix string
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders   service.OrderAPI
	session  usecase.SessionUsecase
	qrcode   service.QRCodeService
	settings InvoiceSettings
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders service.OrderAPI,
	session usecase.SessionUsecase,
	qrcode service.QRCodeService,
	settings InvoiceSettings,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:   orders,
		session:  session,
		qrcode:   qrcode,
		settings: settings,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the signed-in user's orders with derived totals.
func (srv *orderService) ListOrders(ctx context.Context) ([]usecase.OrderDetails, error) {
	if srv.session.User() == nil {
		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	orders, err := srv.orders.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return withTotals(orders), nil
}

// GetOrder returns one order with derived totals.
func (srv *orderService) GetOrder(ctx context.Context, id string) (*usecase.OrderDetails, error) {
	if srv.session.User() == nil {
		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	order, err := srv.orders.Get(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to get order", slog.String("order_id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return &usecase.OrderDetails{Order: order, Totals: pricing.Compute(pricing.FromOrder(order.Items))}, nil
}

// Invoice renders the invoice data of an order.
func (srv *orderService) Invoice(ctx context.Context, id string) (*usecase.Invoice, error) {
	details, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order, totals := details.Order, details.Totals
	format := func(amount int64) string { return pricing.Format(srv.settings.CurrencySymbol, amount) }

	lines := make([]usecase.InvoiceLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, usecase.InvoiceLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: format(it.UnitPrice),
			LineTotal: format(it.UnitPrice * int64(it.Quantity)),
		})
	}

	issuedAt := order.CreatedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	return &usecase.Invoice{
		OrderID:          order.ID,
		Status:           order.Status.String(),
		IssuedAt:         issuedAt.Format("2006-01-02"),
		CustomerName:     order.CustomerName,
		CustomerEmail:    order.CustomerEmail,
		CustomerPhone:    order.CustomerPhone,
		ShippingAddress:  order.ShippingAddress,
		Lines:            lines,
		Totals:           totals,
		Subtotal:         format(totals.Subtotal),
		ProcessingFee:    format(totals.ProcessingFee),
		Total:            format(totals.Total),
		PaymentReference: srv.PaymentReference(order.ID),
		BankName:         srv.settings.BankName,
		AccountName:      srv.settings.AccountName,
		AccountNumber:    srv.settings.AccountNumber,
	}, nil
}

// InvoiceQRCode renders the bank-transfer reference and amount of an order as a PNG.
func (srv *orderService) InvoiceQRCode(ctx context.Context, id string) ([]byte, error) {
	details, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePaymentQR(service.PaymentQRPayload{
		Reference:     srv.PaymentReference(details.Order.ID),
		Amount:        details.Totals.Total,
		BankName:      srv.settings.BankName,
		AccountNumber: srv.settings.AccountNumber,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render payment QR code", slog.String("order_id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render payment QR code")
	}

	return png, nil
}

// PaymentReference is the transfer reference: the prefix plus the first eight characters of the order ID.
func (srv *orderService) PaymentReference(orderID string) string {
	ref := strings.ReplaceAll(orderID, "-", "")
	if len(ref) > 8 {
		ref = ref[:8]
	}

	return srv.settings.ReferencePrefix + strings.ToUpper(ref)
}

func withTotals(orders []entity.Order) []usecase.OrderDetails {
	details := make([]usecase.OrderDetails, 0, len(orders))
	for i := range orders {
		details = append(details, usecase.OrderDetails{
			Order:  &orders[i],
			Totals: pricing.Compute(pricing.FromOrder(orders[i].Items)),
		})
	}

	return details
}
