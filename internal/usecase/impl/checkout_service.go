package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	orders   service.OrderAPI
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	notifier service.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	orders service.OrderAPI,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		orders:   orders,
		cart:     cart,
		session:  session,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preview returns the cart with the totals checkout will charge.
func (srv *checkoutService) Preview() usecase.CartSummary {
	return srv.cart.Summary()
}

// PlaceOrder submits the signed-in user's cart. Every local check runs before any request.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if srv.session.User() == nil {
		notifyInfo(ctx, srv.notifier, "Please sign in", "Sign in to check out, or use guest checkout")

		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	items := srv.cart.Items()
	if err := srv.check(ctx, items, input, input); err != nil {
		return nil, err
	}

	order, totals, err := srv.submit(ctx, srv.orders.Create, input, items)
	if err != nil {
		return nil, err
	}

	if err := srv.cart.ClearCart(ctx); err != nil {
		srv.log(ctx).Warn("Order placed but the cart could not be cleared", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	return &usecase.CheckoutOutput{Order: order, Totals: totals}, nil
}

// PlaceGuestOrder submits explicit lines without a session.
func (srv *checkoutService) PlaceGuestOrder(ctx context.Context, input usecase.GuestCheckoutInput) (*usecase.CheckoutOutput, error) {
	items := make([]entity.CartItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity > 0 {
			items = append(items, it)
		}
	}

	if err := srv.check(ctx, items, input, input.CheckoutInput); err != nil {
		return nil, err
	}

	order, totals, err := srv.submit(ctx, srv.orders.CreateGuest, input.CheckoutInput, items)
	if err != nil {
		return nil, err
	}

	return &usecase.CheckoutOutput{Order: order, Totals: totals}, nil
}

// check runs the local validation: empty cart, then form fields, then receipt.
func (srv *checkoutService) check(ctx context.Context, items []entity.CartItem, form any, input usecase.CheckoutInput) error {
	var err error
	if len(items) == 0 {
		err = errors.WithStack(domainerrors.ErrCartEmpty)
	} else if verr := srv.validate.Struct(form); verr != nil {
		err = validationError(verr)
	} else if input.Receipt.IsEmpty() {
		err = errors.WithStack(domainerrors.ErrReceiptRequired)
	}

	if err != nil {
		notifyError(ctx, srv.notifier, "Cannot place order", err)
	}

	return err
}

func (srv *checkoutService) submit(
	ctx context.Context,
	create func(context.Context, service.CreateOrderInput) (*entity.Order, error),
	input usecase.CheckoutInput,
	items []entity.CartItem,
) (*entity.Order, pricing.Totals, error) {
	totals := pricing.Compute(pricing.FromCart(items))

	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, entity.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}

	srv.log(ctx).Info("Placing order",
		slog.Int("lines", len(orderItems)),
		slog.Int64("total", totals.Total),
	)

	order, err := create(ctx, service.CreateOrderInput{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		Items:           orderItems,
		TotalAmount:     totals.Total,
		Receipt:         input.Receipt,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.Any("error", err))
		notifyError(ctx, srv.notifier, "Could not place order", err)

		return nil, pricing.Totals{}, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed", slog.String("order_id", order.ID))
	notifySuccess(ctx, srv.notifier, "Order placed", "We will confirm your payment shortly")

	return order, totals, nil
}
