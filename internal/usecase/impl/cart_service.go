package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
// Local state only ever advances past a confirmed remote write.
type cartService struct {
	repo     repository.CartRepository
	session  usecase.SessionUsecase
	notifier service.Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	items []entity.CartItem
	// rowIDs maps product IDs to remote row IDs. It is rebuilt on every full load;
	// products added since then are resolved with a fresh fetch.
	rowIDs map[string]string
}

// NewCartService is the constructor for cartService. The cart follows the session:
// a new user loads the remote cart, signing out empties it without a request.
func NewCartService(
	repo repository.CartRepository,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	srv := &cartService{
		repo:     repo,
		session:  session,
		notifier: notifier,
		logger:   logger,
	}
	session.Subscribe(srv.onIdentityChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) onIdentityChange(ctx context.Context, user *entity.User) {
	if user == nil {
		srv.setItems(nil)

		return
	}

	// Failures are already logged and shown by LoadCartItems.
	_ = srv.LoadCartItems(ctx)
}

// AddItem adds one unit of the product once the remote cart accepted it.
func (srv *cartService) AddItem(ctx context.Context, product entity.Product) error {
	userID, err := srv.requireUser(ctx)
	if err != nil {
		return err
	}

	if err := srv.repo.Add(ctx, userID, product.ID); err != nil {
		srv.log(ctx).Error("Failed to add to cart", slog.Any("error", err), slog.String("product_id", product.ID))
		notifyError(ctx, srv.notifier, "Could not add to cart", err)

		return errors.Wrap(err, "failed to add to cart")
	}

	srv.mu.Lock()
	if i := indexOfCartItem(srv.items, product.ID); i >= 0 {
		srv.items[i].Quantity++
	} else {
		srv.items = append(srv.items, product.ToCartItem())
	}
	srv.mu.Unlock()

	notifySuccess(ctx, srv.notifier, "Added to cart", product.Name+" has been added to your cart")

	return nil
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	userID, err := srv.requireUser(ctx)
	if err != nil {
		return err
	}

	err = srv.withRow(ctx, userID, productID, func(rowID string) error {
		if quantity <= 0 {
			return srv.repo.Delete(ctx, userID, rowID)
		}

		return srv.repo.UpdateQuantity(ctx, userID, rowID, quantity)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update cart quantity", slog.Any("error", err), slog.String("product_id", productID))
		notifyError(ctx, srv.notifier, "Could not update cart", err)

		return errors.Wrap(err, "failed to update cart quantity")
	}

	srv.mu.Lock()
	if quantity <= 0 {
		srv.items = slices.DeleteFunc(srv.items, func(it entity.CartItem) bool { return it.ID == productID })
		delete(srv.rowIDs, productID)
	} else if i := indexOfCartItem(srv.items, productID); i >= 0 {
		srv.items[i].Quantity = quantity
	}
	srv.mu.Unlock()

	return nil
}

// RemoveItem deletes a line.
func (srv *cartService) RemoveItem(ctx context.Context, productID string) error {
	userID, err := srv.requireUser(ctx)
	if err != nil {
		return err
	}

	err = srv.withRow(ctx, userID, productID, func(rowID string) error {
		return srv.repo.Delete(ctx, userID, rowID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to remove cart item", slog.Any("error", err), slog.String("product_id", productID))
		notifyError(ctx, srv.notifier, "Could not remove item", err)

		return errors.Wrap(err, "failed to remove cart item")
	}

	srv.mu.Lock()
	srv.items = slices.DeleteFunc(srv.items, func(it entity.CartItem) bool { return it.ID == productID })
	delete(srv.rowIDs, productID)
	srv.mu.Unlock()

	notifyInfo(ctx, srv.notifier, "Removed from cart", "")

	return nil
}

// ClearCart deletes every remote row of the user, then empties the local cart.
func (srv *cartService) ClearCart(ctx context.Context) error {
	user := srv.session.User()
	if user == nil {
		srv.setItems(nil)

		return nil
	}

	if err := srv.repo.DeleteByUser(ctx, user.ID); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.Any("error", err))
		notifyError(ctx, srv.notifier, "Could not clear cart", err)

		return errors.Wrap(err, "failed to clear cart")
	}

	srv.setItems(nil)
	notifyInfo(ctx, srv.notifier, "Cart cleared", "")

	return nil
}

// LoadCartItems replaces the local cart with the remote rows.
func (srv *cartService) LoadCartItems(ctx context.Context) error {
	user := srv.session.User()
	if user == nil {
		srv.setItems(nil)

		return nil
	}

	rows, err := srv.repo.ListByUser(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.Any("error", err), slog.String("user_id", user.ID))
		notifyError(ctx, srv.notifier, "Could not load your cart", err)

		return errors.Wrap(err, "failed to load cart")
	}

	items := make([]entity.CartItem, 0, len(rows))
	rowIDs := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Quantity <= 0 {
			continue
		}
		items = append(items, row.ToCartItem())
		rowIDs[row.ProductID] = row.ID
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		srv.log(ctx).Debug("Discarding cart load", slog.Any("error", ctxErr))

		return errors.WithStack(ctxErr)
	}
	if current := srv.session.User(); current == nil || current.ID != user.ID {
		srv.log(ctx).Debug("Discarding cart load for previous user", slog.String("user_id", user.ID))

		return nil
	}

	srv.mu.Lock()
	srv.items = items
	srv.rowIDs = rowIDs
	srv.mu.Unlock()

	srv.log(ctx).Debug("Cart loaded", slog.String("user_id", user.ID), slog.Int("lines", len(items)))

	return nil
}

// Items returns a copy of the cart lines.
func (srv *cartService) Items() []entity.CartItem {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.items)
}

// Total returns Σ price × quantity.
func (srv *cartService) Total() int64 {
	return pricing.Subtotal(pricing.FromCart(srv.Items()))
}

// ItemCount returns Σ quantity.
func (srv *cartService) ItemCount() int {
	return countUnits(srv.Items())
}

// Summary returns the lines with their totals, computed from one snapshot.
func (srv *cartService) Summary() usecase.CartSummary {
	items := srv.Items()
	if items == nil {
		items = []entity.CartItem{}
	}

	return usecase.CartSummary{
		Items:     items,
		ItemCount: countUnits(items),
		Totals:    pricing.Compute(pricing.FromCart(items)),
	}
}

func (srv *cartService) requireUser(ctx context.Context) (string, error) {
	user := srv.session.User()
	if user == nil {
		notifyInfo(ctx, srv.notifier, "Please sign in", "Sign in to add items to your cart")

		return "", errors.WithStack(domainerrors.ErrSignInRequired)
	}

	return user.ID, nil
}

// withRow runs write against the remote row of a product. A cached row that no longer
// matches is dropped and looked up once more before the write is given up.
func (srv *cartService) withRow(ctx context.Context, userID, productID string, write func(rowID string) error) error {
	srv.mu.Lock()
	rowID, cached := srv.rowIDs[productID]
	srv.mu.Unlock()

	if cached {
		err := write(rowID)
		if !errors.Is(err, domainerrors.ErrCartItemNotFound) {
			return err
		}

		srv.log(ctx).Debug("Cached cart row is gone", slog.String("product_id", productID), slog.String("row_id", rowID))
		srv.mu.Lock()
		delete(srv.rowIDs, productID)
		srv.mu.Unlock()
	}

	rowID, err := srv.fetchRowID(ctx, userID, productID)
	if err != nil {
		return err
	}

	return write(rowID)
}

// fetchRowID looks the product up in a fresh fetch of the user's rows and caches the result.
func (srv *cartService) fetchRowID(ctx context.Context, userID, productID string) (string, error) {
	rows, err := srv.repo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to look up cart row", slog.Any("error", err), slog.String("product_id", productID))

		return "", errors.Wrap(err, "failed to look up cart row")
	}

	for _, row := range rows {
		if row.ProductID != productID {
			continue
		}

		srv.mu.Lock()
		if srv.rowIDs == nil {
			srv.rowIDs = make(map[string]string)
		}
		srv.rowIDs[productID] = row.ID
		srv.mu.Unlock()

		return row.ID, nil
	}

	return "", errors.WithStack(domainerrors.ErrCartItemNotFound)
}

func (srv *cartService) setItems(items []entity.CartItem) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = items
	srv.rowIDs = nil
}

func indexOfCartItem(items []entity.CartItem, productID string) int {
	return slices.IndexFunc(items, func(it entity.CartItem) bool { return it.ID == productID })
}

func countUnits(items []entity.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}

	return n
}
