package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"slices"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// AuthPagePath is where guests are sent when an action needs a signed-in user.
const AuthPagePath = "/auth"

// wishlistService implements the WishlistUsecase interface.
// Signed-in users get optimistic updates reconciled against the remote wishlist;
// guests work on a list persisted to local storage.
type wishlistService struct {
	repo     repository.WishlistRepository
	session  usecase.SessionUsecase
	storage  *repository.ClientStorage
	notifier service.Notifier
	gate     service.LoginGate
	logger   *slog.Logger

	mu    sync.Mutex
	items []entity.WishlistItem
	// epoch counts identity changes; writes started under an older epoch are dropped.
	epoch uint64
}

// wishlistOwner identifies whose list a request started on.
type wishlistOwner struct {
	userID string
	epoch  uint64
}

// NewWishlistService is the constructor for wishlistService. A nil gate redirects guests to the auth page.
func NewWishlistService(
	repo repository.WishlistRepository,
	session usecase.SessionUsecase,
	storage *repository.ClientStorage,
	notifier service.Notifier,
	gate service.LoginGate,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	if gate == nil {
		gate = RedirectToLogin
	}

	srv := &wishlistService{
		repo:     repo,
		session:  session,
		storage:  storage,
		notifier: notifier,
		gate:     gate,
		logger:   logger,
	}
	session.Subscribe(srv.onIdentityChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) onIdentityChange(ctx context.Context, _ *entity.User) {
	srv.mu.Lock()
	srv.epoch++
	srv.mu.Unlock()

	// Failures are already logged and shown by LoadWishlist.
	_ = srv.LoadWishlist(ctx)
}

// AddItem saves a product.
func (srv *wishlistService) AddItem(ctx context.Context, item entity.WishlistItem) error {
	if srv.isGuest() {
		proceed, err := srv.admitGuest(ctx, service.LoginActionWishlistAdd, item)
		if !proceed {
			return err
		}

		return srv.mutateGuest(ctx, func(items []entity.WishlistItem) []entity.WishlistItem {
			if containsWish(items, item.ID) {
				return items
			}

			return append(slices.Clone(items), item)
		}, "Added to wishlist")
	}

	srv.mu.Lock()
	owner := srv.ownerLocked()
	appended := !containsWish(srv.items, item.ID)
	if appended {
		srv.items = append(slices.Clone(srv.items), item)
	}
	srv.mu.Unlock()

	notifySuccess(ctx, srv.notifier, "Added to wishlist", item.Name+" has been saved")

	rollback := func() {
		if !appended {
			return
		}
		srv.updateFor(ctx, owner, func(items []entity.WishlistItem) []entity.WishlistItem {
			return slices.DeleteFunc(slices.Clone(items), func(it entity.WishlistItem) bool { return it.ID == item.ID })
		})
	}

	if err := srv.repo.Add(ctx, item); err != nil {
		return srv.fail(ctx, "Could not add to wishlist", errors.Wrap(err, "failed to add to wishlist"), rollback)
	}

	return srv.reconcile(ctx, owner, "Could not add to wishlist", rollback)
}

// ToggleItem flips the membership of a product.
func (srv *wishlistService) ToggleItem(ctx context.Context, item entity.WishlistItem) error {
	if srv.isGuest() {
		proceed, err := srv.admitGuest(ctx, service.LoginActionWishlistToggle, item)
		if !proceed {
			return err
		}

		srv.mu.Lock()
		exists := containsWish(srv.items, item.ID)
		srv.mu.Unlock()

		return srv.mutateGuest(ctx, func(items []entity.WishlistItem) []entity.WishlistItem {
			return toggleWish(items, item)
		}, toggleTitle(exists))
	}

	srv.mu.Lock()
	owner := srv.ownerLocked()
	snapshot := srv.items
	exists := containsWish(snapshot, item.ID)
	srv.items = toggleWish(snapshot, item)
	srv.mu.Unlock()

	if exists {
		notifyInfo(ctx, srv.notifier, toggleTitle(exists), item.Name)
	} else {
		notifySuccess(ctx, srv.notifier, toggleTitle(exists), item.Name)
	}

	rollback := srv.restoreFunc(ctx, owner, snapshot)

	var err error
	if exists {
		err = srv.repo.Remove(ctx, item.ID)
	} else {
		err = srv.repo.Add(ctx, item)
	}
	if err != nil {
		return srv.fail(ctx, "Could not update wishlist", errors.Wrap(err, "failed to toggle wishlist item"), rollback)
	}

	return srv.reconcile(ctx, owner, "Could not update wishlist", rollback)
}

// RemoveItem drops a product.
func (srv *wishlistService) RemoveItem(ctx context.Context, productID string) error {
	remove := func(items []entity.WishlistItem) []entity.WishlistItem {
		return slices.DeleteFunc(slices.Clone(items), func(it entity.WishlistItem) bool { return it.ID == productID })
	}

	if srv.isGuest() {
		return srv.mutateGuest(ctx, remove, "Removed from wishlist")
	}

	srv.mu.Lock()
	owner := srv.ownerLocked()
	snapshot := srv.items
	srv.items = remove(snapshot)
	srv.mu.Unlock()

	rollback := srv.restoreFunc(ctx, owner, snapshot)

	if err := srv.repo.Remove(ctx, productID); err != nil {
		return srv.fail(ctx, "Could not remove from wishlist", errors.Wrap(err, "failed to remove from wishlist"), rollback)
	}

	notifyInfo(ctx, srv.notifier, "Removed from wishlist", "")

	return srv.reconcile(ctx, owner, "Could not remove from wishlist", rollback)
}

// ClearWishlist empties the list, removing every held item remotely in parallel.
func (srv *wishlistService) ClearWishlist(ctx context.Context) error {
	if srv.isGuest() {
		return srv.mutateGuest(ctx, func([]entity.WishlistItem) []entity.WishlistItem {
			return nil
		}, "Wishlist cleared")
	}

	srv.mu.Lock()
	owner := srv.ownerLocked()
	snapshot := srv.items
	srv.items = nil
	srv.mu.Unlock()

	rollback := srv.restoreFunc(ctx, owner, snapshot)

	var g errgroup.Group
	for _, item := range snapshot {
		g.Go(func() error {
			return errors.Wrapf(srv.repo.Remove(ctx, item.ID), "failed to remove %s", item.ID)
		})
	}
	if err := g.Wait(); err != nil {
		return srv.fail(ctx, "Could not clear wishlist", err, rollback)
	}

	notifyInfo(ctx, srv.notifier, "Wishlist cleared", "")

	return srv.reconcile(ctx, owner, "Could not clear wishlist", rollback)
}

// LoadWishlist replaces the local list with the remote list, or with the guest list for guests.
func (srv *wishlistService) LoadWishlist(ctx context.Context) error {
	srv.mu.Lock()
	owner := srv.ownerLocked()
	srv.mu.Unlock()

	if owner.userID == "" {
		srv.setItemsFor(ctx, owner, srv.readGuestList(ctx))

		return nil
	}

	items, err := srv.repo.List(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		srv.log(ctx).Debug("Discarding wishlist load", slog.Any("error", ctxErr))

		return errors.WithStack(ctxErr)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load wishlist", slog.Any("error", err))
		notifyError(ctx, srv.notifier, "Could not load your wishlist", err)

		return errors.Wrap(err, "failed to load wishlist")
	}

	srv.setItemsFor(ctx, owner, items)

	return nil
}

// Items returns a copy of the list.
func (srv *wishlistService) Items() []entity.WishlistItem {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.items)
}

// Count returns the number of saved products.
func (srv *wishlistService) Count() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return len(srv.items)
}

// IsWished reports whether the product is saved.
func (srv *wishlistService) IsWished(productID string) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return containsWish(srv.items, productID)
}

func (srv *wishlistService) isGuest() bool {
	return srv.session.User() == nil
}

// admitGuest runs the login gate. proceed is true when the guest may continue with the local list.
func (srv *wishlistService) admitGuest(
	ctx context.Context,
	action service.LoginAction,
	item entity.WishlistItem,
) (proceed bool, err error) {
	location := deliverycontext.GetLocation(ctx)

	switch srv.gate(ctx, service.LoginPrompt{Action: action, Item: item, Location: location}) {
	case service.GateContinueAsGuest:
		return true, nil
	case service.GateHandled:
		return false, nil
	default:
		if err := srv.storage.Session.Set(ctx, repository.ReturnToKey, []byte(location)); err != nil {
			srv.log(ctx).Warn("Failed to store return location", slog.Any("error", err))
		}

		return false, &domainerrors.LoginRequiredError{
			ReturnTo:    location,
			RedirectURL: AuthPagePath + "?returnTo=" + url.QueryEscape(location),
		}
	}
}

// mutateGuest applies fn to the guest list and persists the result while holding the lock.
func (srv *wishlistService) mutateGuest(
	ctx context.Context,
	fn func([]entity.WishlistItem) []entity.WishlistItem,
	title string,
) error {
	srv.mu.Lock()
	next := fn(srv.items)
	srv.items = next
	err := srv.writeGuestList(ctx, next)
	srv.mu.Unlock()

	if err != nil {
		srv.log(ctx).Error("Failed to persist guest wishlist", slog.Any("error", err))
		notifyError(ctx, srv.notifier, "Could not save your wishlist", err)

		return err
	}

	notifyInfo(ctx, srv.notifier, title, "")

	return nil
}

func (srv *wishlistService) readGuestList(ctx context.Context) []entity.WishlistItem {
	raw, err := srv.storage.Local.Get(ctx, repository.WishlistKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Error("Failed to read guest wishlist", slog.Any("error", err))
		}

		return nil
	}

	var items []entity.WishlistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		srv.log(ctx).Error("Failed to parse guest wishlist", slog.Any("error", err))

		return nil
	}

	return items
}

func (srv *wishlistService) writeGuestList(ctx context.Context, items []entity.WishlistItem) error {
	if items == nil {
		items = []entity.WishlistItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "failed to encode guest wishlist")
	}

	return errors.Wrap(srv.storage.Local.Set(ctx, repository.WishlistKey, raw), "failed to write guest wishlist")
}

// reconcile replaces the local list with a fresh remote fetch. A failed fetch rolls back;
// a fetch finishing after the caller gave up, or after the user changed, is discarded.
func (srv *wishlistService) reconcile(ctx context.Context, owner wishlistOwner, title string, rollback func()) error {
	items, err := srv.repo.List(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		srv.log(ctx).Debug("Discarding wishlist reconciliation", slog.Any("error", ctxErr))

		return errors.WithStack(ctxErr)
	}
	if err != nil {
		return srv.fail(ctx, title, errors.Wrap(err, "failed to reconcile wishlist"), rollback)
	}

	srv.setItemsFor(ctx, owner, items)

	return nil
}

func (srv *wishlistService) fail(ctx context.Context, title string, err error, rollback func()) error {
	rollback()
	srv.log(ctx).Error(title, slog.Any("error", err))
	notifyError(ctx, srv.notifier, title, err)

	return err
}

func (srv *wishlistService) restoreFunc(ctx context.Context, owner wishlistOwner, snapshot []entity.WishlistItem) func() {
	return func() { srv.setItemsFor(ctx, owner, snapshot) }
}

// ownerLocked must be called with srv.mu held.
func (srv *wishlistService) ownerLocked() wishlistOwner {
	owner := wishlistOwner{epoch: srv.epoch}
	if user := srv.session.User(); user != nil {
		owner.userID = user.ID
	}

	return owner
}

func (srv *wishlistService) setItemsFor(ctx context.Context, owner wishlistOwner, items []entity.WishlistItem) {
	srv.updateFor(ctx, owner, func([]entity.WishlistItem) []entity.WishlistItem { return items })
}

// updateFor applies fn to the list unless the identity changed since owner was taken.
func (srv *wishlistService) updateFor(ctx context.Context, owner wishlistOwner, fn func([]entity.WishlistItem) []entity.WishlistItem) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if current := srv.ownerLocked(); current != owner {
		srv.log(ctx).Debug("Discarding wishlist update for previous user", slog.String("user_id", owner.userID))

		return
	}

	srv.items = fn(srv.items)
}

func containsWish(items []entity.WishlistItem, productID string) bool {
	return slices.ContainsFunc(items, func(it entity.WishlistItem) bool { return it.ID == productID })
}

// toggleWish returns a new slice; the input is treated as an immutable snapshot.
func toggleWish(items []entity.WishlistItem, item entity.WishlistItem) []entity.WishlistItem {
	if containsWish(items, item.ID) {
		return slices.DeleteFunc(slices.Clone(items), func(it entity.WishlistItem) bool { return it.ID == item.ID })
	}

	return append(slices.Clone(items), item)
}

func toggleTitle(existed bool) string {
	if existed {
		return "Removed from wishlist"
	}

	return "Added to wishlist"
}
