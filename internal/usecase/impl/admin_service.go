package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// AdminAPIs groups the remote endpoints the back-office uses.
type AdminAPIs struct {
	Products service.ProductAPI
	Orders   service.OrderAPI
	Users    service.UserAPI
	Metrics  service.MetricsAPI
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	apis     AdminAPIs
	tables   repository.AdminRepository
	uploader service.MediaUploader
	session  usecase.SessionUsecase
	notifier service.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	apis AdminAPIs,
	tables repository.AdminRepository,
	uploader service.MediaUploader,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		apis:     apis,
		tables:   tables,
		uploader: uploader,
		session:  session,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct uploads the image, if any, then creates the product.
func (srv *adminService) CreateProduct(ctx context.Context, form usecase.ProductForm) (*entity.Product, error) {
	input, err := srv.productInput(ctx, form)
	if err != nil {
		return nil, err
	}

	product, err := srv.apis.Products.Create(ctx, input)
	if err != nil {
		return nil, srv.failed(ctx, "Could not create product", errors.Wrap(err, "failed to create product"))
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID))
	notifySuccess(ctx, srv.notifier, "Product created", product.Name)

	return product, nil
}

// UpdateProduct uploads the replacement image, if any, then updates the product.
func (srv *adminService) UpdateProduct(ctx context.Context, id string, form usecase.ProductForm) (*entity.Product, error) {
	input, err := srv.productInput(ctx, form)
	if err != nil {
		return nil, err
	}

	product, err := srv.apis.Products.Update(ctx, id, input)
	if err != nil {
		return nil, srv.failed(ctx, "Could not update product", errors.Wrap(err, "failed to update product"))
	}

	notifySuccess(ctx, srv.notifier, "Product updated", product.Name)

	return product, nil
}

// DeleteProduct removes a product.
func (srv *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}

	if err := srv.apis.Products.Delete(ctx, id); err != nil {
		return srv.failed(ctx, "Could not delete product", errors.Wrap(err, "failed to delete product"))
	}

	notifyInfo(ctx, srv.notifier, "Product deleted", "")

	return nil
}

// ListUsers returns the accounts known to the REST API.
func (srv *adminService) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	users, err := srv.apis.Users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, id string) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}
	if srv.session.User().ID == id {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("cannot delete the signed-in account"))
	}

	if err := srv.apis.Users.Delete(ctx, id); err != nil {
		return srv.failed(ctx, "Could not delete user", errors.Wrap(err, "failed to delete user"))
	}

	notifyInfo(ctx, srv.notifier, "User deleted", "")

	return nil
}

// ListCustomers joins the profiles table with the role grants.
func (srv *adminService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	profiles, err := srv.tables.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	grants, err := srv.tables.ListUserRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user roles")
	}

	roles := make(map[string]entity.Roles, len(grants))
	for _, g := range grants {
		// Unknown roles come from grants this storefront does not act on.
		if !g.Role.IsValid() || roles[g.UserID].Contains(g.Role) {
			continue
		}
		roles[g.UserID] = append(roles[g.UserID], g.Role)
	}

	customers := make([]entity.Customer, 0, len(profiles))
	for _, p := range profiles {
		r := roles[p.ID]
		if len(r) == 0 {
			r = entity.Roles{entity.RoleCustomer}
		}
		customers = append(customers, entity.Customer{Profile: p, Roles: r})
	}

	return customers, nil
}

// ListOrders reads the orders tables directly.
func (srv *adminService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]usecase.OrderDetails, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status: oneof"))
	}

	orders, err := srv.tables.ListOrders(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return withTotals(orders), nil
}

// UpdateOrderStatus moves an order to another status.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status: oneof"))
	}

	order, err := srv.apis.Orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, srv.failed(ctx, "Could not update order", errors.Wrap(err, "failed to update order status"))
	}

	srv.log(ctx).Info("Order status updated", slog.String("order_id", id), slog.String("status", status.String()))
	notifySuccess(ctx, srv.notifier, "Order updated", "Status set to "+status.String())

	return order, nil
}

// ConfirmPayment marks the bank transfer of an order as received.
func (srv *adminService) ConfirmPayment(ctx context.Context, id string) (*entity.Order, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	order, err := srv.apis.Orders.ConfirmPayment(ctx, id)
	if err != nil {
		return nil, srv.failed(ctx, "Could not confirm payment", errors.Wrap(err, "failed to confirm payment"))
	}

	notifySuccess(ctx, srv.notifier, "Payment confirmed", "")

	return order, nil
}

// MetricsOverview returns the dashboard summary.
func (srv *adminService) MetricsOverview(ctx context.Context) (*entity.MetricsOverview, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	overview, err := srv.apis.Metrics.Overview(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load metrics overview")
	}

	return overview, nil
}

// ListNewsletterSubscribers returns the newsletter list.
func (srv *adminService) ListNewsletterSubscribers(ctx context.Context) ([]entity.NewsletterSubscriber, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	subscribers, err := srv.tables.ListNewsletterSubscribers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscribers")
	}

	return subscribers, nil
}

// ListContactMessages returns the contact form inbox.
func (srv *adminService) ListContactMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	messages, err := srv.tables.ListContactMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

// DeleteContactMessage removes a handled message.
func (srv *adminService) DeleteContactMessage(ctx context.Context, id string) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}

	if err := srv.tables.DeleteContactMessage(ctx, id); err != nil {
		return srv.failed(ctx, "Could not delete message", errors.Wrap(err, "failed to delete contact message"))
	}

	notifyInfo(ctx, srv.notifier, "Message deleted", "")

	return nil
}

func (srv *adminService) requireAdmin() error {
	user := srv.session.User()
	if user == nil {
		return errors.WithStack(domainerrors.ErrSignInRequired)
	}
	if !user.IsAdmin() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

func (srv *adminService) productInput(ctx context.Context, form usecase.ProductForm) (service.ProductInput, error) {
	if err := srv.requireAdmin(); err != nil {
		return service.ProductInput{}, err
	}
	if err := srv.validate.Struct(form); err != nil {
		return service.ProductInput{}, validationError(err)
	}

	imageURL := form.ImageURL
	if !form.Image.IsEmpty() {
		url, err := srv.uploader.Upload(ctx, form.Image)
		if err != nil {
			return service.ProductInput{}, srv.failed(ctx, "Image upload failed", errors.Wrap(err, "failed to upload product image"))
		}
		imageURL = url
	}

	return service.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		Stock:       form.Stock,
		ImageURL:    imageURL,
	}, nil
}

func (srv *adminService) failed(ctx context.Context, title string, err error) error {
	srv.log(ctx).Error(title, slog.Any("error", err))
	notifyError(ctx, srv.notifier, title, err)

	return err
}
