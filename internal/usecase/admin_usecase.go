package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductForm is the back-office product editor. Image, when present, is uploaded first.
type ProductForm struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Price       int64              `json:"price" validate:"gte=0"`
	Category    string             `json:"category" validate:"required"`
	Stock       int                `json:"stock" validate:"gte=0"`
	ImageURL    string             `json:"imageUrl" validate:"omitempty,url"`
	Image       *entity.FileUpload `json:"-"`
}

// AdminUsecase is the back-office. Every operation requires a signed-in admin.
type AdminUsecase interface {
	CreateProduct(ctx context.Context, form ProductForm) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, form ProductForm) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
	ConfirmPayment(ctx context.Context, id string) (*entity.Order, error)

	MetricsOverview(ctx context.Context) (*entity.MetricsOverview, error)

	ListNewsletterSubscribers(ctx context.Context) ([]entity.NewsletterSubscriber, error)
	ListContactMessages(ctx context.Context) ([]entity.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
}
