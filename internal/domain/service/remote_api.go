package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthResult is the normalized answer of the login and register endpoints.
type AuthResult struct {
	Token string
	User  *entity.User
}

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// AuthAPI covers /auth and /users/me.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Me(ctx context.Context) (*entity.User, error)
}

// ProductQuery filters GET /products.
type ProductQuery struct {
	Category string
	Search   string
}

// ProductInput is the editable part of a product. ImageURL is already uploaded.
type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
	Stock       int
	ImageURL    string
}

// ProductAPI covers /products.
type ProductAPI interface {
	List(ctx context.Context, query ProductQuery) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// CreateOrderInput is the multipart body of POST /orders and POST /orders/guest.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	Items           []entity.OrderItem
	TotalAmount     int64
	Receipt         *entity.FileUpload
}

// OrderAPI covers /orders.
type OrderAPI interface {
	List(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	CreateGuest(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
	ConfirmPayment(ctx context.Context, id string) (*entity.Order, error)
}

// CreateReviewInput is the body of POST /reviews.
type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// ReviewAPI covers /reviews.
type ReviewAPI interface {
	ListByProduct(ctx context.Context, productID string) ([]entity.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
}

// UserAPI covers /users.
type UserAPI interface {
	List(ctx context.Context) ([]entity.User, error)
	Delete(ctx context.Context, id string) error
}

// MetricsAPI covers /metrics/overview.
type MetricsAPI interface {
	Overview(ctx context.Context) (*entity.MetricsOverview, error)
}
