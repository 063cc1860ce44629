package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderFilter narrows the back-office order list.
type OrderFilter struct {
	Status entity.OrderStatus
	Limit  int
}

// AdminRepository reads the back-office tables of the database-as-a-service backend directly.
type AdminRepository interface {
	// ListOrders returns orders with their items, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error)

	// ListProfiles returns every customer profile, newest first.
	ListProfiles(ctx context.Context) ([]entity.Profile, error)

	// ListUserRoles returns every role grant.
	ListUserRoles(ctx context.Context) ([]entity.UserRole, error)

	// ListNewsletterSubscribers returns every subscriber, newest first.
	ListNewsletterSubscribers(ctx context.Context) ([]entity.NewsletterSubscriber, error)

	// ListContactMessages returns every contact form message, newest first.
	ListContactMessages(ctx context.Context) ([]entity.ContactMessage, error)

	// DeleteContactMessage removes a handled message.
	DeleteContactMessage(ctx context.Context, id string) error
}
