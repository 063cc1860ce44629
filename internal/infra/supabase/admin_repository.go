package supabase

import (
	"context"
	"math"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

const orderColumns = "id,user_id,status,total_amount,customer_name,customer_email,customer_phone," +
	"shipping_address,notes,payment_receipt_url,created_at," +
	"order_items(product_id,quantity,price,products(name,image_url))"

type orderRecord struct {
	ID              string    `json:"id"`
	UserID          *string   `json:"user_id"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"total_amount"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ShippingAddress string    `json:"shipping_address"`
	Notes           *string   `json:"notes"`
	ReceiptURL      *string   `json:"payment_receipt_url"`
	CreatedAt       time.Time `json:"created_at"`
	OrderItems      []struct {
		ProductID string  `json:"product_id"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
		Products  *struct {
			Name     string `json:"name"`
			ImageURL string `json:"image_url"`
		} `json:"products"`
	} `json:"order_items"`
}

func (r orderRecord) toEntity() entity.Order {
	items := make([]entity.OrderItem, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		item := entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: int64(math.Round(it.Price)),
		}
		if it.Products != nil {
			item.Name = it.Products.Name
			item.Image = it.Products.ImageURL
		}
		items = append(items, item)
	}

	return entity.Order{
		ID:              r.ID,
		UserID:          deref(r.UserID),
		Status:          entity.OrderStatus(r.Status),
		TotalAmount:     int64(math.Round(r.TotalAmount)),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		Notes:           deref(r.Notes),
		Items:           items,
		ReceiptURL:      deref(r.ReceiptURL),
		CreatedAt:       r.CreatedAt,
	}
}

type profileRecord struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type userRoleRecord struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type subscriberRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type contactMessageRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type adminRepository struct {
	client *Client
}

// NewAdminRepository creates the PostgREST-backed back-office repository.
func NewAdminRepository(client *Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

func (repo *adminRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	query := repo.client.From("orders").
		Select(orderColumns).
		Order("created_at", OrderDesc)
	if filter.Status != "" {
		query = query.Eq("status", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var records []orderRecord
	if err := query.ExecuteInto(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]entity.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.toEntity())
	}

	return orders, nil
}

func (repo *adminRepository) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	var records []profileRecord
	err := repo.client.From("profiles").
		Select("id,email,full_name,phone,created_at").
		Order("created_at", OrderDesc).
		ExecuteInto(ctx, &records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]entity.Profile, 0, len(records))
	for _, r := range records {
		profiles = append(profiles, entity.Profile{
			ID:        r.ID,
			Email:     deref(r.Email),
			FullName:  deref(r.FullName),
			Phone:     deref(r.Phone),
			CreatedAt: r.CreatedAt,
		})
	}

	return profiles, nil
}

func (repo *adminRepository) ListUserRoles(ctx context.Context) ([]entity.UserRole, error) {
	var records []userRoleRecord
	if err := repo.client.From("user_roles").Select("user_id,role").ExecuteInto(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to list user roles")
	}

	roles := make([]entity.UserRole, 0, len(records))
	for _, r := range records {
		roles = append(roles, entity.UserRole{UserID: r.UserID, Role: entity.Role(r.Role)})
	}

	return roles, nil
}

func (repo *adminRepository) ListNewsletterSubscribers(ctx context.Context) ([]entity.NewsletterSubscriber, error) {
	var records []subscriberRecord
	err := repo.client.From("newsletter_subscribers").
		Select("id,email,created_at").
		Order("created_at", OrderDesc).
		ExecuteInto(ctx, &records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletter subscribers")
	}

	subscribers := make([]entity.NewsletterSubscriber, 0, len(records))
	for _, r := range records {
		subscribers = append(subscribers, entity.NewsletterSubscriber(r))
	}

	return subscribers, nil
}

func (repo *adminRepository) ListContactMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	var records []contactMessageRecord
	err := repo.client.From("contact_messages").
		Select("id,name,email,subject,message,created_at").
		Order("created_at", OrderDesc).
		ExecuteInto(ctx, &records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	messages := make([]entity.ContactMessage, 0, len(records))
	for _, r := range records {
		messages = append(messages, entity.ContactMessage{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Subject:   deref(r.Subject),
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}

	return messages, nil
}

func (repo *adminRepository) DeleteContactMessage(ctx context.Context, id string) error {
	_, err := repo.client.From("contact_messages").Delete().Eq("id", id).Execute(ctx)

	return errors.Wrap(err, "failed to delete contact message")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
