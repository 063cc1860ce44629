package postgres

import (
	"context"
	"math"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Order("created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

func (repo *adminRepository) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	var profileModels []model.ProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&profileModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	profiles := make([]entity.Profile, 0, len(profileModels))
	for _, m := range profileModels {
		profiles = append(profiles, entity.Profile{
			ID:        m.ID,
			Email:     deref(m.Email),
			FullName:  deref(m.FullName),
			Phone:     deref(m.Phone),
			CreatedAt: m.CreatedAt,
		})
	}

	return profiles, nil
}

func (repo *adminRepository) ListUserRoles(ctx context.Context) ([]entity.UserRole, error) {
	var roleModels []model.UserRoleModel
	if err := repo.db.WithContext(ctx).Find(&roleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user roles")
	}

	roles := make([]entity.UserRole, 0, len(roleModels))
	for _, m := range roleModels {
		roles = append(roles, entity.UserRole{UserID: m.UserID, Role: entity.Role(m.Role)})
	}

	return roles, nil
}

func (repo *adminRepository) ListNewsletterSubscribers(ctx context.Context) ([]entity.NewsletterSubscriber, error) {
	var subscriberModels []model.NewsletterSubscriberModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&subscriberModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list newsletter subscribers")
	}

	subscribers := make([]entity.NewsletterSubscriber, 0, len(subscriberModels))
	for _, m := range subscriberModels {
		subscribers = append(subscribers, entity.NewsletterSubscriber{ID: m.ID, Email: m.Email, CreatedAt: m.CreatedAt})
	}

	return subscribers, nil
}

func (repo *adminRepository) ListContactMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	var messageModels []model.ContactMessageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&messageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact messages")
	}

	messages := make([]entity.ContactMessage, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, entity.ContactMessage{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   deref(m.Subject),
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, nil
}

func (repo *adminRepository) DeleteContactMessage(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactMessageModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete contact message")
	}

	return nil
}

func toOrderDomain(m *model.OrderModel) entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, it := range m.Items {
		item := entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: int64(math.Round(it.Price)),
		}
		if it.Product != nil {
			item.Name = it.Product.Name
			item.Image = it.Product.ImageURL
		}
		items = append(items, item)
	}

	return entity.Order{
		ID:              m.ID,
		UserID:          deref(m.UserID),
		Status:          entity.OrderStatus(m.Status),
		TotalAmount:     int64(math.Round(m.TotalAmount)),
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   m.CustomerPhone,
		ShippingAddress: m.ShippingAddress,
		Notes:           deref(m.Notes),
		Items:           items,
		ReceiptURL:      deref(m.PaymentReceiptURL),
		CreatedAt:       m.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
