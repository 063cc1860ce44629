package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID            *string `gorm:"type:uuid;index"`
	Status            string  `gorm:"not null;default:pending"`
	TotalAmount       float64 `gorm:"type:numeric;not null"`
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ShippingAddress   string
	Notes             *string
	PaymentReceiptURL *string
	CreatedAt         time.Time
	Items             []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   string        `gorm:"type:uuid;not null;index"`
	ProductID string        `gorm:"type:uuid;not null"`
	Quantity  int           `gorm:"not null"`
	Price     float64       `gorm:"type:numeric;not null"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
