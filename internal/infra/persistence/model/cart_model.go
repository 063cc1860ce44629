// Package model holds the GORM structs mapped to the database-as-a-service tables.
package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string  `gorm:"not null"`
	Description   string
	Price         float64 `gorm:"type:numeric;not null"`
	Category      string
	ImageURL      string
	StockQuantity int `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// (user_id, product_id) is unique.
type CartItemModel struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int    `gorm:"not null;default:1"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// CartRowView is a cart row joined with its product.
type CartRowView struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	Name      *string
	Price     *float64
	ImageURL  *string
}
