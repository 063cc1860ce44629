package entity

import "time"

// OrderStatus is the lifecycle state of an order as owned by the remote API.
type OrderStatus string

const (
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderStatusPaid                 OrderStatus = "paid"
	OrderStatusProcessing           OrderStatus = "processing"
	OrderStatusShipped              OrderStatus = "shipped"
	OrderStatusDelivered            OrderStatus = "delivered"
	OrderStatusCancelled            OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one the back-office may set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAwaitingConfirmation, OrderStatusPaid,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is read-only from the client's perspective except for status transitions.
// TotalAmount is whatever the server stored; displays use the locally derived totals.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId,omitempty"`
	Status          OrderStatus `json:"status"`
	TotalAmount     int64       `json:"totalAmount"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	ShippingAddress string      `json:"shippingAddress"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	ReceiptURL      string      `json:"receiptUrl,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitzero"`
}

// OrderItem is one purchased line with the unit price captured at order time.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}
