package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// OrderDetails is an order with its locally derived totals.
type OrderDetails struct {
	Order  *entity.Order  `json:"order"`
	Totals pricing.Totals `json:"totals"`
}

// InvoiceLine is a rendered invoice row.
type InvoiceLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// Invoice is the data the invoice template renders.
type Invoice struct {
	OrderID          string         `json:"orderId"`
	Status           string         `json:"status"`
	IssuedAt         string         `json:"issuedAt"`
	CustomerName     string         `json:"customerName"`
	CustomerEmail    string         `json:"customerEmail"`
	CustomerPhone    string         `json:"customerPhone"`
	ShippingAddress  string         `json:"shippingAddress"`
	Lines            []InvoiceLine  `json:"lines"`
	Totals           pricing.Totals `json:"totals"`
	Subtotal         string         `json:"subtotal"`
	ProcessingFee    string         `json:"processingFee"`
	Total            string         `json:"total"`
	PaymentReference string         `json:"paymentReference"`
	BankName         string         `json:"bankName"`
	AccountName      string         `json:"accountName"`
	AccountNumber    string         `json:"accountNumber"`
}

// OrderUsecase is the shopper's order history.
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]OrderDetails, error)
	GetOrder(ctx context.Context, id string) (*OrderDetails, error)
	Invoice(ctx context.Context, id string) (*Invoice, error)
	InvoiceQRCode(ctx context.Context, id string) ([]byte, error)
}
