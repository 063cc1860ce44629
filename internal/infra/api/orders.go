package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// OrderClient covers /orders.
type OrderClient struct {
	client *Client
}

var _ service.OrderAPI = (*OrderClient)(nil)

// NewOrderClient is the constructor for OrderClient.
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// List returns the orders of the token's user.
func (o *OrderClient) List(ctx context.Context) ([]entity.Order, error) {
	res, err := o.client.Get(ctx, "/orders", nil)
	if err != nil {
		return nil, err
	}

	return parseOrders(res.JSON()), nil
}

// Get returns one order.
func (o *OrderClient) Get(ctx context.Context, id string) (*entity.Order, error) {
	res, err := o.client.Get(ctx, "/orders/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return orderResult(res)
}

// Create places an order for the signed-in user.
func (o *OrderClient) Create(ctx context.Context, input service.CreateOrderInput) (*entity.Order, error) {
	return o.create(ctx, "/orders", input)
}

// CreateGuest places an order without a session.
func (o *OrderClient) CreateGuest(ctx context.Context, input service.CreateOrderInput) (*entity.Order, error) {
	return o.create(ctx, "/orders/guest", input)
}

// UpdateStatus moves the order to status.
func (o *OrderClient) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	res, err := o.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/status", JSONBody(map[string]string{
		"status": status.String(),
	}))
	if err != nil {
		return nil, err
	}

	return orderResult(res)
}

// ConfirmPayment marks the bank transfer as received.
func (o *OrderClient) ConfirmPayment(ctx context.Context, id string) (*entity.Order, error) {
	res, err := o.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/confirm-payment", nil)
	if err != nil {
		return nil, err
	}

	return orderResult(res)
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

func (o *OrderClient) create(ctx context.Context, path string, input service.CreateOrderInput) (*entity.Order, error) {
	items := make([]orderItemPayload, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, orderItemPayload{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.UnitPrice})
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	form := NewMultipartBody().
		Field("customerName", input.CustomerName).
		Field("customerEmail", input.CustomerEmail).
		Field("customerPhone", input.CustomerPhone).
		Field("shippingAddress", input.ShippingAddress).
		Field("notes", input.Notes).
		Field("totalAmount", strconv.FormatInt(input.TotalAmount, 10)).
		Field("items", string(rawItems)).
		File("receipt", input.Receipt)

	res, err := o.client.Post(ctx, path, form)
	if err != nil {
		return nil, err
	}

	return orderResult(res)
}

func orderResult(res *Result) (*entity.Order, error) {
	order := parseOrder(unwrap(res.JSON(), "data"))
	if order.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("malformed order response"))
	}

	return &order, nil
}
