package api

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseAuth_SnakeAndCamelCase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"snake_case", `{"access_token":"t1","user":{"id":"u1","email":"a@b.c","full_name":"Ada L","role":"admin"}}`},
		{"camelCase", `{"accessToken":"t1","user":{"id":"u1","email":"a@b.c","fullName":"Ada L","role":"admin"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user := parseAuth(gjson.Parse(tt.body))

			assert.Equal(t, "t1", token)
			require.NotNil(t, user)
			assert.Equal(t, &entity.User{ID: "u1", Email: "a@b.c", Name: "Ada L", Role: entity.RoleAdmin}, user)
		})
	}
}

func TestParseOrder_CoalescesFieldsAndRoundsAmounts(t *testing.T) {
	body := `{
		"order": {
			"id": "o1",
			"status": "pending",
			"total_amount": "50750.4",
			"customerName": "Ada",
			"customer_email": "ada@example.com",
			"shipping_address": "1 Main St",
			"receiptUrl": null,
			"payment_receipt_url": "https://cdn/r.png",
			"created_at": "2024-05-01T10:00:00Z",
			"order_items": [
				{"product_id": "p1", "quantity": 2, "unit_price": 25000, "product": {"name": "Lamp", "image_url": "https://cdn/l.png"}},
				{"productId": "p2", "quantity": 1, "price": 0.5, "name": "Pin"}
			]
		}
	}`

	order := parseOrder(gjson.Parse(body))

	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(50750), order.TotalAmount)
	assert.Equal(t, "Ada", order.CustomerName)
	assert.Equal(t, "ada@example.com", order.CustomerEmail)
	assert.Equal(t, "https://cdn/r.png", order.ReceiptURL)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), order.CreatedAt)
	require.Len(t, order.Items, 2)
	assert.Equal(t, entity.OrderItem{ProductID: "p1", Name: "Lamp", Image: "https://cdn/l.png", UnitPrice: 25000, Quantity: 2}, order.Items[0])
	assert.Equal(t, entity.OrderItem{ProductID: "p2", Name: "Pin", UnitPrice: 1, Quantity: 1}, order.Items[1])
}

func TestParseProducts_WrappedAndBareArrays(t *testing.T) {
	bare := parseProducts(gjson.Parse(`[{"id":"p1","name":"Lamp","price":1500,"image_url":"i","stock_quantity":3}]`))
	wrapped := parseProducts(gjson.Parse(`{"data":[{"id":"p1","name":"Lamp","price":"1500","imageUrl":"i","stock":3}]}`))

	want := entity.Product{ID: "p1", Name: "Lamp", Price: 1500, ImageURL: "i", Stock: 3}
	require.Len(t, bare, 1)
	require.Len(t, wrapped, 1)
	assert.Equal(t, want, bare[0])
	assert.Equal(t, want, wrapped[0])
}

func TestParseWishlist_EmbeddedAndFlat(t *testing.T) {
	items := parseWishlist(gjson.Parse(`[
		{"id": "row-1", "product_id": "p1", "products": {"name": "Lamp", "price": 1500, "image_url": "i1"}},
		{"id": "p2", "name": "Pin", "price": 50, "image": "i2"}
	]`))

	assert.Equal(t, []entity.WishlistItem{
		{ID: "p1", Name: "Lamp", Price: 1500, Image: "i1"},
		{ID: "p2", Name: "Pin", Price: 50, Image: "i2"},
	}, items)
}

func TestParseMetricsOverview(t *testing.T) {
	overview := parseMetricsOverview(gjson.Parse(`{"totalRevenue": 1200.6, "total_orders": 4, "pendingOrders": 1, "total_products": 9, "totalUsers": 12}`))

	assert.Equal(t, entity.MetricsOverview{
		TotalRevenue:   1201,
		TotalOrders:    4,
		PendingOrders:  1,
		TotalProducts:  9,
		TotalCustomers: 12,
	}, overview)
}

func TestParseUser_NotAnObject(t *testing.T) {
	assert.Nil(t, parseUser(gjson.Parse(`null`)))
	assert.Nil(t, parseUser(gjson.Parse(`"text"`)))
}
