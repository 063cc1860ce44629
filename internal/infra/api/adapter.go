package api

import (
	"math"
	"time"

	"storefront/internal/domain/entity"

	"github.com/tidwall/gjson"
)

// The remote API mixes snake_case and camelCase field names between endpoints.
// Each parser below lists the accepted spellings of a field once, in order of preference.

// first returns the first path that holds a non-null value.
func first(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}

	return gjson.Result{}
}

func str(r gjson.Result, paths ...string) string {
	return first(r, paths...).String()
}

// amount reads a money value, which may arrive as a number or a numeric string,
// rounded to whole currency units.
func amount(r gjson.Result, paths ...string) int64 {
	return int64(math.Round(first(r, paths...).Float()))
}

func integer(r gjson.Result, paths ...string) int {
	return int(first(r, paths...).Int())
}

func timestamp(r gjson.Result, paths ...string) time.Time {
	v := first(r, paths...)
	if !v.Exists() {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339Nano, v.String())
	if err != nil {
		return time.Time{}
	}

	return t
}

// unwrap returns r[key] when the API wrapped the object, otherwise r itself.
func unwrap(r gjson.Result, keys ...string) gjson.Result {
	if v := first(r, keys...); v.IsObject() {
		return v
	}

	return r
}

// list returns the array at the root or under one of the wrapper keys.
func list(r gjson.Result, keys ...string) []gjson.Result {
	if r.IsArray() {
		return r.Array()
	}

	if v := first(r, append(keys, "data", "items")...); v.IsArray() {
		return v.Array()
	}

	return nil
}

func parseUser(r gjson.Result) *entity.User {
	r = unwrap(r, "user")
	if !r.IsObject() {
		return nil
	}

	return &entity.User{
		ID:    str(r, "id", "user_id", "userId", "_id"),
		Email: str(r, "email"),
		Role:  entity.Role(str(r, "role")),
		Name:  str(r, "name", "full_name", "fullName"),
		Phone: str(r, "phone", "phone_number", "phoneNumber"),
	}
}

func parseAuth(r gjson.Result) (token string, user *entity.User) {
	token = str(r, "access_token", "accessToken", "token", "session.access_token")

	return token, parseUser(first(r, "user", "data.user"))
}

func parseProduct(r gjson.Result) entity.Product {
	return entity.Product{
		ID:          str(r, "id", "_id"),
		Name:        str(r, "name"),
		Description: str(r, "description"),
		Price:       amount(r, "price"),
		Category:    str(r, "category", "category.name"),
		ImageURL:    str(r, "image_url", "imageUrl", "image"),
		Stock:       integer(r, "stock", "stock_quantity", "stockQuantity"),
		CreatedAt:   timestamp(r, "created_at", "createdAt"),
	}
}

func parseProducts(r gjson.Result) []entity.Product {
	items := list(r, "products")
	products := make([]entity.Product, 0, len(items))
	for _, it := range items {
		products = append(products, parseProduct(it))
	}

	return products
}

func parseOrderItem(r gjson.Result) entity.OrderItem {
	return entity.OrderItem{
		ProductID: str(r, "product_id", "productId", "product.id"),
		Name:      str(r, "name", "product_name", "productName", "product.name"),
		Image:     str(r, "image", "image_url", "imageUrl", "product.image_url", "product.imageUrl"),
		UnitPrice: amount(r, "unit_price", "unitPrice", "price", "product.price"),
		Quantity:  integer(r, "quantity"),
	}
}

func parseOrder(r gjson.Result) entity.Order {
	r = unwrap(r, "order")

	rawItems := first(r, "items", "order_items", "orderItems").Array()
	items := make([]entity.OrderItem, 0, len(rawItems))
	for _, it := range rawItems {
		items = append(items, parseOrderItem(it))
	}

	return entity.Order{
		ID:              str(r, "id", "_id"),
		UserID:          str(r, "user_id", "userId"),
		Status:          entity.OrderStatus(str(r, "status")),
		TotalAmount:     amount(r, "total_amount", "totalAmount", "total"),
		CustomerName:    str(r, "customer_name", "customerName"),
		CustomerEmail:   str(r, "customer_email", "customerEmail"),
		CustomerPhone:   str(r, "customer_phone", "customerPhone"),
		ShippingAddress: str(r, "shipping_address", "shippingAddress"),
		Notes:           str(r, "notes"),
		Items:           items,
		ReceiptURL:      str(r, "receipt_url", "receiptUrl", "payment_receipt_url", "paymentReceiptUrl"),
		CreatedAt:       timestamp(r, "created_at", "createdAt"),
	}
}

func parseOrders(r gjson.Result) []entity.Order {
	items := list(r, "orders")
	orders := make([]entity.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, parseOrder(it))
	}

	return orders
}

func parseReview(r gjson.Result) entity.Review {
	r = unwrap(r, "review")

	return entity.Review{
		ID:         str(r, "id", "_id"),
		ProductID:  str(r, "product_id", "productId"),
		UserID:     str(r, "user_id", "userId"),
		AuthorName: str(r, "author_name", "authorName", "user.name", "user.full_name", "profiles.full_name"),
		Rating:     integer(r, "rating"),
		Comment:    str(r, "comment"),
		CreatedAt:  timestamp(r, "created_at", "createdAt"),
	}
}

func parseReviews(r gjson.Result) []entity.Review {
	items := list(r, "reviews")
	reviews := make([]entity.Review, 0, len(items))
	for _, it := range items {
		reviews = append(reviews, parseReview(it))
	}

	return reviews
}

func parseUsers(r gjson.Result) []entity.User {
	items := list(r, "users")
	users := make([]entity.User, 0, len(items))
	for _, it := range items {
		if u := parseUser(it); u != nil {
			users = append(users, *u)
		}
	}

	return users
}

func parseWishlistItem(r gjson.Result) entity.WishlistItem {
	// Rows may embed the product or carry it flat.
	product := first(r, "product", "products")
	if !product.IsObject() {
		product = r
	}

	return entity.WishlistItem{
		ID:    str(r, "product_id", "productId", "product.id"),
		Name:  str(product, "name"),
		Price: amount(product, "price"),
		Image: str(product, "image_url", "imageUrl", "image"),
	}
}

func parseWishlist(r gjson.Result) []entity.WishlistItem {
	items := list(r, "wishlist")
	wishlist := make([]entity.WishlistItem, 0, len(items))
	for _, it := range items {
		item := parseWishlistItem(it)
		if item.ID == "" {
			item.ID = str(it, "id")
		}
		wishlist = append(wishlist, item)
	}

	return wishlist
}

func parseMetricsOverview(r gjson.Result) entity.MetricsOverview {
	r = unwrap(r, "overview", "metrics")

	return entity.MetricsOverview{
		TotalRevenue:   amount(r, "total_revenue", "totalRevenue"),
		TotalOrders:    integer(r, "total_orders", "totalOrders"),
		PendingOrders:  integer(r, "pending_orders", "pendingOrders"),
		TotalProducts:  integer(r, "total_products", "totalProducts"),
		TotalCustomers: integer(r, "total_customers", "totalCustomers", "total_users", "totalUsers"),
	}
}
