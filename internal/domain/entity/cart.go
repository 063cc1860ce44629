package entity

// CartItem is one line of the cart. ID is the product identifier and is unique within a cart;
// Quantity is always at least 1, a line driven to zero is removed instead of stored.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// LineTotal returns price × quantity.
func (c CartItem) LineTotal() int64 {
	return c.Price * int64(c.Quantity)
}

// CartRow is a row of the remote cart_items table joined with its product.
type CartRow struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	Name      string
	Price     int64
	Image     string
}

// ToCartItem maps the remote row to the local cart representation.
func (r CartRow) ToCartItem() CartItem {
	return CartItem{
		ID:       r.ProductID,
		Name:     r.Name,
		Price:    r.Price,
		Image:    r.Image,
		Quantity: r.Quantity,
	}
}
