package entity

// WishlistItem is a saved product. The list has set semantics on ID and no quantity.
type WishlistItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}
