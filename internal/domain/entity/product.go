package entity

import "time"

// Product is a catalog entry. Prices are whole currency units.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// ToCartItem snapshots the product into a cart line with quantity 1.
func (p Product) ToCartItem() CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.ImageURL,
		Quantity: 1,
	}
}

// ToWishlistItem snapshots the product into a wishlist entry.
func (p Product) ToWishlistItem() WishlistItem {
	return WishlistItem{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.ImageURL,
	}
}

// FileUpload is an in-memory file picked by the user (payment receipt, product image).
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsEmpty reports whether no file content was provided.
func (f *FileUpload) IsEmpty() bool {
	return f == nil || len(f.Data) == 0
}
