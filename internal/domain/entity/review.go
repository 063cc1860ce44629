package entity

import "time"

// Review is a product rating left by a signed-in shopper.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
}
