package entity

import "time"

// Profile is a row of the profiles table used by the back-office customer view.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// UserRole is a row of the user_roles table.
type UserRole struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// Customer joins a profile with its granted roles.
type Customer struct {
	Profile
	Roles Roles `json:"roles"`
}

// NewsletterSubscriber is a row of the newsletter_subscribers table.
type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ContactMessage is a row of the contact_messages table.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// MetricsOverview is the dashboard summary served by GET /metrics/overview.
type MetricsOverview struct {
	TotalRevenue   int64 `json:"totalRevenue"`
	TotalOrders    int   `json:"totalOrders"`
	PendingOrders  int   `json:"pendingOrders"`
	TotalProducts  int   `json:"totalProducts"`
	TotalCustomers int   `json:"totalCustomers"`
}
