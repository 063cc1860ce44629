// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the signed-in account as returned by the remote auth endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsAdmin reports whether the user may use the back-office.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is the current identity plus the bearer token used for every authenticated request.
// A zero Session means nobody is signed in.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// IsAuthenticated reports whether the session carries a user.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// UserID returns the signed-in user's ID, or an empty string for guests.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}

	return s.User.ID
}
