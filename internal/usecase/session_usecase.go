// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpInput defines the data required to register a new shopper.
type SignUpInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// IdentityListener is called whenever the signed-in user changes, including to nobody.
type IdentityListener func(ctx context.Context, user *entity.User)

// SessionUsecase owns the current identity and its bearer token.
type SessionUsecase interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, input SignUpInput) error
	// SignOut always succeeds and may be called repeatedly.
	SignOut(ctx context.Context)
	// Restore rehydrates the persisted session once at start-up.
	Restore(ctx context.Context)
	// Refresh reloads the signed-in user's record from GET /users/me.
	Refresh(ctx context.Context) (*entity.User, error)

	Current() entity.Session
	User() *entity.User
	Subscribe(listener IdentityListener)
}
