package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginAction names the guest action that needs a signed-in user.
type LoginAction string

const (
	LoginActionWishlistAdd    LoginAction = "wishlist.add"
	LoginActionWishlistToggle LoginAction = "wishlist.toggle"
)

// GateDecision is what a LoginGate decided for a guest action.
type GateDecision int

const (
	// GateRedirect stores the current location and sends the user to the auth page.
	GateRedirect GateDecision = iota
	// GateContinueAsGuest performs the action against the guest list.
	GateContinueAsGuest
	// GateHandled means the hook showed its own prompt; nothing else happens.
	GateHandled
)

// LoginPrompt describes the intercepted guest action.
type LoginPrompt struct {
	Action   LoginAction
	Item     entity.WishlistItem
	Location string
}

// LoginGate lets the presentation layer override the default login redirect.
type LoginGate func(ctx context.Context, prompt LoginPrompt) GateDecision
