package impl

import (
	"context"

	"storefront/internal/domain/service"
)

// RedirectToLogin is the default gate: guests are sent to the auth page.
func RedirectToLogin(context.Context, service.LoginPrompt) service.GateDecision {
	return service.GateRedirect
}

// ContinueAsGuest keeps guests on the page and saves to the local wishlist instead.
func ContinueAsGuest(context.Context, service.LoginPrompt) service.GateDecision {
	return service.GateContinueAsGuest
}

// NewLoginGate returns the gate matching the wishlist.allowGuest setting.
func NewLoginGate(allowGuest bool) service.LoginGate {
	if allowGuest {
		return ContinueAsGuest
	}

	return RedirectToLogin
}
