package service

import "time"

// TokenSource hands out the bearer token of the current session, or "" for guests.
type TokenSource interface {
	Token() string
}

// TokenStore is the single in-memory slot the session writes its token into.
type TokenStore interface {
	TokenSource
	SetToken(token string)
}

// TokenInspector reads claims from a bearer token without verifying its signature;
// the remote API remains the authority on validity.
type TokenInspector interface {
	// ExpiresAt returns the exp claim. ok is false when the token carries none.
	ExpiresAt(token string) (expiresAt time.Time, ok bool, err error)
}
