package repository

import (
	"context"
	"errors"
)

// Fixed keys of the client-side storage.
const (
	// SessionKey holds the persisted {user, token} pair in local storage.
	SessionKey = "hok_session"
	// WishlistKey holds the guest wishlist array in local storage.
	WishlistKey = "hok_wishlist_items"
	// ReturnToKey holds the post-login redirect target in session storage.
	ReturnToKey = "hok_return_to"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a small durable blob-per-key store with last-write-wins semantics.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ClientStorage groups the two client-side stores: Local survives restarts,
// Session lives only as long as the browsing session.
type ClientStorage struct {
	Local   KeyValueStore
	Session KeyValueStore
}
