package auth

import (
	"sync"

	"storefront/internal/domain/service"
)

// memoryTokenStore is the single in-memory slot holding the current bearer token.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore is the constructor for memoryTokenStore.
func NewTokenStore() service.TokenStore {
	return &memoryTokenStore{}
}

// Token returns the current bearer token, or "" for guests.
func (s *memoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// SetToken replaces the current bearer token.
func (s *memoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}
