package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps session identifiers to carts, creating a cart on first
// use of an identifier.
type Sessions struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

// NewSessionID issues a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the cart for a session, creating it when absent.
func (s *Sessions) Get(id string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[id]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[id]; ok {
		return c
	}
	c = New()
	s.carts[id] = c
	return c
}
