package cart

import "sync"

// Store keeps one cart per user for the lifetime of the process.
// Carts are created lazily on first access.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Snapshot returns the current items of the user's cart.
func (s *Store) Snapshot(userID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[userID]; ok {
		return c.Items()
	}
	return []Item{}
}

// With runs fn while holding the store lock, serializing all
// mutations of the user's cart.
func (s *Store) With(userID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return fn(c)
}
