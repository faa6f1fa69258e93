// ABOUTME: Transient pre-login intent storage
// ABOUTME: Holds a pending cart item and a post-login redirect target in memory

package intent

import "sync"

// CartItem is a product a visitor tried to add before logging in. It is
// replayed once, after the next successful login. Never persisted.
type CartItem struct {
	ProductID string
	Name      string
	Quantity  int
}

// Store holds session-scoped intent markers. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	pending  *CartItem
	redirect string
}

// New creates an empty intent store.
func New() *Store {
	return &Store{}
}

// SetPendingCartItem records the item to replay after login, replacing
// any prior marker.
func (s *Store) SetPendingCartItem(item CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &item
}

// TakePendingCartItem returns and clears the pending item, if any.
func (s *Store) TakePendingCartItem() (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return CartItem{}, false
	}
	item := *s.pending
	s.pending = nil
	return item, true
}

// PendingCartItem returns the pending item without clearing it.
func (s *Store) PendingCartItem() (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return CartItem{}, false
	}
	return *s.pending, true
}

// SetRedirect records where to navigate after the next login.
func (s *Store) SetRedirect(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = target
}

// TakeRedirect returns and clears the redirect target, if any.
func (s *Store) TakeRedirect() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redirect == "" {
		return "", false
	}
	target := s.redirect
	s.redirect = ""
	return target, true
}
