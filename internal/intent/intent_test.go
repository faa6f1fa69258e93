// ABOUTME: Tests for the transient intent store
// ABOUTME: Covers pending cart item and redirect take semantics

package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingCartItem_TakeClears(t *testing.T) {
	s := New()
	s.SetPendingCartItem(CartItem{ProductID: "42", Name: "Casque Audio", Quantity: 1})

	item, ok := s.TakePendingCartItem()
	require.True(t, ok)
	assert.Equal(t, "42", item.ProductID)

	_, ok = s.TakePendingCartItem()
	assert.False(t, ok)
}

func TestPendingCartItem_PeekDoesNotClear(t *testing.T) {
	s := New()
	s.SetPendingCartItem(CartItem{ProductID: "42", Quantity: 1})

	_, ok := s.PendingCartItem()
	require.True(t, ok)
	_, ok = s.PendingCartItem()
	assert.True(t, ok)
}

func TestPendingCartItem_Replaces(t *testing.T) {
	s := New()
	s.SetPendingCartItem(CartItem{ProductID: "1"})
	s.SetPendingCartItem(CartItem{ProductID: "2"})

	item, ok := s.TakePendingCartItem()
	require.True(t, ok)
	assert.Equal(t, "2", item.ProductID)
}

func TestRedirect(t *testing.T) {
	s := New()
	_, ok := s.TakeRedirect()
	assert.False(t, ok)

	s.SetRedirect("/cart")
	target, ok := s.TakeRedirect()
	require.True(t, ok)
	assert.Equal(t, "/cart", target)

	_, ok = s.TakeRedirect()
	assert.False(t, ok)
}
