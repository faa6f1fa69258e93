// ABOUTME: Tests for the root storefront TUI model
// ABOUTME: Covers auth gating, intent replay, stale refetch discard, and reset

package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
	"github.com/GKcoding-prog/BiMarket/internal/intent"
	"github.com/GKcoding-prog/BiMarket/internal/session"
	"github.com/GKcoding-prog/BiMarket/internal/tui/catalog"
	"github.com/GKcoding-prog/BiMarket/internal/tui/menu"
)

type fixture struct {
	app      *App
	intents  *intent.Store
	sess     *session.Manager
	requests *int64
}

// newFixture wires an App against a backend that records every request.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	var requests int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "tok1", "refresh": "ref1"})
	})
	mux.HandleFunc("/auth/me/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id": "u1", "email": "a@b.cm", "full_name": "Alice", "role": "client",
		})
	})
	mux.HandleFunc("/cart/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "total": 0})
	})
	mux.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "l1", "quantity": 1})
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client := api.New(srv.URL)
	creds := credstore.New(t.TempDir())
	sess := session.NewManager(client, creds, zerolog.Nop())
	intents := intent.New()

	return &fixture{
		app:      New(client, sess, intents, zerolog.Nop()),
		intents:  intents,
		sess:     sess,
		requests: &requests,
	}
}

func TestAnonymousAddToCartStoresIntentWithoutNetwork(t *testing.T) {
	f := newFixture(t)

	product := api.Product{ID: "p1", Name: "Wireless Mouse"}
	_, cmd := f.app.Update(catalog.AddToCartMsg{Product: product})
	// The returned command only initializes the auth form.
	_ = cmd

	assert.EqualValues(t, 0, atomic.LoadInt64(f.requests))
	assert.Equal(t, ScreenAuth, f.app.screen)

	item, ok := f.intents.PendingCartItem()
	require.True(t, ok)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 1, item.Quantity)

	target, ok := f.intents.TakeRedirect()
	require.True(t, ok)
	assert.Equal(t, "catalog", target)
}

func TestLoginReplaysPendingCartItem(t *testing.T) {
	f := newFixture(t)

	f.app.Update(catalog.AddToCartMsg{Product: api.Product{ID: "p1", Name: "Wireless Mouse"}})

	// Simulate the login command completing successfully.
	require.NoError(t, f.sess.Login(t.Context(), "a@b.cm", "pw"))
	_, cmd := f.app.Update(loginDoneMsg{})
	require.NotNil(t, cmd, "login completion must schedule the replay")

	_, ok := f.intents.PendingCartItem()
	assert.False(t, ok, "pending item should be consumed")
	assert.Equal(t, ScreenCatalog, f.app.screen, "redirect returns to the catalog")
}

func TestStaleCartResponseDiscarded(t *testing.T) {
	f := newFixture(t)

	f.app.loadCart() // seq 1
	f.app.loadCart() // seq 2

	stale := &api.Cart{Items: []api.CartItem{{ID: "old", Quantity: 5}}}
	f.app.Update(cartLoadedMsg{seq: 1, cart: stale})
	assert.Empty(t, f.app.cart.Items, "stale snapshot must not land")

	fresh := &api.Cart{Items: []api.CartItem{{ID: "new", Quantity: 1}}}
	f.app.Update(cartLoadedMsg{seq: 2, cart: fresh})
	require.Len(t, f.app.cart.Items, 1)
	assert.Equal(t, "new", f.app.cart.Items[0].ID)
}

func TestResetEventDropsDerivedState(t *testing.T) {
	f := newFixture(t)

	f.app.cart = api.Cart{Items: []api.CartItem{{ID: "l1", Quantity: 2}}, Total: 100}
	f.app.orders = []api.Order{{ID: "o1"}}
	f.app.screen = ScreenCart

	f.app.handleSessionEvent(session.Event{Kind: session.EventReset})

	assert.Empty(t, f.app.cart.Items)
	assert.Nil(t, f.app.orders)
	assert.Equal(t, ScreenMenu, f.app.screen)
	assert.Nil(t, f.app.cartV)
}

func TestWishlistToggleFlipsMarker(t *testing.T) {
	f := newFixture(t)

	f.app.catalogV = catalog.New()
	f.app.catalogV.SetProducts([]api.Product{{ID: "p1", Name: "Wireless Mouse"}})

	p := api.Product{ID: "p1", Name: "Wireless Mouse"}
	f.app.Update(wishlistToggledMsg{
		product: p,
		status:  &api.WishlistStatus{ProductID: "p1", InWishlist: true},
	})
	assert.True(t, f.app.catalogV.InWishlist("p1"))

	f.app.Update(wishlistToggledMsg{
		product: p,
		status:  &api.WishlistStatus{ProductID: "p1", InWishlist: false},
	})
	assert.False(t, f.app.catalogV.InWishlist("p1"))
}

func TestCartGateRequiresLogin(t *testing.T) {
	f := newFixture(t)

	f.app.handleMenuSelection(menu.ItemCart)
	assert.Equal(t, ScreenAuth, f.app.screen)
	assert.EqualValues(t, 0, atomic.LoadInt64(f.requests))
}

func TestAuthenticatedCartGatePasses(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Login(t.Context(), "a@b.cm", "pw"))

	f.app.handleMenuSelection(menu.ItemCart)
	assert.Equal(t, ScreenCart, f.app.screen)
}
