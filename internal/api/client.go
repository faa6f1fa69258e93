// ABOUTME: HTTP client for the BiMarket marketplace backend
// ABOUTME: Single dispatch path that attaches auth and classifies outcomes

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is the API client for the BiMarket backend. All network calls
// go through a single dispatch path: one attempt per call, no retries,
// no client-level timeout. Cancellation is the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a debug logger to the client.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new API client with the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently set bearer token, empty when absent.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs a single request and decodes the JSON response into out
// when out is non-nil. Exactly one of decoded-out / returned-error
// holds per call.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("transport failure")
		return fmt.Errorf("cannot reach server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := newError(resp.StatusCode, raw)
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("msg", apiErr.Message).Msg("server error")
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, in LoginInput) (*TokenPair, error) {
	var tokens TokenPair
	if err := c.do(ctx, http.MethodPost, "/auth/login/", in, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates an account. It does not log the new account in.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/register/", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*TokenPair, error) {
	var tokens TokenPair
	in := map[string]string{"refresh": refresh}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh/", in, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout invalidates the session server-side. Callers treat this as
// best-effort; local state is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout/", nil, nil)
}

// Profile fetches the authenticated account's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Products lists catalog products, optionally filtered by category id.
func (c *Client) Products(ctx context.Context, categoryID string) ([]Product, error) {
	path := "/products/"
	if categoryID != "" {
		path += "?category=" + categoryID
	}
	var products []Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id+"/", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories lists catalog categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Cart fetches the authoritative cart snapshot.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart/", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds a product to the cart.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*CartItem, error) {
	in := map[string]any{"product_id": productID, "quantity": quantity}
	var item CartItem
	if err := c.do(ctx, http.MethodPost, "/cart/items/", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem changes the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	in := map[string]any{"quantity": quantity}
	var item CartItem
	if err := c.do(ctx, http.MethodPatch, "/cart/items/"+itemID+"/", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+itemID+"/", nil, nil)
}

// Wishlist fetches the full wishlist snapshot.
func (c *Client) Wishlist(ctx context.Context) (*Wishlist, error) {
	var wl Wishlist
	if err := c.do(ctx, http.MethodGet, "/wishlist/", nil, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// ToggleWishlist flips wishlist membership for a product and returns
// the resulting state.
func (c *Client) ToggleWishlist(ctx context.Context, productID string) (*WishlistStatus, error) {
	in := map[string]string{"product_id": productID}
	var status WishlistStatus
	if err := c.do(ctx, http.MethodPost, "/wishlist/toggle/", in, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CheckWishlist reports whether a product is in the wishlist.
func (c *Client) CheckWishlist(ctx context.Context, productID string) (*WishlistStatus, error) {
	var status WishlistStatus
	if err := c.do(ctx, http.MethodGet, "/wishlist/check/"+productID+"/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Orders lists the account's orders.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id+"/", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an order from the current cart.
func (c *Client) CreateOrder(ctx context.Context, in OrderInput) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders/", in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SellerOrders lists orders scoped to the seller's products.
func (c *Client) SellerOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/seller/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SellerProducts lists the seller's own catalog.
func (c *Client) SellerProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/seller/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a product to the seller's catalog.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/seller/products/", in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product in the seller's catalog.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPatch, "/seller/products/"+id+"/", in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product from the seller's catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/seller/products/"+id+"/", nil, nil)
}

// InitiatePayment starts a payment for an order.
func (c *Client) InitiatePayment(ctx context.Context, in PaymentInput) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := c.do(ctx, http.MethodPost, "/payments/initiate/", in, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PaymentStatus polls the payment state for an order.
func (c *Client) PaymentState(ctx context.Context, orderID string) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := c.do(ctx, http.MethodGet, "/payments/"+orderID+"/status/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Dashboard fetches the account activity summary.
func (c *Client) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard/", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
