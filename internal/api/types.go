// ABOUTME: Request and response types for the BiMarket backend API
// ABOUTME: Mirrors the JSON shapes served by the remote marketplace service

package api

// TokenPair is returned by login and token refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// User is the authenticated account profile.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginInput is the canonical login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the canonical registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// Category groups products in the catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Stock       int      `json:"stock"`
}

// ProductInput is the seller-side payload for creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
}

// CartItem is one line of the cart snapshot.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Cart is the authoritative server-side cart snapshot.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// Count returns the number of units across all cart lines.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// WishlistStatus reports membership of a single product.
type WishlistStatus struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

// Wishlist is the full wishlist snapshot.
type Wishlist struct {
	Products []Product `json:"products"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a placed order as reported by the backend.
type Order struct {
	ID          string      `json:"id"`
	CreatedAt   string      `json:"created_at"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderInput is the checkout payload.
type OrderInput struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
	Phone           string `json:"phone,omitempty"`
}

// PaymentInput initiates a payment for an order.
type PaymentInput struct {
	OrderID string `json:"order_id"`
	Method  string `json:"method"`
	Phone   string `json:"phone,omitempty"`
}

// PaymentStatus is the state of a payment as reported by the backend.
type PaymentStatus struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DashboardSummary aggregates account activity for the dashboard screens.
type DashboardSummary struct {
	OrderCount    int     `json:"order_count"`
	WishlistCount int     `json:"wishlist_count"`
	TotalSpent    float64 `json:"total_spent"`
	// Seller-only fields; zero for client accounts.
	ProductCount int     `json:"product_count,omitempty"`
	Revenue      float64 `json:"revenue,omitempty"`
}
