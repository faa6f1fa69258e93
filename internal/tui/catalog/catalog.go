// ABOUTME: Product catalog screen backed by a bubbles table
// ABOUTME: Emits add-to-cart and wishlist-toggle messages for selected rows

package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// AddToCartMsg is sent when the user asks to add the selected product.
type AddToCartMsg struct {
	Product api.Product
}

// ToggleWishlistMsg is sent when the user flips the wishlist marker.
type ToggleWishlistMsg struct {
	Product api.Product
}

// BackMsg is sent when the user leaves the catalog.
type BackMsg struct{}

// FilterChangedMsg is sent when the category filter cycles. An empty
// CategoryID means no filter.
type FilterChangedMsg struct {
	CategoryID string
}

// Catalog is the product browsing component.
type Catalog struct {
	table      table.Model
	products   []api.Product
	wishlist   map[string]bool
	categories []api.Category
	catIdx     int // 0 means all categories
	width      int
	height     int
}

// New creates an empty catalog. Products arrive later via SetProducts.
func New() *Catalog {
	cols := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Product", Width: 32},
		{Title: "Category", Width: 16},
		{Title: "Price", Width: 12},
		{Title: "Stock", Width: 6},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(true)
	t.SetStyles(s)

	return &Catalog{table: t, wishlist: map[string]bool{}}
}

// SetProducts replaces the catalog contents, keeping the cursor in range.
func (c *Catalog) SetProducts(products []api.Product) {
	c.products = products
	c.refreshRows()
}

// SetWishlist replaces the wishlist membership markers.
func (c *Catalog) SetWishlist(productIDs []string) {
	c.wishlist = make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		c.wishlist[id] = true
	}
	c.refreshRows()
}

// SetCategories sets the filter choices offered by the "c" key.
func (c *Catalog) SetCategories(categories []api.Category) {
	c.categories = categories
	if c.catIdx > len(categories) {
		c.catIdx = 0
	}
}

// ActiveCategory returns the id of the active filter, "" for all.
func (c *Catalog) ActiveCategory() string {
	if c.catIdx == 0 || c.catIdx > len(c.categories) {
		return ""
	}
	return c.categories[c.catIdx-1].ID
}

// MarkWishlist updates a single product's marker, e.g. after a toggle
// round-trips through the backend.
func (c *Catalog) MarkWishlist(productID string, in bool) {
	if in {
		c.wishlist[productID] = true
	} else {
		delete(c.wishlist, productID)
	}
	c.refreshRows()
}

// InWishlist reports the marker state for a product.
func (c *Catalog) InWishlist(productID string) bool {
	return c.wishlist[productID]
}

func (c *Catalog) refreshRows() {
	rows := make([]table.Row, 0, len(c.products))
	for _, p := range c.products {
		marker := " "
		if c.wishlist[p.ID] {
			marker = "♥"
		}
		rows = append(rows, table.Row{
			marker,
			p.Name,
			p.Category.Name,
			fmt.Sprintf("%.0f FCFA", p.Price),
			fmt.Sprintf("%d", p.Stock),
		})
	}
	c.table.SetRows(rows)
	if cursor := c.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		c.table.SetCursor(len(rows) - 1)
	}
}

// SetSize adjusts the table to the available area.
func (c *Catalog) SetSize(width, height int) {
	c.width = width
	c.height = height
	if height > 4 {
		c.table.SetHeight(height - 4)
	}
}

// Selected returns the product under the cursor, or nil when empty.
func (c *Catalog) Selected() *api.Product {
	if len(c.products) == 0 {
		return nil
	}
	cursor := c.table.Cursor()
	if cursor < 0 || cursor >= len(c.products) {
		return nil
	}
	return &c.products[cursor]
}

// Init implements tea.Model
func (c *Catalog) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "a", "enter":
			if p := c.Selected(); p != nil {
				product := *p
				return c, func() tea.Msg { return AddToCartMsg{Product: product} }
			}
			return c, nil
		case "f":
			if p := c.Selected(); p != nil {
				product := *p
				return c, func() tea.Msg { return ToggleWishlistMsg{Product: product} }
			}
			return c, nil
		case "c":
			if len(c.categories) > 0 {
				c.catIdx = (c.catIdx + 1) % (len(c.categories) + 1)
				id := c.ActiveCategory()
				return c, func() tea.Msg { return FilterChangedMsg{CategoryID: id} }
			}
			return c, nil
		case "esc", "b":
			return c, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return c, cmd
}

// View implements tea.Model
func (c *Catalog) View() string {
	var sb strings.Builder
	title := "Products"
	if c.catIdx > 0 && c.catIdx <= len(c.categories) {
		title += ": " + c.categories[c.catIdx-1].Name
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")

	if len(c.products) == 0 {
		sb.WriteString(styles.Subtitle.Render("No products available."))
	} else {
		sb.WriteString(c.table.View())
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a add to cart  f wishlist  c category  b back"))
	return sb.String()
}
