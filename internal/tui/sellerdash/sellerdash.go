// ABOUTME: Seller dashboard screen with summary panel and product listing
// ABOUTME: Read-only view; product management happens via the CLI commands

package sellerdash

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// BackMsg is sent when the user leaves the dashboard.
type BackMsg struct{}

// RefreshMsg asks the app to reload seller data.
type RefreshMsg struct{}

// Dashboard is the seller overview component.
type Dashboard struct {
	summary  *api.DashboardSummary
	products []api.Product
	orders   []api.Order
	width    int
}

// New creates an empty dashboard; data arrives via the setters.
func New() *Dashboard {
	return &Dashboard{}
}

// SetSummary sets the aggregate figures panel.
func (d *Dashboard) SetSummary(s *api.DashboardSummary) {
	d.summary = s
}

// SetProducts sets the seller's product listing.
func (d *Dashboard) SetProducts(products []api.Product) {
	d.products = products
}

// SetOrders sets the incoming orders listing.
func (d *Dashboard) SetOrders(orders []api.Order) {
	d.orders = orders
}

// SetSize adjusts the dashboard width.
func (d *Dashboard) SetSize(width, _ int) {
	d.width = width
}

// Init implements tea.Model
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "r":
		return d, func() tea.Msg { return RefreshMsg{} }
	case "esc", "b":
		return d, func() tea.Msg { return BackMsg{} }
	}

	return d, nil
}

// View implements tea.Model
func (d *Dashboard) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Seller dashboard"))
	sb.WriteString("\n")

	if d.summary != nil {
		summary := fmt.Sprintf("Products: %d   Orders: %d   Revenue: %s",
			d.summary.ProductCount,
			d.summary.OrderCount,
			styles.Price.Render(fmt.Sprintf("%.0f FCFA", d.summary.Revenue)),
		)
		sb.WriteString(styles.Panel.Render(summary))
		sb.WriteString("\n")
	}

	sb.WriteString(d.renderProducts())
	sb.WriteString("\n")
	sb.WriteString(d.renderOrders())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("r refresh  b back"))
	return sb.String()
}

func (d *Dashboard) renderProducts() string {
	var sb strings.Builder
	header := lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	sb.WriteString(header.Render("Your products"))
	sb.WriteString("\n")

	if len(d.products) == 0 {
		sb.WriteString(styles.Subtitle.Render("No products listed. Use 'bimarket seller add' to create one."))
		return sb.String()
	}

	for _, p := range d.products {
		stock := fmt.Sprintf("%d in stock", p.Stock)
		if p.Stock == 0 {
			stock = styles.StatusError.Render("out of stock")
		}
		sb.WriteString(fmt.Sprintf("  %-32s %-14s %s\n",
			p.Name,
			styles.Price.Render(fmt.Sprintf("%.0f FCFA", p.Price)),
			stock,
		))
	}
	return sb.String()
}

func (d *Dashboard) renderOrders() string {
	var sb strings.Builder
	header := lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	sb.WriteString(header.Render("Incoming orders"))
	sb.WriteString("\n")

	if len(d.orders) == 0 {
		sb.WriteString(styles.Subtitle.Render("No orders yet."))
		return sb.String()
	}

	for _, o := range d.orders {
		sb.WriteString(fmt.Sprintf("  %-12s %-12s %s\n",
			o.ID,
			o.Status,
			styles.Price.Render(fmt.Sprintf("%.0f FCFA", o.TotalAmount)),
		))
	}
	return sb.String()
}
