// ABOUTME: Cart screen showing server cart lines with quantity controls
// ABOUTME: Emits quantity change, removal, and checkout messages

package cartview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// ChangeQuantityMsg asks for a cart line's quantity to be set.
type ChangeQuantityMsg struct {
	ItemID   string
	Quantity int
}

// RemoveItemMsg asks for a cart line to be removed.
type RemoveItemMsg struct {
	ItemID string
}

// CheckoutMsg is sent when the user starts checkout.
type CheckoutMsg struct{}

// BackMsg is sent when the user leaves the cart.
type BackMsg struct{}

// View is the cart screen component.
type View struct {
	cart   api.Cart
	cursor int
	width  int
}

// New creates a cart view with no contents.
func New() *View {
	return &View{}
}

// SetCart replaces the displayed snapshot, keeping the cursor in range.
func (v *View) SetCart(cart api.Cart) {
	v.cart = cart
	if v.cursor >= len(cart.Items) {
		v.cursor = len(cart.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Cart returns the displayed snapshot.
func (v *View) Cart() api.Cart {
	return v.cart
}

// SetSize adjusts the view width.
func (v *View) SetSize(width, _ int) {
	v.width = width
}

func (v *View) selected() *api.CartItem {
	if len(v.cart.Items) == 0 {
		return nil
	}
	return &v.cart.Items[v.cursor]
}

// Init implements tea.Model
func (v *View) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.cart.Items)-1 {
			v.cursor++
		}
	case "+", "=":
		if item := v.selected(); item != nil {
			id, qty := item.ID, item.Quantity+1
			return v, func() tea.Msg { return ChangeQuantityMsg{ItemID: id, Quantity: qty} }
		}
	case "-":
		if item := v.selected(); item != nil {
			if item.Quantity <= 1 {
				id := item.ID
				return v, func() tea.Msg { return RemoveItemMsg{ItemID: id} }
			}
			id, qty := item.ID, item.Quantity-1
			return v, func() tea.Msg { return ChangeQuantityMsg{ItemID: id, Quantity: qty} }
		}
	case "x", "delete":
		if item := v.selected(); item != nil {
			id := item.ID
			return v, func() tea.Msg { return RemoveItemMsg{ItemID: id} }
		}
	case "o", "enter":
		if len(v.cart.Items) > 0 {
			return v, func() tea.Msg { return CheckoutMsg{} }
		}
	case "esc", "b":
		return v, func() tea.Msg { return BackMsg{} }
	}

	return v, nil
}

// View implements tea.Model
func (v *View) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Cart"))
	sb.WriteString("\n")

	if len(v.cart.Items) == 0 {
		sb.WriteString(styles.Subtitle.Render("Your cart is empty."))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("b back"))
		return sb.String()
	}

	selectedStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(styles.Text)

	for i, item := range v.cart.Items {
		line := fmt.Sprintf("%-32s x%-3d %s",
			item.Product.Name,
			item.Quantity,
			styles.Price.Render(fmt.Sprintf("%.0f FCFA", item.Subtotal)),
		)
		if i == v.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %s", styles.Price.Render(fmt.Sprintf("%.0f FCFA", v.cart.Total))))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("+/- quantity  x remove  o checkout  b back"))
	return sb.String()
}
