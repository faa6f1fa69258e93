// ABOUTME: Main navigation menu for the storefront TUI
// ABOUTME: Offers browse, cart, wishlist, orders, auth and seller entries

package menu

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/credstore"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// Item identifies a navigation destination.
type Item int

const (
	ItemBrowse Item = iota
	ItemCart
	ItemWishlist
	ItemOrders
	ItemSellerDash
	ItemLogin
	ItemRegister
	ItemLogout
	ItemQuit
)

// SelectedMsg is sent when the user confirms a menu item.
type SelectedMsg struct {
	Item Item
}

type entry struct {
	label string
	value Item
}

// Menu is the navigation menu component.
type Menu struct {
	entries []entry
	cursor  int

	authenticated bool
	role          credstore.Role
	cartCount     int
}

// New creates a menu for an anonymous visitor.
func New() *Menu {
	m := &Menu{}
	m.rebuild()
	return m
}

// SetSession updates the entries offered by the menu. The seller
// dashboard entry only appears for an authenticated seller.
func (m *Menu) SetSession(authenticated bool, role credstore.Role) {
	m.authenticated = authenticated
	m.role = role
	m.rebuild()
}

// SetCartCount updates the badge shown next to the cart entry.
func (m *Menu) SetCartCount(n int) {
	m.cartCount = n
}

func (m *Menu) rebuild() {
	m.entries = []entry{
		{label: "Browse products", value: ItemBrowse},
		{label: "Cart", value: ItemCart},
		{label: "Wishlist", value: ItemWishlist},
	}
	if m.authenticated {
		m.entries = append(m.entries, entry{label: "My orders", value: ItemOrders})
		if m.role == credstore.RoleSeller {
			m.entries = append(m.entries, entry{label: "Seller dashboard", value: ItemSellerDash})
		}
		m.entries = append(m.entries, entry{label: "Log out", value: ItemLogout})
	} else {
		m.entries = append(m.entries,
			entry{label: "Log in", value: ItemLogin},
			entry{label: "Register", value: ItemRegister},
		)
	}
	m.entries = append(m.entries, entry{label: "Quit", value: ItemQuit})

	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		item := m.entries[m.cursor].value
		return m, func() tea.Msg { return SelectedMsg{Item: item} }
	case "q":
		return m, func() tea.Msg { return SelectedMsg{Item: ItemQuit} }
	}

	return m, nil
}

// Selected returns the item the cursor is on.
func (m *Menu) Selected() Item {
	return m.entries[m.cursor].value
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("BiMarket"))
	sb.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(styles.Text)

	for i, e := range m.entries {
		label := e.label
		if e.value == ItemCart && m.cartCount > 0 {
			label += " " + styles.Badge.Render(strconv.Itoa(m.cartCount))
		}
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + label))
		} else {
			sb.WriteString(normalStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("↑↓ navigate  Enter select  q quit"))
	return sb.String()
}
