// ABOUTME: Checkout wizard as a bubbletea model over huh forms
// ABOUTME: Collects shipping address, payment method, and mobile money phone

package checkout

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// CompleteMsg is sent when the wizard finishes with a valid order.
type CompleteMsg struct {
	Input api.OrderInput
}

// CancelledMsg is sent when the user backs out of checkout.
type CancelledMsg struct{}

// Wizard drives the checkout flow step by step.
type Wizard struct {
	form  *huh.Form
	step  int
	total float64

	address string
	method  string
	phone   string
}

var stepNames = []string{"Shipping", "Payment"}

// New creates a checkout wizard for the given cart total.
func New(total float64) *Wizard {
	w := &Wizard{step: 1, total: total, method: "cash_on_delivery"}
	w.form = w.shippingForm()
	return w
}

func (w *Wizard) shippingForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shipping address").
				Placeholder("12 Rue des Marchés, Douala").
				Value(&w.address).
				Validate(validateRequired("shipping address")),
		).Title("Step 1: Shipping"),
	).WithTheme(huh.ThemeBase())
}

func (w *Wizard) paymentForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payment method").
				Options(
					huh.NewOption("Cash on delivery", "cash_on_delivery"),
					huh.NewOption("Mobile money", "mobile_money"),
					huh.NewOption("Card", "card"),
				).
				Value(&w.method),
			huh.NewInput().
				Title("Mobile money phone").
				Placeholder("670000000").
				Value(&w.phone),
		).Title("Step 2: Payment"),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return w, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.paymentForm()
		return w, w.form.Init()

	case 2:
		// Mobile money needs a phone number; reopen the payment step
		// instead of completing with an unusable order.
		if w.method == "mobile_money" && strings.TrimSpace(w.phone) == "" {
			w.form = w.paymentForm()
			return w, w.form.Init()
		}

		input := api.OrderInput{
			ShippingAddress: w.address,
			PaymentMethod:   w.method,
		}
		if w.method == "mobile_money" {
			input.Phone = w.phone
		}
		return w, func() tea.Msg {
			return CompleteMsg{Input: input}
		}
	}

	return w, nil
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Checkout"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("Order total: %.0f FCFA", w.total)))
	sb.WriteString("\n")
	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())
	sb.WriteString(styles.Help.Render("Esc cancel"))

	return sb.String()
}

func (w *Wizard) renderProgress() string {
	current := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	pending := lipgloss.NewStyle().Foreground(styles.Muted)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		switch {
		case stepNum < w.step:
			steps = append(steps, styles.StatusOK.Render("✓ "+name))
		case stepNum == w.step:
			steps = append(steps, current.Render("● "+name))
		default:
			steps = append(steps, pending.Render("○ "+name))
		}
	}
	return strings.Join(steps, "   ")
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
