// ABOUTME: Login and registration forms as bubbletea models
// ABOUTME: Wraps huh forms and emits submit or cancel messages

package authform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// Mode selects which form is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// LoginSubmittedMsg is sent when the login form completes.
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// RegisterSubmittedMsg is sent when the registration form completes.
type RegisterSubmittedMsg struct {
	Input api.RegisterInput
}

// CancelledMsg is sent when the user backs out of the form.
type CancelledMsg struct{}

// Form is the auth screen component.
type Form struct {
	mode Mode
	form *huh.Form
	note string

	email    string
	password string
	name     string
	phone    string
	role     string
}

// New creates an auth form in the given mode.
func New(mode Mode) *Form {
	f := &Form{mode: mode, role: string(credstore.RoleClient)}
	switch mode {
	case ModeRegister:
		f.form = f.registerForm()
	default:
		f.form = f.loginForm()
	}
	return f
}

// SetNote sets a line shown above the form, e.g. "Log in to add items
// to your cart".
func (f *Form) SetNote(note string) {
	f.note = note
}

func (f *Form) loginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&f.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
		).Title("Log in"),
	).WithTheme(huh.ThemeBase())
}

func (f *Form) registerForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&f.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
			huh.NewInput().
				Title("Full name").
				Value(&f.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Phone").
				Placeholder("optional").
				Value(&f.phone),
			huh.NewSelect[string]().
				Title("Account type").
				Options(
					huh.NewOption("Buyer", string(credstore.RoleClient)),
					huh.NewOption("Seller", string(credstore.RoleSeller)),
				).
				Value(&f.role),
		).Title("Create account"),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f, f.submit()
	}

	return f, cmd
}

func (f *Form) submit() tea.Cmd {
	if f.mode == ModeLogin {
		email, password := f.email, f.password
		return func() tea.Msg {
			return LoginSubmittedMsg{Email: email, Password: password}
		}
	}

	input := api.RegisterInput{
		Email:    f.email,
		Password: f.password,
		FullName: f.name,
		Phone:    f.phone,
		Role:     f.role,
	}
	return func() tea.Msg {
		return RegisterSubmittedMsg{Input: input}
	}
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder
	if f.note != "" {
		sb.WriteString(styles.Subtitle.Render(f.note))
		sb.WriteString("\n")
	}
	sb.WriteString(f.form.View())
	sb.WriteString(styles.Help.Render("Esc cancel"))
	return sb.String()
}

func validateEmail(s string) error {
	if !strings.Contains(s, "@") {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
