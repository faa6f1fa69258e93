// ABOUTME: Transient notification banner for the storefront TUI
// ABOUTME: Shows success and error messages that expire after a short delay

package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GKcoding-prog/BiMarket/internal/tui/styles"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Kind classifies a notification for styling.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// ExpiredMsg is sent when a notification times out.
type ExpiredMsg struct {
	ID int
}

// Model holds the currently visible notification, if any.
type Model struct {
	text    string
	kind    Kind
	visible bool
	ttl     time.Duration

	// id distinguishes the active notification from stale expiry
	// timers of ones it replaced.
	id int
}

// New creates a notification model with the default TTL.
func New() *Model {
	return &Model{ttl: DefaultTTL}
}

// Show replaces the current notification and returns the expiry command.
func (m *Model) Show(text string, kind Kind) tea.Cmd {
	m.text = text
	m.kind = kind
	m.visible = true
	m.id++

	id := m.id
	return tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Update handles expiry messages. Expiry for a replaced notification
// is ignored so a newer message keeps its full TTL.
func (m *Model) Update(msg tea.Msg) {
	if exp, ok := msg.(ExpiredMsg); ok && exp.ID == m.id {
		m.visible = false
	}
}

// Visible reports whether a notification is currently shown.
func (m *Model) Visible() bool {
	return m.visible
}

// Text returns the current notification text, or "" when hidden.
func (m *Model) Text() string {
	if !m.visible {
		return ""
	}
	return m.text
}

// View renders the notification banner, or "" when hidden.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	var style lipgloss.Style
	switch m.kind {
	case KindSuccess:
		style = styles.StatusOK
	case KindError:
		style = styles.StatusError
	default:
		style = lipgloss.NewStyle().Foreground(styles.Info)
	}

	return style.Render(m.text)
}
