// ABOUTME: Session manager for the BiMarket CLI
// ABOUTME: Owns auth flows, token lifecycle, and session state broadcast

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
)

// refreshWindow is how close to expiry the access token may get before
// a refresh is attempted.
const refreshWindow = 5 * time.Minute

// Identity is the authenticated account as known to this client.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
}

// Session is a snapshot of the current authentication state. Identity
// is nil exactly when nobody is signed in (once Loading is false).
// Degraded marks a synthesized identity: the profile endpoint could not
// be reached and the identity was reconstructed from cached data, so it
// must not back any privileged decision.
type Session struct {
	Identity *Identity
	Role     credstore.Role
	Loading  bool
	Degraded bool
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.Identity != nil
}

// EventKind distinguishes ordinary state changes from the logout reset.
type EventKind int

const (
	// EventUpdated is any session state change short of a reset.
	EventUpdated EventKind = iota
	// EventReset is broadcast on logout so every consumer drops
	// identity-derived state.
	EventReset
)

// Event is delivered to subscribers on session changes.
type Event struct {
	Kind    EventKind
	Session Session
}

// Manager orchestrates auth flows against the backend and owns the
// client's token state. It is constructed once at the application root
// and passed to every consumer; there is no ambient global session.
type Manager struct {
	client *api.Client
	creds  *credstore.Store
	log    zerolog.Logger

	mu          sync.RWMutex
	state       Session
	subscribers []func(Event)
}

// NewManager creates a session manager. The session starts in the
// loading state until Restore runs.
func NewManager(client *api.Client, creds *credstore.Store, log zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		creds:  creds,
		log:    log,
		state:  Session{Loading: true},
	}
}

// Subscribe registers a callback invoked on every session change.
// Callbacks run synchronously on the mutating goroutine.
func (m *Manager) Subscribe(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Authenticated reports whether an identity is present.
func (m *Manager) Authenticated() bool {
	return m.Current().Authenticated()
}

func (m *Manager) setState(state Session, kind EventKind) {
	m.mu.Lock()
	m.state = state
	subs := make([]func(Event), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(Event{Kind: kind, Session: state})
	}
}

// Restore rebuilds the session from stored credentials at startup.
// The profile endpoint is authoritative; when it fails, a degraded
// identity is synthesized from the cached email and role. Restore never
// returns an error: the worst case is an anonymous session.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		state := m.Current()
		if state.Loading {
			state.Loading = false
			m.setState(state, EventUpdated)
		}
	}()

	rec, err := m.creds.Load()
	if err != nil || rec == nil {
		m.setState(Session{}, EventUpdated)
		return
	}

	m.client.SetToken(rec.AccessToken)

	user, err := m.client.Profile(ctx)
	if err == nil {
		m.log.Info().Str("email", user.Email).Msg("session restored from profile")
		m.setState(m.verifiedSession(user), EventUpdated)
		return
	}
	m.log.Warn().Err(err).Msg("profile fetch failed during restore")

	if rec.AccountEmail != "" {
		m.setState(m.degradedSession(rec.AccountEmail), EventUpdated)
		return
	}

	// Nothing cached to fall back on: drop the stale tokens.
	m.creds.Clear()
	m.client.ClearToken()
	m.setState(Session{}, EventUpdated)
}

// Login authenticates with the backend and populates the session.
// On failure the session is left untouched and the error is returned
// for display; callers branch on it rather than on panics.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tokens, err := m.client.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		m.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return err
	}

	m.client.SetToken(tokens.Access)

	role := m.creds.CachedRole(email)
	state := Session{}
	if user, err := m.client.Profile(ctx); err == nil {
		state = m.verifiedSession(user)
		role = state.Role
	} else {
		m.log.Warn().Err(err).Msg("profile fetch failed after login")
		state = m.degradedSession(email)
		role = state.Role
	}

	if err := m.creds.Save(credstore.Record{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		AccountEmail: email,
		CachedRole:   role,
	}); err != nil {
		m.log.Error().Err(err).Msg("persisting credentials")
	}

	m.log.Info().Str("email", email).Str("role", string(role)).Msg("logged in")
	m.setState(state, EventUpdated)
	return nil
}

// Register creates an account with the canonical payload and caches the
// chosen role for later login fallback. It does not log the account in;
// callers follow up with Login.
func (m *Manager) Register(ctx context.Context, in api.RegisterInput) (*api.User, error) {
	user, err := m.client.Register(ctx, in)
	if err != nil {
		m.log.Warn().Err(err).Str("email", in.Email).Msg("registration failed")
		return nil, err
	}

	if err := m.creds.CacheRole(in.Email, credstore.Role(in.Role)); err != nil {
		m.log.Error().Err(err).Msg("caching role")
	}
	m.log.Info().Str("email", in.Email).Str("role", in.Role).Msg("account registered")
	return user, nil
}

// Logout invalidates the session server-side (best-effort), clears
// stored credentials, and broadcasts a reset so no consumer retains the
// previous identity.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		// Result ignored for state purposes
		m.log.Warn().Err(err).Msg("server logout failed")
	}

	if err := m.creds.Clear(); err != nil {
		m.log.Error().Err(err).Msg("clearing credentials")
	}
	m.client.ClearToken()

	m.log.Info().Msg("logged out")
	m.setState(Session{}, EventReset)
}

// NeedsRefresh reports whether the access token expires within the
// refresh window. Tokens without a readable exp claim never refresh.
func (m *Manager) NeedsRefresh() bool {
	token := m.client.Token()
	if token == "" {
		return false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) <= refreshWindow
}

// Refresh exchanges the stored refresh token for a new token pair.
func (m *Manager) Refresh(ctx context.Context) error {
	rec, err := m.creds.Load()
	if err != nil || rec == nil || rec.RefreshToken == "" {
		return api.ErrNotAuthenticated
	}

	tokens, err := m.client.RefreshToken(ctx, rec.RefreshToken)
	if err != nil {
		return err
	}

	m.client.SetToken(tokens.Access)
	rec.AccessToken = tokens.Access
	if tokens.Refresh != "" {
		rec.RefreshToken = tokens.Refresh
	}
	if err := m.creds.Save(*rec); err != nil {
		m.log.Error().Err(err).Msg("persisting refreshed tokens")
	}
	m.log.Debug().Msg("access token refreshed")
	return nil
}

// EnsureFresh refreshes the access token when it is close to expiry.
// Failures are swallowed: the pending request will surface the real
// authorization error if the token has actually lapsed.
func (m *Manager) EnsureFresh(ctx context.Context) {
	if !m.Authenticated() || !m.NeedsRefresh() {
		return
	}
	if err := m.Refresh(ctx); err != nil {
		m.log.Warn().Err(err).Msg("token refresh failed")
	}
}

func (m *Manager) verifiedSession(user *api.User) Session {
	return Session{
		Identity: &Identity{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.FullName,
		},
		Role: credstore.Role(user.Role),
	}
}

// degradedSession synthesizes a placeholder identity from the cached
// email and role. The display name is the email's local part, the role
// defaults to client when nothing was cached.
func (m *Manager) degradedSession(email string) Session {
	role := m.creds.CachedRole(email)
	if role == "" {
		role = credstore.RoleClient
	}
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	return Session{
		Identity: &Identity{
			ID:          "temp",
			Email:       email,
			DisplayName: local,
		},
		Role:     role,
		Degraded: true,
	}
}
