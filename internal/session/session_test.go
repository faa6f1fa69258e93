// ABOUTME: Tests for the session manager auth flows
// ABOUTME: Uses httptest backends to drive login, restore, and logout

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
)

// fakeBackend is a minimal marketplace auth backend for tests.
type fakeBackend struct {
	profileFails bool
	loginFails   bool
	profile      api.User
	logoutCalls  int
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		if f.loginFails {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(api.TokenPair{Access: "tok1", Refresh: "ref1"})
	})
	mux.HandleFunc("/auth/me/", func(w http.ResponseWriter, r *http.Request) {
		if f.profileFails {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		require.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(f.profile)
	})
	mux.HandleFunc("/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		f.logoutCalls++
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		var in api.RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.User{ID: "9", Email: in.Email, FullName: in.FullName, Role: in.Role})
	})
	return mux
}

func newManager(t *testing.T, backend *fakeBackend) (*Manager, *api.Client, *credstore.Store) {
	t.Helper()
	server := httptest.NewServer(backend.handler(t))
	t.Cleanup(server.Close)

	client := api.New(server.URL)
	creds := credstore.New(t.TempDir())
	return NewManager(client, creds, zerolog.Nop()), client, creds
}

func TestLogin_PopulatesVerifiedSession(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "client"},
	}
	m, client, creds := newManager(t, backend)

	require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))

	state := m.Current()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "1", state.Identity.ID)
	assert.Equal(t, "a@b.com", state.Identity.Email)
	assert.Equal(t, "A B", state.Identity.DisplayName)
	assert.Equal(t, credstore.RoleClient, state.Role)
	assert.False(t, state.Loading)
	assert.False(t, state.Degraded)

	assert.Equal(t, "tok1", client.Token())

	rec, err := creds.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tok1", rec.AccessToken)
	assert.Equal(t, "ref1", rec.RefreshToken)
	assert.Equal(t, "a@b.com", rec.AccountEmail)
}

func TestLogin_ProfileFailure_SynthesizesDegradedSession(t *testing.T) {
	backend := &fakeBackend{profileFails: true}
	m, _, _ := newManager(t, backend)

	require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))

	state := m.Current()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "temp", state.Identity.ID)
	assert.Equal(t, "a", state.Identity.DisplayName, "display name is the email local part")
	assert.Equal(t, credstore.RoleClient, state.Role, "role defaults to client with no cache")
	assert.True(t, state.Degraded)
}

func TestLogin_ProfileFailure_UsesCachedRole(t *testing.T) {
	backend := &fakeBackend{profileFails: true}
	m, _, creds := newManager(t, backend)
	require.NoError(t, creds.CacheRole("s@b.com", credstore.RoleSeller))

	require.NoError(t, m.Login(context.Background(), "s@b.com", "secret1"))

	state := m.Current()
	assert.Equal(t, credstore.RoleSeller, state.Role)
	assert.True(t, state.Degraded)
}

func TestLogin_Failure_LeavesSessionUntouched(t *testing.T) {
	backend := &fakeBackend{loginFails: true}
	m, client, creds := newManager(t, backend)

	err := m.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	state := m.Current()
	assert.Nil(t, state.Identity)
	assert.True(t, state.Loading, "loading is not altered by a failed login")
	assert.Empty(t, client.Token())

	rec, loadErr := creds.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, rec)
}

func TestRestore_FromStoredCredentials(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "seller"},
	}
	m, _, creds := newManager(t, backend)
	require.NoError(t, creds.Save(credstore.Record{
		AccessToken: "tok1", RefreshToken: "ref1", AccountEmail: "a@b.com", CachedRole: credstore.RoleSeller,
	}))

	m.Restore(context.Background())

	state := m.Current()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "1", state.Identity.ID)
	assert.Equal(t, credstore.RoleSeller, state.Role)
	assert.False(t, state.Loading)
	assert.False(t, state.Degraded)
}

func TestRestore_NoCredentials(t *testing.T) {
	m, _, _ := newManager(t, &fakeBackend{})

	m.Restore(context.Background())

	state := m.Current()
	assert.Nil(t, state.Identity)
	assert.False(t, state.Loading)
}

func TestRestore_ProfileFailure_FallsBackToCache(t *testing.T) {
	backend := &fakeBackend{profileFails: true}
	m, _, creds := newManager(t, backend)
	require.NoError(t, creds.Save(credstore.Record{
		AccessToken: "tok1", RefreshToken: "ref1", AccountEmail: "s@b.com", CachedRole: credstore.RoleSeller,
	}))

	m.Restore(context.Background())

	state := m.Current()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "temp", state.Identity.ID)
	assert.Equal(t, "s", state.Identity.DisplayName)
	assert.Equal(t, credstore.RoleSeller, state.Role)
	assert.True(t, state.Degraded)
	assert.False(t, state.Loading)
}

func TestRestore_ProfileFailure_NoCachedEmail_ClearsCredentials(t *testing.T) {
	backend := &fakeBackend{profileFails: true}
	m, client, creds := newManager(t, backend)
	// A record with tokens but no account email cannot be reconstructed
	require.NoError(t, creds.Save(credstore.Record{AccessToken: "tok1", RefreshToken: "ref1"}))

	m.Restore(context.Background())

	state := m.Current()
	assert.Nil(t, state.Identity)
	assert.False(t, state.Loading)
	assert.Empty(t, client.Token())

	rec, err := creds.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLogout_ClearsEverythingAndBroadcastsReset(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "client"},
	}
	m, client, creds := newManager(t, backend)
	require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))
	require.True(t, m.Authenticated())

	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })

	m.Logout(context.Background())

	assert.Equal(t, 1, backend.logoutCalls)
	assert.Empty(t, client.Token())

	state := m.Current()
	assert.Nil(t, state.Identity)
	assert.Equal(t, credstore.Role(""), state.Role)

	rec, err := creds.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.Len(t, events, 1)
	assert.Equal(t, EventReset, events[0].Kind)
	assert.Nil(t, events[0].Session.Identity)
}

func TestLogout_ServerFailureStillResets(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "client"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/logout/" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		backend.handler(t).ServeHTTP(w, r)
	}))
	defer server.Close()

	client := api.New(server.URL)
	creds := credstore.New(t.TempDir())
	m := NewManager(client, creds, zerolog.Nop())
	require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))

	m.Logout(context.Background())

	assert.False(t, m.Authenticated())
	rec, err := creds.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

// Identity is absent exactly when the store holds no access token, for
// any login/logout sequence, outside the startup-restore window.
func TestSessionStoreInvariant_LoginLogoutSequences(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "client"},
	}
	m, _, creds := newManager(t, backend)

	check := func() {
		t.Helper()
		state := m.Current()
		if state.Loading {
			return
		}
		rec, err := creds.Load()
		require.NoError(t, err)
		assert.Equal(t, rec != nil, state.Identity != nil)
	}

	m.Restore(context.Background())
	check()
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))
		check()
		m.Logout(context.Background())
		check()
	}
}

func TestRegister_CachesRoleWithoutLogin(t *testing.T) {
	m, client, creds := newManager(t, &fakeBackend{})

	user, err := m.Register(context.Background(), api.RegisterInput{
		Email:    "new@b.com",
		Password: "secret1",
		FullName: "New Seller",
		Role:     "seller",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", user.Email)

	// Registration must not sign the account in
	assert.False(t, m.Current().Authenticated() && !m.Current().Loading)
	assert.Empty(t, client.Token())
	assert.Equal(t, credstore.RoleSeller, creds.CachedRole("new@b.com"))
}

func TestSubscribe_ReceivesUpdates(t *testing.T) {
	backend := &fakeBackend{
		profile: api.User{ID: "1", Email: "a@b.com", FullName: "A B", Role: "client"},
	}
	m, _, _ := newManager(t, backend)

	var kinds []EventKind
	m.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	require.NoError(t, m.Login(context.Background(), "a@b.com", "secret1"))
	m.Logout(context.Background())

	require.Len(t, kinds, 2)
	assert.Equal(t, EventUpdated, kinds[0])
	assert.Equal(t, EventReset, kinds[1])
}
