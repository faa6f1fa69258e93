// ABOUTME: Tests for the persistent credential store
// ABOUTME: Covers round-trip, clear idempotence, and role cache survival

package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(t.TempDir())

	rec := Record{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		AccountEmail: "a@b.com",
		CachedRole:   RoleSeller,
	}
	require.NoError(t, s.Save(rec))

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestLoad_EmptyStore(t *testing.T) {
	s := New(t.TempDir())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{not json"), 0o600))

	s := New(dir)
	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClear_Idempotent(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Save(Record{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		AccountEmail: "a@b.com",
		CachedRole:   RoleClient,
	}))

	require.NoError(t, s.Clear())
	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second clear leaves the store in the same state
	require.NoError(t, s.Clear())
	got, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClear_KeepsRoleCache(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Save(Record{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		AccountEmail: "seller@b.com",
		CachedRole:   RoleSeller,
	}))

	require.NoError(t, s.Clear())

	assert.Equal(t, RoleSeller, s.CachedRole("seller@b.com"))
}

func TestCacheRole_WithoutTokens(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.CacheRole("new@b.com", RoleClient))

	assert.Equal(t, RoleClient, s.CachedRole("new@b.com"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "caching a role must not create tokens")
}

func TestCachedRole_Unknown(t *testing.T) {
	s := New(t.TempDir())
	assert.Equal(t, Role(""), s.CachedRole("nobody@b.com"))
}

func TestSave_OverwritesPriorRecord(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Save(Record{AccessToken: "old", RefreshToken: "old-r", AccountEmail: "a@b.com", CachedRole: RoleClient}))
	require.NoError(t, s.Save(Record{AccessToken: "new", RefreshToken: "new-r", AccountEmail: "c@d.com", CachedRole: RoleSeller}))

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.AccessToken)
	assert.Equal(t, "c@d.com", got.AccountEmail)

	// Both accounts keep their cached roles
	assert.Equal(t, RoleClient, s.CachedRole("a@b.com"))
	assert.Equal(t, RoleSeller, s.CachedRole("c@d.com"))
}
