// ABOUTME: Persistent credential store for BiMarket accounts
// ABOUTME: Stores tokens and cached roles as JSON in the config directory

package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Role is the account role as cached client-side. The backend remains
// authoritative; this value only feeds the degraded-session fallback.
type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
)

// Record is the durable credential state for the active account.
type Record struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	AccountEmail string `json:"account_email"`
	CachedRole   Role   `json:"cached_role"`
}

// fileData is the on-disk shape. Roles cached per account email survive
// a Clear so a later login can fall back to them.
type fileData struct {
	Record
	Roles map[string]Role `json:"roles,omitempty"`
}

// Store reads and writes credentials in a single JSON file.
type Store struct {
	configDir string
}

// New creates a store rooted at the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

func (s *Store) credFile() string {
	return filepath.Join(s.configDir, "credentials.json")
}

// Load returns the stored record, or nil when no tokens are present.
// A missing or corrupt file is treated as an empty store.
func (s *Store) Load() (*Record, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	if data.AccessToken == "" {
		return nil, nil
	}
	rec := data.Record
	return &rec, nil
}

// Save writes the record durably, overwriting any prior one. The cached
// role is also indexed by email for later fallback reconstruction.
func (s *Store) Save(rec Record) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Record = rec
	if rec.AccountEmail != "" && rec.CachedRole != "" {
		if data.Roles == nil {
			data.Roles = map[string]Role{}
		}
		data.Roles[rec.AccountEmail] = rec.CachedRole
	}
	return s.write(data)
}

// Clear removes the tokens and active account but keeps the per-email
// role cache. Calling it on an already clear store is a no-op.
func (s *Store) Clear() error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Record = Record{}
	return s.write(data)
}

// CacheRole records a role for an email without touching tokens. Used
// after registration so a later login can recover the chosen role.
func (s *Store) CacheRole(email string, role Role) error {
	if email == "" || role == "" {
		return nil
	}
	data, err := s.read()
	if err != nil {
		return err
	}
	if data.Roles == nil {
		data.Roles = map[string]Role{}
	}
	data.Roles[email] = role
	return s.write(data)
}

// CachedRole returns the cached role for an email, or empty when unknown.
func (s *Store) CachedRole(email string) Role {
	data, err := s.read()
	if err != nil {
		return ""
	}
	return data.Roles[email]
}

func (s *Store) read() (fileData, error) {
	var data fileData
	raw, err := os.ReadFile(s.credFile())
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return data, err
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		// Invalid JSON, start fresh
		return fileData{}, nil
	}
	return data, nil
}

func (s *Store) write(data fileData) error {
	if err := os.MkdirAll(s.configDir, 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.credFile(), raw, 0o600)
}
