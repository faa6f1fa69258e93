// ABOUTME: Tests for the whoami command formatters
// ABOUTME: Covers anonymous, verified, and degraded session output

package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/GKcoding-prog/BiMarket/internal/credstore"
	"github.com/GKcoding-prog/BiMarket/internal/session"
)

func TestFormatWhoamiHuman_Anonymous(t *testing.T) {
	output := formatWhoamiHuman(session.Session{})
	if output != "Not logged in." {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestFormatWhoamiHuman_Verified(t *testing.T) {
	state := session.Session{
		Identity: &session.Identity{ID: "u1", Email: "alice@example.cm", DisplayName: "Alice"},
		Role:     credstore.RoleSeller,
	}

	output := formatWhoamiHuman(state)

	for _, want := range []string{"Alice", "alice@example.cm", "seller"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if bytes.Contains([]byte(output), []byte("degraded")) {
		t.Error("verified session must not be marked degraded")
	}
}

func TestFormatWhoamiHuman_Degraded(t *testing.T) {
	state := session.Session{
		Identity: &session.Identity{ID: "temp", Email: "alice@example.cm", DisplayName: "alice"},
		Role:     credstore.RoleClient,
		Degraded: true,
	}

	output := formatWhoamiHuman(state)
	if !bytes.Contains([]byte(output), []byte("degraded")) {
		t.Error("expected degraded note")
	}
}

func TestFormatWhoamiJSON(t *testing.T) {
	state := session.Session{
		Identity: &session.Identity{ID: "u1", Email: "alice@example.cm", DisplayName: "Alice"},
		Role:     credstore.RoleClient,
		Degraded: true,
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(formatWhoamiJSON(state)), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["authenticated"] != true {
		t.Error("expected authenticated true")
	}
	if parsed["degraded"] != true {
		t.Error("expected degraded flag in JSON output")
	}
	if parsed["role"] != "client" {
		t.Errorf("expected role client, got %v", parsed["role"])
	}
}

func TestFormatWhoamiJSON_Anonymous(t *testing.T) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(formatWhoamiJSON(session.Session{})), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["authenticated"] != false {
		t.Error("expected authenticated false")
	}
	if _, ok := parsed["email"]; ok {
		t.Error("anonymous output must not carry identity fields")
	}
}
