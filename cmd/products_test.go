// ABOUTME: Tests for the catalog browsing commands
// ABOUTME: Verifies formatting, exit codes, and backend error handling

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GKcoding-prog/BiMarket/internal/api"
)

func setupCmdTest(t *testing.T, serverURL string) {
	t.Helper()
	t.Setenv("BIMARKET_CONFIG_DIR", t.TempDir())
	apiURL = serverURL
	t.Cleanup(func() { apiURL = "" })
}

func TestFormatProductsHuman(t *testing.T) {
	products := []api.Product{
		{ID: "p1", Name: "Wireless Mouse", Price: 15000, Stock: 4, Category: api.Category{Name: "Electronics"}},
		{ID: "p2", Name: "A very long product name that should be cut somewhere", Price: 9500, Stock: 0, Category: api.Category{Name: "Home"}},
	}

	output := formatProductsHuman(products)

	if !bytes.Contains([]byte(output), []byte("Wireless Mouse")) {
		t.Error("expected product name in output")
	}
	if !bytes.Contains([]byte(output), []byte("Electronics")) {
		t.Error("expected category in output")
	}
	if !bytes.Contains([]byte(output), []byte("…")) {
		t.Error("expected long name to be truncated")
	}
}

func TestFormatProductsHuman_Empty(t *testing.T) {
	output := formatProductsHuman(nil)
	if output != "No products found." {
		t.Errorf("unexpected empty output: %q", output)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("expected truncated string, got %q", got)
	}
}

func TestProductsCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode([]api.Product{
			{ID: "p1", Name: "Wireless Mouse", Price: 15000, Stock: 4, Category: api.Category{Name: "Electronics"}},
		})
	}))
	defer server.Close()
	setupCmdTest(t, server.URL)

	var buf bytes.Buffer
	exitCode := runProducts(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Wireless Mouse")) {
		t.Error("expected product name in output")
	}
}

func TestProductsCommand_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "database unavailable"})
	}))
	defer server.Close()
	setupCmdTest(t, server.URL)

	var buf bytes.Buffer
	exitCode := runProducts(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1 for backend error, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("database unavailable")) {
		t.Error("expected backend message in output")
	}
}

func TestProductsCommand_ConnectionError(t *testing.T) {
	setupCmdTest(t, "http://127.0.0.1:1")

	var buf bytes.Buffer
	exitCode := runProducts(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("cannot reach server")) {
		t.Error("expected transport error message")
	}
}

func TestProductCommand_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "product not found"})
	}))
	defer server.Close()
	setupCmdTest(t, server.URL)

	var buf bytes.Buffer
	exitCode := runProduct(context.Background(), &buf, "missing")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}
