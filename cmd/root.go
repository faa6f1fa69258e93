// ABOUTME: Root command for the bimarket CLI
// ABOUTME: Handles global flags and shared command bootstrap

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/config"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
	"github.com/GKcoding-prog/BiMarket/internal/logging"
	"github.com/GKcoding-prog/BiMarket/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "bimarket",
	Short: "Terminal client for the BiMarket marketplace",
	Long: `bimarket is a terminal client for the BiMarket marketplace backend.

Browse the catalog, manage your cart and wishlist, place orders, and run
a seller storefront, either from scripts or through the interactive shop.

Environment Variables:
  BIMARKET_API_URL     Backend API URL (default: http://localhost:8000/api)
  BIMARKET_CONFIG_DIR  Credential and log directory (default: XDG config)
  BIMARKET_DEBUG_LOG   Write a debug log next to the credentials (true/false)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides BIMARKET_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// appEnv bundles everything a command needs: config, API client,
// credential store, and the session manager that owns them.
type appEnv struct {
	cfg     *config.Config
	client  *api.Client
	creds   *credstore.Store
	session *session.Manager
	log     zerolog.Logger
	closer  io.Closer
}

// newAppEnv loads configuration and wires the client stack.
func newAppEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	log, closer := logging.Setup(cfg.ConfigDir, cfg.LogLevel, cfg.DebugLog)
	client := api.New(cfg.APIURL, api.WithLogger(log))
	creds := credstore.New(cfg.ConfigDir)

	return &appEnv{
		cfg:     cfg,
		client:  client,
		creds:   creds,
		session: session.NewManager(client, creds, log),
		log:     log,
		closer:  closer,
	}, nil
}

// Close releases the debug log file, if one was opened.
func (e *appEnv) Close() {
	if e.closer != nil {
		e.closer.Close()
	}
}

// restoreSession rebuilds the session from stored credentials and
// refreshes the access token when it is near expiry.
func (e *appEnv) restoreSession(ctx context.Context) {
	e.session.Restore(ctx)
	e.session.EnsureFresh(ctx)
}

// exitCodeFor maps an error to the command exit code: 1 for backend
// application errors, 2 for transport and usage failures.
func exitCodeFor(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return 1
	}
	return 2
}

// printError writes a command error in the shared format.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
