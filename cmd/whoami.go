// ABOUTME: Whoami command for the bimarket CLI
// ABOUTME: Shows the current session identity and its verification state

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the restored session and returns an exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	env.restoreSession(ctx)
	state := env.session.Current()

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(state))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(state))
	}

	if !state.Authenticated() {
		return 1
	}
	return 0
}

// formatWhoamiHuman formats the session for human readability
func formatWhoamiHuman(state session.Session) string {
	if !state.Authenticated() {
		return "Not logged in."
	}
	out := fmt.Sprintf(`Name:   %s
Email:  %s
Role:   %s`, state.Identity.DisplayName, state.Identity.Email, state.Role)
	if state.Degraded {
		out += "\nNote:   degraded session (profile not verified)"
	}
	return out
}

// formatWhoamiJSON formats the session as JSON
func formatWhoamiJSON(state session.Session) string {
	output := map[string]interface{}{
		"authenticated": state.Authenticated(),
	}
	if state.Authenticated() {
		output["id"] = state.Identity.ID
		output["email"] = state.Identity.Email
		output["name"] = state.Identity.DisplayName
		output["role"] = string(state.Role)
		output["degraded"] = state.Degraded
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
