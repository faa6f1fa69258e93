// ABOUTME: Logout command for the bimarket CLI
// ABOUTME: Clears stored credentials and invalidates the server session

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogout(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout executes the logout flow and returns an exit code
func runLogout(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	env.session.Restore(ctx)
	if !env.session.Authenticated() {
		fmt.Fprintln(w, "Not logged in.")
		return 0
	}

	// Server call is best-effort; local state is cleared regardless
	env.session.Logout(ctx)
	fmt.Fprintln(w, "Logged out.")
	return 0
}
