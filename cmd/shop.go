// ABOUTME: Shop command launching the interactive storefront TUI
// ABOUTME: Restores the session, then hands control to the bubbletea app

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/intent"
	"github.com/GKcoding-prog/BiMarket/internal/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Open the interactive storefront",
	Long: `Launch the full-screen storefront: browse products, manage your cart
and wishlist, and check out, all without leaving the terminal.

Works without an account; you are asked to log in the first time an
action needs one, and anything you tried before logging in is picked up
afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runShop(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

// runShop bootstraps the environment and runs the TUI until it exits.
func runShop(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	env.restoreSession(ctx)

	if err := tui.Run(env.client, env.session, intent.New(), env.log); err != nil {
		printError(w, err)
		return 2
	}
	return 0
}
