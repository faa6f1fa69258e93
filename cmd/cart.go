// ABOUTME: Cart commands for the bimarket CLI
// ABOUTME: Shows and mutates the server-side cart with refetch-after-mutate

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
)

var (
	cartAddQuantity    int
	cartUpdateQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
	Long:  `View and modify your BiMarket cart. All subcommands require a session.`,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current cart",
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(runCartShow)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runCartAdd(ctx, w, env, args[0], cartAddQuantity)
		})
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Change the quantity of a cart line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runCartUpdate(ctx, w, env, args[0], cartUpdateQuantity)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runCartRemove(ctx, w, env, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartAddCmd.Flags().IntVar(&cartAddQuantity, "quantity", 1, "Quantity to add")
	cartUpdateCmd.Flags().IntVar(&cartUpdateQuantity, "quantity", 1, "New quantity")
}

type cartRunFunc func(ctx context.Context, w io.Writer, env *appEnv) int

// runCartExit bootstraps the environment, requires a session, runs the
// given step, and exits non-zero on failure.
func runCartExit(run cartRunFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env, err := newAppEnv()
	if err != nil {
		printError(os.Stdout, err)
		os.Exit(2)
	}
	defer env.Close()

	env.restoreSession(ctx)
	if !env.session.Authenticated() {
		// Personal-collection actions short-circuit locally: no call is
		// issued that the server would reject anyway.
		fmt.Fprintln(os.Stdout, "Error: not logged in. Run 'bimarket login' first.")
		env.Close()
		os.Exit(1)
	}

	if code := run(ctx, os.Stdout, env); code != 0 {
		env.Close()
		os.Exit(code)
	}
}

// runCartShow fetches and prints the cart snapshot
func runCartShow(ctx context.Context, w io.Writer, env *appEnv) int {
	cart, err := env.client.Cart(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	printCart(w, cart)
	return 0
}

// runCartAdd adds a product, then refetches the authoritative cart
func runCartAdd(ctx context.Context, w io.Writer, env *appEnv, productID string, quantity int) int {
	if quantity < 1 {
		fmt.Fprintln(w, "Error: --quantity must be at least 1")
		return 2
	}
	if _, err := env.client.AddCartItem(ctx, productID, quantity); err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	return runCartShow(ctx, w, env)
}

// runCartUpdate changes a line quantity, then refetches the cart
func runCartUpdate(ctx context.Context, w io.Writer, env *appEnv, itemID string, quantity int) int {
	if quantity < 1 {
		fmt.Fprintln(w, "Error: --quantity must be at least 1")
		return 2
	}
	if _, err := env.client.UpdateCartItem(ctx, itemID, quantity); err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	return runCartShow(ctx, w, env)
}

// runCartRemove deletes a line, then refetches the cart
func runCartRemove(ctx context.Context, w io.Writer, env *appEnv, itemID string) int {
	if err := env.client.RemoveCartItem(ctx, itemID); err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	return runCartShow(ctx, w, env)
}

// printCart renders the cart in the selected output format
func printCart(w io.Writer, cart *api.Cart) {
	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(cart))
		return
	}
	fmt.Fprintln(w, formatCartHuman(cart))
}

// formatCartHuman renders the cart as a fixed-width table
func formatCartHuman(cart *api.Cart) string {
	if len(cart.Items) == 0 {
		return "Your cart is empty."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-32s %6s %12s\n", "ITEM", "PRODUCT", "QTY", "SUBTOTAL")
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "%-8s %-32s %6d %12.2f\n", item.ID, truncate(item.Product.Name, 32), item.Quantity, item.Subtotal)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f (%d items)", cart.Total, cart.Count())
	return b.String()
}
