// ABOUTME: Wishlist commands for the bimarket CLI
// ABOUTME: Shows and toggles wishlist membership with server refetch

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage your wishlist",
	Long:  `View your wishlist and toggle product membership. All subcommands require a session.`,
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current wishlist",
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(runWishlistShow)
	},
}

var wishlistToggleCmd = &cobra.Command{
	Use:   "toggle <product-id>",
	Short: "Add or remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runWishlistToggle(ctx, w, env, args[0])
		})
	},
}

var wishlistCheckCmd = &cobra.Command{
	Use:   "check <product-id>",
	Short: "Check whether a product is in the wishlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runWishlistCheck(ctx, w, env, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
	wishlistCmd.AddCommand(wishlistShowCmd)
	wishlistCmd.AddCommand(wishlistToggleCmd)
	wishlistCmd.AddCommand(wishlistCheckCmd)
}

// runWishlistShow fetches and prints the wishlist
func runWishlistShow(ctx context.Context, w io.Writer, env *appEnv) int {
	wl, err := env.client.Wishlist(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(wl))
		return 0
	}
	if len(wl.Products) == 0 {
		fmt.Fprintln(w, "Your wishlist is empty.")
		return 0
	}
	var b strings.Builder
	for _, p := range wl.Products {
		fmt.Fprintf(&b, "%-8s %-32s %10.2f\n", p.ID, truncate(p.Name, 32), p.Price)
	}
	fmt.Fprint(w, b.String())
	return 0
}

// runWishlistToggle flips membership, then reports the fresh state
func runWishlistToggle(ctx context.Context, w io.Writer, env *appEnv, productID string) int {
	status, err := env.client.ToggleWishlist(ctx, productID)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(status))
		return 0
	}
	if status.InWishlist {
		fmt.Fprintf(w, "Product %s added to wishlist.\n", productID)
	} else {
		fmt.Fprintf(w, "Product %s removed from wishlist.\n", productID)
	}
	return 0
}

// runWishlistCheck reports membership for a single product
func runWishlistCheck(ctx context.Context, w io.Writer, env *appEnv, productID string) int {
	status, err := env.client.CheckWishlist(ctx, productID)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(status))
		return 0
	}
	if status.InWishlist {
		fmt.Fprintf(w, "Product %s is in your wishlist.\n", productID)
	} else {
		fmt.Fprintf(w, "Product %s is not in your wishlist.\n", productID)
	}
	return 0
}
