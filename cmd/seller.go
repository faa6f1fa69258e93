// ABOUTME: Seller commands for the bimarket CLI
// ABOUTME: Catalog CRUD and seller-scoped order listing

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
	"github.com/GKcoding-prog/BiMarket/internal/credstore"
)

var (
	sellerName        string
	sellerPrice       float64
	sellerStock       int
	sellerCategoryID  string
	sellerDescription string
	sellerImage       string
)

var sellerCmd = &cobra.Command{
	Use:   "seller",
	Short: "Manage your seller storefront",
	Long: `Seller-only commands: list your products and orders, add, update,
and remove catalog entries. Requires a seller session; the backend
enforces the role on every call.`,
}

var sellerProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List your products",
	Run: func(cmd *cobra.Command, args []string) {
		runSellerExit(runSellerProducts)
	},
}

var sellerOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders for your products",
	Run: func(cmd *cobra.Command, args []string) {
		runSellerExit(runSellerOrders)
	},
}

var sellerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to your catalog",
	Run: func(cmd *cobra.Command, args []string) {
		runSellerExit(runSellerAdd)
	},
}

var sellerUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update one of your products",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSellerExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runSellerUpdate(ctx, w, env, args[0])
		})
	},
}

var sellerRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove one of your products",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSellerExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runSellerRemove(ctx, w, env, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(sellerCmd)
	sellerCmd.AddCommand(sellerProductsCmd)
	sellerCmd.AddCommand(sellerOrdersCmd)
	sellerCmd.AddCommand(sellerAddCmd)
	sellerCmd.AddCommand(sellerUpdateCmd)
	sellerCmd.AddCommand(sellerRemoveCmd)

	for _, c := range []*cobra.Command{sellerAddCmd, sellerUpdateCmd} {
		c.Flags().StringVar(&sellerName, "name", "", "Product name")
		c.Flags().Float64Var(&sellerPrice, "price", 0, "Product price")
		c.Flags().IntVar(&sellerStock, "stock", 0, "Units in stock")
		c.Flags().StringVar(&sellerCategoryID, "category", "", "Category id")
		c.Flags().StringVar(&sellerDescription, "description", "", "Product description")
		c.Flags().StringVar(&sellerImage, "image", "", "Product image URL")
	}
}

// runSellerExit is runCartExit plus a local seller-role gate. The
// backend re-verifies the role; a degraded session's cached role is
// only good enough to pick which commands are offered.
func runSellerExit(run cartRunFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env, err := newAppEnv()
	if err != nil {
		printError(os.Stdout, err)
		os.Exit(2)
	}
	defer env.Close()

	env.restoreSession(ctx)
	state := env.session.Current()
	if !state.Authenticated() {
		fmt.Fprintln(os.Stdout, "Error: not logged in. Run 'bimarket login' first.")
		env.Close()
		os.Exit(1)
	}
	if state.Role != credstore.RoleSeller {
		fmt.Fprintln(os.Stdout, "Error: this command requires a seller account.")
		env.Close()
		os.Exit(1)
	}

	if code := run(ctx, os.Stdout, env); code != 0 {
		env.Close()
		os.Exit(code)
	}
}

// runSellerProducts lists the seller's catalog
func runSellerProducts(ctx context.Context, w io.Writer, env *appEnv) int {
	products, err := env.client.SellerProducts(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(products))
	} else {
		fmt.Fprintln(w, formatProductsHuman(products))
	}
	return 0
}

// runSellerOrders lists orders scoped to the seller's products
func runSellerOrders(ctx context.Context, w io.Writer, env *appEnv) int {
	orders, err := env.client.SellerOrders(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	printOrders(w, orders)
	return 0
}

// runSellerAdd creates a catalog entry
func runSellerAdd(ctx context.Context, w io.Writer, env *appEnv) int {
	if sellerName == "" || sellerPrice <= 0 || sellerCategoryID == "" {
		fmt.Fprintln(w, "Error: --name, --price, and --category are required")
		return 2
	}

	product, err := env.client.CreateProduct(ctx, sellerProductInput())
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	fmt.Fprintf(w, "Product %s created.\n", product.ID)
	return 0
}

// runSellerUpdate updates a catalog entry
func runSellerUpdate(ctx context.Context, w io.Writer, env *appEnv, id string) int {
	product, err := env.client.UpdateProduct(ctx, id, sellerProductInput())
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	fmt.Fprintf(w, "Product %s updated.\n", product.ID)
	return 0
}

// runSellerRemove deletes a catalog entry
func runSellerRemove(ctx context.Context, w io.Writer, env *appEnv, id string) int {
	if err := env.client.DeleteProduct(ctx, id); err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	fmt.Fprintf(w, "Product %s removed.\n", id)
	return 0
}

func sellerProductInput() api.ProductInput {
	return api.ProductInput{
		Name:        sellerName,
		Price:       sellerPrice,
		Stock:       sellerStock,
		CategoryID:  sellerCategoryID,
		Description: sellerDescription,
		Image:       sellerImage,
	}
}
