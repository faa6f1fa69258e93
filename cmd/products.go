// ABOUTME: Product and category browsing commands
// ABOUTME: Lists and inspects the public catalog without authentication

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
)

var productsCategory string

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `List products in the BiMarket catalog, optionally filtered by category.

Example:
  bimarket products --category 7 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProducts(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProduct(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCategories(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(categoriesCmd)
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Filter by category id")
}

// runProducts lists the catalog and returns an exit code
func runProducts(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	products, err := env.client.Products(ctx, productsCategory)
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

// runProduct shows a single product and returns an exit code
func runProduct(ctx context.Context, w io.Writer, id string) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	product, err := env.client.Product(ctx, id)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(product))
	} else {
		fmt.Fprintln(w, formatProductHuman(product))
	}
	return 0
}

// runCategories lists categories and returns an exit code
func runCategories(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	categories, err := env.client.Categories(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(categories))
	} else {
		var b strings.Builder
		for _, c := range categories {
			fmt.Fprintf(&b, "%-8s %s\n", c.ID, c.Name)
		}
		fmt.Fprint(w, b.String())
	}
	return 0
}

// formatProductsHuman renders a product list as a fixed-width table
func formatProductsHuman(products []api.Product) string {
	if len(products) == 0 {
		return "No products found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-32s %10s %8s  %s\n", "ID", "NAME", "PRICE", "STOCK", "CATEGORY")
	for _, p := range products {
		fmt.Fprintf(&b, "%-8s %-32s %10.2f %8d  %s\n", p.ID, truncate(p.Name, 32), p.Price, p.Stock, p.Category.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatProductHuman renders a single product
func formatProductHuman(p *api.Product) string {
	out := fmt.Sprintf(`ID:       %s
Name:     %s
Price:    %.2f
Stock:    %d
Category: %s`, p.ID, p.Name, p.Price, p.Stock, p.Category.Name)
	if p.Description != "" {
		out += "\n\n" + p.Description
	}
	return out
}

// truncate shortens a string to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// marshalJSON renders any value as indented JSON
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}
