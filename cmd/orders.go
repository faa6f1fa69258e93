// ABOUTME: Order commands for the bimarket CLI
// ABOUTME: Lists, inspects, and places orders from the current cart

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
)

var (
	orderShipping string
	orderMethod   string
	orderPhone    string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage your orders",
	Long:  `List, inspect, and place orders. All subcommands require a session.`,
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(runOrdersList)
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runOrdersShow(ctx, w, env, args[0])
		})
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place an order from the current cart",
	Long: `Place an order from the current cart contents.

Example:
  bimarket orders create --shipping "12 Rue des Marchés, Douala" --method mobile_money --phone 670000000`,
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(runOrdersCreate)
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersCreateCmd)
	ordersCreateCmd.Flags().StringVar(&orderShipping, "shipping", "", "Shipping address")
	ordersCreateCmd.Flags().StringVar(&orderMethod, "method", "cash_on_delivery", "Payment method: mobile_money, card, cash_on_delivery")
	ordersCreateCmd.Flags().StringVar(&orderPhone, "phone", "", "Phone number for mobile money")
}

// runOrdersList fetches and prints the account's orders
func runOrdersList(ctx context.Context, w io.Writer, env *appEnv) int {
	orders, err := env.client.Orders(ctx)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	printOrders(w, orders)
	return 0
}

// runOrdersShow fetches and prints one order
func runOrdersShow(ctx context.Context, w io.Writer, env *appEnv, id string) int {
	order, err := env.client.Order(ctx, id)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(order))
		return 0
	}
	fmt.Fprintln(w, formatOrderHuman(order))
	return 0
}

// runOrdersCreate places an order and prints the result
func runOrdersCreate(ctx context.Context, w io.Writer, env *appEnv) int {
	if orderShipping == "" {
		fmt.Fprintln(w, "Error: --shipping is required")
		return 2
	}
	if orderMethod == "mobile_money" && orderPhone == "" {
		fmt.Fprintln(w, "Error: --phone is required for mobile money")
		return 2
	}

	order, err := env.client.CreateOrder(ctx, api.OrderInput{
		ShippingAddress: orderShipping,
		PaymentMethod:   orderMethod,
		Phone:           orderPhone,
	})
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(order))
		return 0
	}
	fmt.Fprintf(w, "Order %s placed (%.2f, %s).\n", order.ID, order.TotalAmount, order.Status)
	return 0
}

// printOrders renders an order list in the selected output format
func printOrders(w io.Writer, orders []api.Order) {
	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(orders))
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-20s %-12s %12s\n", "ID", "DATE", "STATUS", "TOTAL")
	for _, o := range orders {
		fmt.Fprintf(&b, "%-12s %-20s %-12s %12.2f\n", o.ID, o.CreatedAt, o.Status, o.TotalAmount)
	}
	fmt.Fprint(w, b.String())
}

// formatOrderHuman renders one order with its lines
func formatOrderHuman(order *api.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Order:  %s
Date:   %s
Status: %s
Total:  %.2f`, order.ID, order.CreatedAt, order.Status, order.TotalAmount)
	if len(order.Items) > 0 {
		fmt.Fprint(&b, "\n\nItems:\n")
		for _, item := range order.Items {
			fmt.Fprintf(&b, "  %dx %s (%.2f)\n", item.Quantity, item.Name, item.Price)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
