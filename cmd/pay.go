// ABOUTME: Payment commands for the bimarket CLI
// ABOUTME: Initiates payments and polls their status

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GKcoding-prog/BiMarket/internal/api"
)

var (
	payMethod string
	payPhone  string
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Pay for an order",
	Long:  `Initiate and track payments for placed orders. All subcommands require a session.`,
}

var payInitCmd = &cobra.Command{
	Use:   "init <order-id>",
	Short: "Initiate a payment",
	Long: `Start a payment for an order.

Example:
  bimarket pay init CMD-001 --method mobile_money --phone 670000000`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runPayInit(ctx, w, env, args[0])
		})
	},
}

var payStatusCmd = &cobra.Command{
	Use:   "status <order-id>",
	Short: "Show the payment status of an order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCartExit(func(ctx context.Context, w io.Writer, env *appEnv) int {
			return runPayStatus(ctx, w, env, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(payCmd)
	payCmd.AddCommand(payInitCmd)
	payCmd.AddCommand(payStatusCmd)
	payInitCmd.Flags().StringVar(&payMethod, "method", "mobile_money", "Payment method: mobile_money, card")
	payInitCmd.Flags().StringVar(&payPhone, "phone", "", "Phone number for mobile money")
}

// runPayInit starts a payment and prints the reported status
func runPayInit(ctx context.Context, w io.Writer, env *appEnv, orderID string) int {
	if payMethod == "mobile_money" && payPhone == "" {
		fmt.Fprintln(w, "Error: --phone is required for mobile money")
		return 2
	}

	status, err := env.client.InitiatePayment(ctx, api.PaymentInput{
		OrderID: orderID,
		Method:  payMethod,
		Phone:   payPhone,
	})
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	printPaymentStatus(w, status)
	return 0
}

// runPayStatus polls and prints the payment state
func runPayStatus(ctx context.Context, w io.Writer, env *appEnv, orderID string) int {
	status, err := env.client.PaymentState(ctx, orderID)
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}
	printPaymentStatus(w, status)
	return 0
}

// printPaymentStatus renders a payment status in the selected format
func printPaymentStatus(w io.Writer, status *api.PaymentStatus) {
	if IsJSONOutput() {
		fmt.Fprintln(w, marshalJSON(status))
		return
	}
	fmt.Fprintf(w, "Order %s: %s\n", status.OrderID, status.Status)
	if status.Message != "" {
		fmt.Fprintln(w, status.Message)
	}
}
