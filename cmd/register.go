// ABOUTME: Registration command for the bimarket CLI
// ABOUTME: Creates an account; login remains a separate step

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
)

var (
	registerEmail    string
	registerPassword string
	registerName     string
	registerPhone    string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a BiMarket account",
	Long: `Create a new account on the BiMarket backend.

Registration does not sign you in; run 'bimarket login' afterwards.
The chosen role is remembered locally so a later login can recover it
if the profile endpoint is unavailable.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number (for mobile money payments)")
	registerCmd.Flags().StringVar(&registerRole, "role", "client", "Account role: client or seller")
}

// runRegister executes the registration flow and returns an exit code
func runRegister(ctx context.Context, w io.Writer) int {
	if registerRole != "client" && registerRole != "seller" {
		fmt.Fprintln(w, "Error: --role must be client or seller")
		return 2
	}
	if err := promptCredentials(&registerEmail, &registerPassword); err != nil {
		printError(w, err)
		return 2
	}

	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	user, err := env.session.Register(ctx, api.RegisterInput{
		Email:    registerEmail,
		Password: registerPassword,
		FullName: registerName,
		Phone:    registerPhone,
		Role:     registerRole,
	})
	if err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Account created for %s (%s). Run 'bimarket login' to sign in.\n", user.Email, user.Role)
	return 0
}
