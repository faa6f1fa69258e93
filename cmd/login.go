// ABOUTME: Login command for the bimarket CLI
// ABOUTME: Authenticates an account and stores the token pair locally

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your BiMarket account",
	Long: `Authenticate against the BiMarket backend and store the resulting
tokens locally. Subsequent commands reuse the stored session.

Omitted flags are prompted for interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// runLogin executes the login flow and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if err := promptCredentials(&loginEmail, &loginPassword); err != nil {
		printError(w, err)
		return 2
	}

	env, err := newAppEnv()
	if err != nil {
		printError(w, err)
		return 2
	}
	defer env.Close()

	if err := env.session.Login(ctx, loginEmail, loginPassword); err != nil {
		printError(w, err)
		return exitCodeFor(err)
	}

	state := env.session.Current()
	fmt.Fprintf(w, "Logged in as %s (%s)\n", state.Identity.Email, state.Role)
	if state.Degraded {
		fmt.Fprintln(w, "Note: profile could not be verified; using a degraded session.")
	}
	return 0
}

// promptCredentials fills missing email/password fields interactively.
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase()).Run()
}
