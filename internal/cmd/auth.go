package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/errors"
	"github.com/refineryiq/riq/internal/log"
	"github.com/refineryiq/riq/internal/platform"
	"github.com/refineryiq/riq/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage your RefineryIQ login session.

Credentials are stored under the state directory (~/.refineryiq by default)
as three independent entries: the bearer token, your role, and your user
record.

Examples:
  riq auth login --email ops@refinery.example --password secret
  riq auth status
  riq auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the platform",
	Long: `Login to the RefineryIQ backend with your email and password.

When run on a terminal without flags, an interactive form collects the
credentials instead.

Examples:
  riq auth login --email ops@refinery.example --password secret
  riq auth login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if !tui.IsInteractive() {
				return fmt.Errorf("--email and --password are required")
			}
			creds, err := tui.LoginForm()
			if err != nil {
				return err
			}
			email, password = creds.Email, creds.Password
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		user, err := a.sessions.Login(cmd.Context(), email, password)
		if err != nil {
			// Login failures stay generic on the terminal; the backend's
			// detail only reaches debug logs.
			log.Global().WithError(err).Debug("login failed")
			return errors.New(errors.ErrCodeAuthLoginFailed, "invalid credentials").
				WithSuggestion("Check the email and password and try again").
				WithSuggestion("Verify the backend address with 'riq version' connectivity or REFINERYIQ_API_URL")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

// authLogoutCmd handles user logout
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove credentials",
	Long: `Logout and remove the stored session. This is a purely local
operation and always succeeds.

Examples:
  riq auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		a.sessions.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

// authStatusCmd shows current auth status
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		user := a.sessions.Restore()
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			fmt.Fprintln(cmd.OutOrStdout(), "Use 'riq auth login' to authenticate.")
			return nil
		}

		return printData(cmd, user, func(w io.Writer) error {
			fmt.Fprintln(w, "Logged in")
			fmt.Fprintf(w, "Email: %s\n", user.Email)
			fmt.Fprintf(w, "Name:  %s\n", user.Name)
			fmt.Fprintf(w, "Role:  %s\n", user.Role)
			return nil
		})
	},
}

// authRegisterCmd registers a new user
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new user account with the RefineryIQ backend.

After registration, you are automatically logged in.

Examples:
  riq auth register --email ops@refinery.example --password secret
  riq auth register --email chief@refinery.example --password secret --full-name "Shift Chief" --role ADMIN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		fullName, _ := cmd.Flags().GetString("full-name")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		if _, err := a.client.Register(cmd.Context(), platform.RegisterRequest{
			Email:    email,
			FullName: fullName,
			Role:     role,
			Password: password,
		}); err != nil {
			return errors.Wrap(errors.ErrCodeAuthRegisterFailed, "registration failed", err)
		}

		user, err := a.sessions.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("registration succeeded but login failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRegisterCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("email", "", "Email address (required)")
	authRegisterCmd.Flags().String("password", "", "Password (required)")
	authRegisterCmd.Flags().String("full-name", "", "Display name")
	authRegisterCmd.Flags().String("role", "", "Role (ADMIN or OPERATOR)")

	rootCmd.AddCommand(authCmd)
}
