package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestAuthSubcommands tests that all auth subcommands are registered
func TestAuthSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"login":    false,
		"logout":   false,
		"status":   false,
		"register": false,
	}

	for _, cmd := range authCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in auth command", name)
		}
	}
}

func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("subcommand '%s' not found on %s", name, parent.Name())
	return nil
}

// TestAuthLoginFlags tests that auth login has correct flags
func TestAuthLoginFlags(t *testing.T) {
	loginCmd := findSubcommand(t, authCmd, "login")

	if loginCmd.Flags().Lookup("email") == nil {
		t.Error("flag 'email' not found on auth login command")
	}
	if loginCmd.Flags().Lookup("password") == nil {
		t.Error("flag 'password' not found on auth login command")
	}
}

// TestAuthRegisterFlags tests that auth register has correct flags
func TestAuthRegisterFlags(t *testing.T) {
	registerCmd := findSubcommand(t, authCmd, "register")

	for _, name := range []string{"email", "password", "full-name", "role"} {
		if registerCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on auth register command", name)
		}
	}
}

// TestAuthCommand tests the auth command configuration
func TestAuthCommand(t *testing.T) {
	if authCmd.Use != "auth" {
		t.Errorf("auth Use = %q, want %q", authCmd.Use, "auth")
	}

	if authCmd.Short == "" {
		t.Error("auth Short description is empty")
	}

	if len(authCmd.Commands()) == 0 {
		t.Error("auth command should have subcommands")
	}
}

// TestAuthSubcommandDescriptions tests that every subcommand documents itself
func TestAuthSubcommandDescriptions(t *testing.T) {
	for _, cmd := range authCmd.Commands() {
		if cmd.Short == "" {
			t.Errorf("subcommand '%s' has no Short description", cmd.Name())
		}
	}
}
