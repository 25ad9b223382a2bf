package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Credentials collected by the interactive login form
type Credentials struct {
	Email    string
	Password string
}

// LoginForm runs an interactive email/password form and returns the entered
// credentials. Format is not checked beyond non-emptiness; the backend is
// authoritative.
func LoginForm() (Credentials, error) {
	var creds Credentials

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@refinery.example").
			Value(&creds.Email).
			Validate(requireValue("email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(requireValue("password")),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("login prompt failed: %w", err)
	}

	return creds, nil
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
