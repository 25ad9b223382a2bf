package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the live terminal dashboard",
	Long: `Open the live dashboard for your role: operators see current
anomalies, SEC, and the energy trend; admins see fleet-wide forecasts and
optimization impact. Panels load independently, so a failing backend call
degrades one section rather than the whole screen.

Keys: r reloads, q quits.

Examples:
  riq dashboard
  riq dashboard --dataset 64f1c0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetID, _ := cmd.Flags().GetString("dataset")

		a, err := getApp()
		if err != nil {
			return err
		}
		user, err := a.requireUser("")
		if err != nil {
			return err
		}

		model := tui.NewDashboard(cmd.Context(), a.client, *user, datasetID)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("dashboard failed: %w", err)
		}

		return nil
	},
}

func init() {
	dashboardCmd.Flags().String("dataset", "", "Dataset ID to pin the dashboard to")
	rootCmd.AddCommand(dashboardCmd)
}
