package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "riq",
	Short: "RefineryIQ operations dashboard for your terminal",
	Long: `riq is the command-line client for the RefineryIQ refinery energy and
safety monitoring platform. It surfaces KPIs, anomaly alerts, forecasts, and
optimization recommendations from the backend, manages your login session,
and renders a live terminal dashboard per role (ADMIN or OPERATOR).`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	defer teardownApp()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
