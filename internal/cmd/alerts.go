package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List anomaly alerts",
	Long: `List the most recent anomaly alerts detected in the active dataset.

Examples:
  riq alerts
  riq alerts --limit 50 -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		alerts, err := a.client.Anomalies(cmd.Context(), limit)
		if err != nil {
			return err
		}

		return printData(cmd, alerts, func(w io.Writer) error {
			if len(alerts) == 0 {
				fmt.Fprintln(w, "No alerts.")
				return nil
			}
			for _, alert := range alerts {
				line := fmt.Sprintf("[%s] %s", alert.Severity, alert.Message)
				if alert.Source != "" {
					line += fmt.Sprintf(" (%s)", alert.Source)
				}
				if alert.Timestamp != "" {
					line += "  " + alert.Timestamp
				}
				fmt.Fprintln(w, line)
			}
			return nil
		})
	},
}

func init() {
	alertsCmd.Flags().Int("limit", 20, "Maximum number of alerts to fetch")
	rootCmd.AddCommand(alertsCmd)
}
