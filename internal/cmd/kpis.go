package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/platform"
)

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Show the aggregate KPI summary",
	Long: `Fetch the aggregate KPI summary for the active dataset: total and
average energy, specific energy consumption (SEC), and anomaly rate.

Examples:
  riq kpis
  riq kpis -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		summary, err := a.client.KPIs(cmd.Context())
		if err != nil {
			return err
		}

		return printData(cmd, summary, func(w io.Writer) error {
			writeKPIs(w, summary)
			return nil
		})
	},
}

func writeKPIs(w io.Writer, summary *platform.KPISummary) {
	fmt.Fprintf(w, "Total energy:      %s\n", kpiFloat(summary.TotalEnergy, "MWh"))
	fmt.Fprintf(w, "Average energy:    %s\n", kpiFloat(summary.AvgEnergy, "MWh"))
	fmt.Fprintf(w, "Average SEC:       %s\n", kpiFloat(summary.AvgSEC, "MWh/bbl"))
	fmt.Fprintf(w, "Anomaly rate:      %s\n", kpiRate(summary.AnomalyRate))
	fmt.Fprintf(w, "Next-day energy:   %s\n", kpiFloat(summary.PredictedEnergyNextDay, "MWh"))
	if summary.TotalAnomalies != nil {
		fmt.Fprintf(w, "Total anomalies:   %d\n", *summary.TotalAnomalies)
	}
	if summary.HighSeverityCount != nil {
		fmt.Fprintf(w, "High severity:     %d\n", *summary.HighSeverityCount)
	}
	if summary.LastUpdated != "" {
		fmt.Fprintf(w, "Last updated:      %s\n", summary.LastUpdated)
	}
}

func kpiFloat(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f %s", *v, unit)
}

func kpiRate(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}

func init() {
	rootCmd.AddCommand(kpisCmd)
}
