package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/platform"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast <energy|sec>",
	Short: "Show a metric's forecast series",
	Long: `Fetch the forecast series for a metric: plant energy consumption or
specific energy consumption (SEC).

Examples:
  riq forecast energy
  riq forecast sec --limit 30 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]
		if metric != platform.MetricEnergy && metric != platform.MetricSEC {
			return fmt.Errorf("unknown metric %q (supported: energy, sec)", metric)
		}

		limit, _ := cmd.Flags().GetInt("limit")

		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		points, err := a.client.Forecast(cmd.Context(), metric, limit)
		if err != nil {
			return err
		}

		return printData(cmd, points, func(w io.Writer) error {
			if len(points) == 0 {
				fmt.Fprintln(w, "No forecast data.")
				return nil
			}
			for i, point := range points {
				value := "n/a"
				if point.Value != nil {
					value = fmt.Sprintf("%.3f", *point.Value)
				}
				fmt.Fprintf(w, "%-24s %s\n", point.Label(i), value)
			}
			return nil
		})
	},
}

func init() {
	forecastCmd.Flags().Int("limit", 30, "Maximum number of forecast points")
	rootCmd.AddCommand(forecastCmd)
}
