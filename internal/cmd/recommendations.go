package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var recommendationsCmd = &cobra.Command{
	Use:     "recommendations",
	Aliases: []string{"recs"},
	Short:   "List optimization recommendations",
	Long: `List AI-generated optimization recommendations for the active dataset.

Examples:
  riq recommendations
  riq recs --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		recs, err := a.client.Recommendations(cmd.Context(), limit)
		if err != nil {
			return err
		}

		return printData(cmd, recs, func(w io.Writer) error {
			if len(recs) == 0 {
				fmt.Fprintln(w, "No recommendations.")
				return nil
			}
			for _, rec := range recs {
				fmt.Fprintf(w, "• %s\n", rec.Title)
				if rec.Description != "" {
					fmt.Fprintf(w, "  %s\n", rec.Description)
				}
				if rec.Impact != "" {
					fmt.Fprintf(w, "  Impact: %s\n", rec.Impact)
				}
			}
			return nil
		})
	},
}

func init() {
	recommendationsCmd.Flags().Int("limit", 10, "Maximum number of recommendations")
	rootCmd.AddCommand(recommendationsCmd)
}
