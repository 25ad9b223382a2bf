package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/session"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Upload a CSV dataset",
	Long: `Upload a CSV dataset for analysis. The file must carry a .csv
extension; anything else is rejected locally before any network call. The
backend runs the full anomaly/forecast pipeline on the upload, so this can
take a while for large files.

Requires the ADMIN role.

Examples:
  riq upload plant_metrics_q3.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(session.RoleAdmin); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		err = a.client.UploadDataset(cmd.Context(), args[0], func(sent, total int64) {
			if total > 0 {
				fmt.Fprintf(out, "\rUploading... %3d%%", sent*100/total)
			}
		})
		fmt.Fprintln(out)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Dataset uploaded and analysis completed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
