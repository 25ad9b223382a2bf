package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/session"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage uploaded datasets",
	Long: `List, select, and delete uploaded datasets. Selecting and deleting
are ADMIN operations; listing is open to any logged-in user.

Examples:
  riq datasets list
  riq datasets active
  riq datasets use 64f1c0
  riq datasets delete 64f1c0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dataset records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		datasets, err := a.client.ListDatasets(cmd.Context())
		if err != nil {
			return err
		}

		return printData(cmd, datasets, func(w io.Writer) error {
			if len(datasets) == 0 {
				fmt.Fprintln(w, "No datasets uploaded yet.")
				return nil
			}
			fmt.Fprintf(w, "%-26s %-20s %-12s %s\n", "ID", "NAME", "CATEGORY", "STATUS")
			for _, dataset := range datasets {
				fmt.Fprintf(w, "%-26s %-20s %-12s %s\n", dataset.ID, dataset.Name, dataset.Category, dataset.Status)
			}
			return nil
		})
	},
}

var datasetsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active dataset ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(""); err != nil {
			return err
		}

		datasetID, err := a.client.ActiveDataset(cmd.Context())
		if err != nil {
			return err
		}

		if datasetID == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No active dataset.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), datasetID)
		return nil
	},
}

var datasetsUseCmd = &cobra.Command{
	Use:   "use <dataset-id>",
	Short: "Select the active dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(session.RoleAdmin); err != nil {
			return err
		}

		if err := a.client.SetActiveDataset(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Active dataset set to %s\n", args[0])
		return nil
	},
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete <dataset-id>",
	Short: "Delete a dataset record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if _, err := a.requireUser(session.RoleAdmin); err != nil {
			return err
		}

		if err := a.client.DeleteDataset(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s\n", args[0])
		return nil
	},
}

func init() {
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsActiveCmd)
	datasetsCmd.AddCommand(datasetsUseCmd)
	datasetsCmd.AddCommand(datasetsDeleteCmd)

	rootCmd.AddCommand(datasetsCmd)
}
