package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "riq %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
