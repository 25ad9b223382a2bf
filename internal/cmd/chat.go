package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/platform"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask the AI assistant about plant operations",
	Long: `Submit a natural-language question to the RefineryIQ assistant. The
question is scoped to a dataset (the active one unless --dataset is given)
and to your role, so answers match what your dashboard shows.

Examples:
  riq chat "why did SEC spike last week?"
  riq chat "top optimization opportunities" --dataset 64f1c0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		datasetID, _ := cmd.Flags().GetString("dataset")

		a, err := getApp()
		if err != nil {
			return err
		}
		user, err := a.requireUser("")
		if err != nil {
			return err
		}

		if datasetID == "" {
			// Best effort; the backend falls back to its own active dataset.
			datasetID, _ = a.client.ActiveDataset(cmd.Context())
		}

		answer, err := a.client.Chat(cmd.Context(), platform.ChatRequest{
			DatasetID: datasetID,
			UserRole:  string(user.Role),
			Question:  question,
		})
		if err != nil {
			return err
		}

		return printData(cmd, answer, func(w io.Writer) error {
			fmt.Fprintln(w, answer.Answer)
			if len(answer.Sources) > 0 {
				fmt.Fprintf(w, "\nSources: %s\n", strings.Join(answer.Sources, ", "))
			}
			if answer.Confidence > 0 {
				fmt.Fprintf(w, "Confidence: %.0f%%\n", answer.Confidence*100)
			}
			return nil
		})
	},
}

func init() {
	chatCmd.Flags().String("dataset", "", "Dataset ID to scope the question to")
	rootCmd.AddCommand(chatCmd)
}
