package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var (
	searchLimit     int
	searchRecipient string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find sent emails similar to a query",
	Long: `Embeds the query and returns the nearest emails in the corpus.

Use --to to keep only emails sent to a particular recipient.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "maximum number of results")
	searchCmd.Flags().StringVar(&searchRecipient, "to", "", "only emails whose To header contains this substring")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	service, err := ensureSearchService(cmd.Context())
	if err != nil {
		return err
	}

	hits, err := service.FindSimilar(cmd.Context(), args[0], searchLimit, searchRecipient)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, hits)
	}
	return outputSearchText(cmd, hits)
}

func outputSearchJSON(cmd *cobra.Command, hits []domain.SimilarityHit) error {
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, hits []domain.SimilarityHit) error {
	if len(hits) == 0 {
		cmd.Println("No similar emails found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range hits {
		header := fmt.Sprintf("[%d] %s", i+1, hits[i].Subject)
		if hits[i].Similarity != nil {
			header = fmt.Sprintf("%s (%.0f%%)", header, *hits[i].Similarity*100)
		}
		cmd.Println("  " + header)
		cmd.Printf("      To: %s", hits[i].To)
		if hits[i].Date != "" {
			cmd.Printf("  on %s", hits[i].Date)
		}
		cmd.Println()
		cmd.Println()
	}
	return nil
}
