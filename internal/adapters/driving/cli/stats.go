package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	service, err := ensureSearchService(cmd.Context())
	if err != nil {
		return err
	}

	stats, err := service.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats failed: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Indexed emails: %d\n", stats.TotalEmails)
	cmd.Printf("Collection:     %s\n", stats.Collection)
	cmd.Printf("Model:          %s\n", stats.Model)
	return nil
}
