package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse similar emails interactively",
	Long:  `Opens a terminal UI for searching the corpus and browsing results.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	search, err := ensureSearchService(cmd.Context())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Search: search})
	if err != nil {
		return err
	}

	return app.WithContext(cmd.Context()).Run()
}
