// Package cli provides the Cobra command tree for the inkwell binary.
//
// Commands resolve their dependencies lazily through the wiring helpers
// in wire.go, so commands that only touch local config never require
// Chroma or Gmail to be reachable.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Index your sent email and search it by meaning",
	Long: `Inkwell builds a searchable corpus from your Gmail sent folder.

It downloads sent emails, embeds them locally, and stores them in a
Chroma vector database. From there you can find past emails similar to
a draft you are writing, mine your own writing style, or expose the
corpus to AI assistants over MCP.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
