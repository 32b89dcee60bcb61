package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize Gmail access",
	Long: `Runs the OAuth flow against Google and stores the resulting token.

Requires an OAuth client file (credentials.json) in the config
directory, created in the Google Cloud console with the Gmail readonly
scope enabled.`,
	RunE: runAuth,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a Gmail token is stored",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	cfg, err := ensureConfig()
	if err != nil {
		return err
	}

	cmd.Println("Opening browser for Google authorization...")
	if err := auth.Authorize(cmd.Context(), cfg.GmailCredentialsPath, cfg.GmailTokenPath); err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	cmd.Println("Authorization complete. Token saved.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := ensureConfig()
	if err != nil {
		return err
	}

	provider := auth.NewProvider(cfg.GmailCredentialsPath, cfg.GmailTokenPath)
	if provider.IsAuthenticated() {
		cmd.Printf("Authenticated. Token at %s\n", cfg.GmailTokenPath)
		return nil
	}

	cmd.Println("Not authenticated. Run 'inkwell auth' first.")
	return nil
}
