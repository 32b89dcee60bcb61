package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit the TOML configuration file.

Keys use dot notation, e.g.:
  inkwell config set embedding.provider openai
  inkwell config set sync.max_emails 1000`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved settings",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a single config value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := ensureConfig()
	if err != nil {
		return err
	}

	apiKey := "(not set)"
	if cfg.EmbeddingAPIKey != "" {
		apiKey = "(set)"
	}

	cmd.Printf("embedding.provider    %s\n", cfg.EmbeddingProvider)
	cmd.Printf("embedding.model       %s\n", orDefault(cfg.EmbeddingModel, "(provider default)"))
	cmd.Printf("embedding.base_url    %s\n", orDefault(cfg.EmbeddingBaseURL, "(provider default)"))
	cmd.Printf("embedding.api_key     %s\n", apiKey)
	cmd.Printf("chroma.url            %s\n", orDefault(cfg.ChromaURL, "(default)"))
	cmd.Printf("chroma.collection     %s\n", orDefault(cfg.ChromaCollection, "(default)"))
	cmd.Printf("gmail.credentials     %s\n", cfg.GmailCredentialsPath)
	cmd.Printf("gmail.token           %s\n", cfg.GmailTokenPath)
	cmd.Printf("style_guide.path      %s\n", cfg.StyleGuidePath)
	cmd.Printf("history.path          %s\n", cfg.HistoryPath)
	cmd.Printf("sync.max_emails       %d\n", cfg.SyncMaxEmails)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if _, err := ensureConfig(); err != nil {
		return err
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if _, err := ensureConfig(); err != nil {
		return err
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Settings were resolved from the old values.
	settings = nil

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if _, err := ensureConfig(); err != nil {
		return err
	}
	cmd.Println(configStore.Path())
	return nil
}

// parseConfigValue keeps booleans and integers typed in the TOML file.
func parseConfigValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
