package file

import (
	"os"
	"path/filepath"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Configuration keys understood by the wiring layer. Keys use
// dot-notation matching the TOML table layout, e.g.
//
//	[embedding]
//	provider = "ollama"
const (
	KeyEmbeddingProvider   = "embedding.provider"
	KeyEmbeddingBaseURL    = "embedding.base_url"
	KeyEmbeddingModel      = "embedding.model"
	KeyEmbeddingDimensions = "embedding.dimensions"
	KeyEmbeddingAPIKey     = "embedding.api_key"

	KeyChromaURL        = "chroma.url"
	KeyChromaCollection = "chroma.collection"

	KeyGmailCredentials = "gmail.credentials_path"
	KeyGmailToken       = "gmail.token_path"

	KeyStyleGuidePath = "style_guide.path"
	KeyHistoryPath    = "history.path"

	KeySyncMaxEmails = "sync.max_emails"
)

// Default values applied when a key is unset.
const (
	DefaultEmbeddingProvider = "ollama"
	DefaultSyncMaxEmails     = 500
)

// Settings is the resolved, typed configuration consumed by the wiring
// layer. Zero values here mean "use the adapter's own default".
type Settings struct {
	EmbeddingProvider   string
	EmbeddingBaseURL    string
	EmbeddingModel      string
	EmbeddingDimensions int
	EmbeddingAPIKey     string

	ChromaURL        string
	ChromaCollection string

	GmailCredentialsPath string
	GmailTokenPath       string

	StyleGuidePath string
	HistoryPath    string

	SyncMaxEmails int
}

// ResolveSettings reads typed settings from the store, applying
// defaults and environment overrides. OPENAI_API_KEY beats the stored
// API key so the secret can stay out of the config file.
func ResolveSettings(cfg driven.ConfigStore) Settings {
	s := Settings{
		EmbeddingProvider:   cfg.GetString(KeyEmbeddingProvider),
		EmbeddingBaseURL:    cfg.GetString(KeyEmbeddingBaseURL),
		EmbeddingModel:      cfg.GetString(KeyEmbeddingModel),
		EmbeddingDimensions: cfg.GetInt(KeyEmbeddingDimensions),
		EmbeddingAPIKey:     cfg.GetString(KeyEmbeddingAPIKey),

		ChromaURL:        cfg.GetString(KeyChromaURL),
		ChromaCollection: cfg.GetString(KeyChromaCollection),

		GmailCredentialsPath: cfg.GetString(KeyGmailCredentials),
		GmailTokenPath:       cfg.GetString(KeyGmailToken),

		StyleGuidePath: cfg.GetString(KeyStyleGuidePath),
		HistoryPath:    cfg.GetString(KeyHistoryPath),

		SyncMaxEmails: cfg.GetInt(KeySyncMaxEmails),
	}

	if s.EmbeddingProvider == "" {
		s.EmbeddingProvider = DefaultEmbeddingProvider
	}
	if s.SyncMaxEmails == 0 {
		s.SyncMaxEmails = DefaultSyncMaxEmails
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		s.EmbeddingAPIKey = key
	}

	configDir := filepath.Dir(cfg.Path())
	if s.GmailCredentialsPath == "" {
		s.GmailCredentialsPath = filepath.Join(configDir, "credentials.json")
	}
	if s.GmailTokenPath == "" {
		s.GmailTokenPath = filepath.Join(configDir, "token.json")
	}
	if s.StyleGuidePath == "" {
		s.StyleGuidePath = filepath.Join(configDir, "style_guide.md")
	}
	if s.HistoryPath == "" {
		s.HistoryPath = filepath.Join(configDir, "history.db")
	}

	return s
}
