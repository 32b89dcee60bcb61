package cli

import (
	"context"
	"fmt"
	"path/filepath"

	configfile "github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/config/file"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/corpus/chroma"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/embedding"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/storage/sqlite"
	styleguidefile "github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/styleguide/file"
	"github.com/inkwell-labs/inkwell-cli/internal/connectors/google"
	"github.com/inkwell-labs/inkwell-cli/internal/connectors/google/gmail"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/auth"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/core/services"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Package-level services. Wired lazily by the ensure* helpers; tests
// inject mocks directly.
var (
	configStore driven.ConfigStore
	settings    *configfile.Settings

	embedder        driven.EmbeddingService
	corpusStore     driven.CorpusStore
	historyStore    driven.SyncHistoryStore
	styleGuideStore driven.StyleGuideStore

	syncService   driving.SyncOrchestrator
	searchService driving.SimilaritySearcher
	styleService  driving.StyleAnalyzer
)

// ensureConfig loads the config store and resolved settings once.
func ensureConfig() (configfile.Settings, error) {
	if settings != nil {
		return *settings, nil
	}

	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return configfile.Settings{}, fmt.Errorf("loading config: %w", err)
		}
		configStore = store
	}

	resolved := configfile.ResolveSettings(configStore)
	settings = &resolved
	return resolved, nil
}

// ensureEmbedder builds the configured embedding backend.
func ensureEmbedder() (driven.EmbeddingService, error) {
	if embedder != nil {
		return embedder, nil
	}

	cfg, err := ensureConfig()
	if err != nil {
		return nil, err
	}

	svc, err := embedding.New(embedding.Settings{
		Provider:   cfg.EmbeddingProvider,
		BaseURL:    cfg.EmbeddingBaseURL,
		Model:      cfg.EmbeddingModel,
		APIKey:     cfg.EmbeddingAPIKey,
		Dimensions: cfg.EmbeddingDimensions,
	})
	if err != nil {
		return nil, err
	}

	embedder = svc
	logger.Debug("Embedding provider: %s (%s)", cfg.EmbeddingProvider, embedder.ModelName())
	return embedder, nil
}

// ensureCorpus connects to Chroma.
func ensureCorpus(ctx context.Context) (driven.CorpusStore, error) {
	if corpusStore != nil {
		return corpusStore, nil
	}

	cfg, err := ensureConfig()
	if err != nil {
		return nil, err
	}

	emb, err := ensureEmbedder()
	if err != nil {
		return nil, err
	}

	store, err := chroma.NewStore(ctx, chroma.Config{
		BaseURL:    cfg.ChromaURL,
		Collection: cfg.ChromaCollection,
	}, emb)
	if err != nil {
		return nil, fmt.Errorf("connecting to chroma: %w", err)
	}

	corpusStore = store
	return corpusStore, nil
}

// ensureHistory opens the sync history database. Failure is not fatal;
// syncs still work, they are just not recorded.
func ensureHistory() driven.SyncHistoryStore {
	if historyStore != nil {
		return historyStore
	}

	cfg, err := ensureConfig()
	if err != nil {
		logger.Warn("Sync history disabled: %v", err)
		return nil
	}

	store, err := sqlite.NewStore(cfg.HistoryPath)
	if err != nil {
		logger.Warn("Sync history disabled: %v", err)
		return nil
	}

	historyStore = store
	return historyStore
}

// ensureStyleGuide opens the watched style guide file.
func ensureStyleGuide() (driven.StyleGuideStore, error) {
	if styleGuideStore != nil {
		return styleGuideStore, nil
	}

	cfg, err := ensureConfig()
	if err != nil {
		return nil, err
	}

	store, err := styleguidefile.NewStore(cfg.StyleGuidePath)
	if err != nil {
		return nil, fmt.Errorf("opening style guide: %w", err)
	}

	styleGuideStore = store
	return styleGuideStore, nil
}

// ensureMailSource builds an authenticated Gmail sent-mail source.
func ensureMailSource(ctx context.Context) (driven.MailSource, error) {
	cfg, err := ensureConfig()
	if err != nil {
		return nil, err
	}

	provider := auth.NewProvider(cfg.GmailCredentialsPath, cfg.GmailTokenPath)
	ts := google.NewTokenSource(ctx, provider)

	service, err := google.NewGmailService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating gmail client: %w", err)
	}

	return gmail.NewSource(service), nil
}

// ensureSyncService wires the full ingestion pipeline.
func ensureSyncService(ctx context.Context) (driving.SyncOrchestrator, error) {
	if syncService != nil {
		return syncService, nil
	}

	source, err := ensureMailSource(ctx)
	if err != nil {
		return nil, err
	}

	emb, err := ensureEmbedder()
	if err != nil {
		return nil, err
	}

	corpus, err := ensureCorpus(ctx)
	if err != nil {
		return nil, err
	}

	syncService = services.NewSyncService(source, emb, corpus, ensureHistory())
	return syncService, nil
}

// ensureSearchService wires the similarity searcher.
func ensureSearchService(ctx context.Context) (driving.SimilaritySearcher, error) {
	if searchService != nil {
		return searchService, nil
	}

	cfg, err := ensureConfig()
	if err != nil {
		return nil, err
	}

	emb, err := ensureEmbedder()
	if err != nil {
		return nil, err
	}

	corpus, err := ensureCorpus(ctx)
	if err != nil {
		return nil, err
	}

	collection := cfg.ChromaCollection
	if collection == "" {
		collection = chroma.DefaultCollection
	}

	searchService = services.NewSearchService(corpus, emb, collection)
	return searchService, nil
}

// ensureStyleService wires the style analyzer.
func ensureStyleService(ctx context.Context) (driving.StyleAnalyzer, error) {
	if styleService != nil {
		return styleService, nil
	}

	corpus, err := ensureCorpus(ctx)
	if err != nil {
		return nil, err
	}

	styleService = services.NewStyleService(corpus)
	return styleService, nil
}

// configDir returns the directory holding the config file, creating the
// store if needed.
func configDir() (string, error) {
	if _, err := ensureConfig(); err != nil {
		return "", err
	}
	return filepath.Dir(configStore.Path()), nil
}

// resetServices clears all wired services. Used by tests.
func resetServices() {
	configStore = nil
	settings = nil
	embedder = nil
	corpusStore = nil
	historyStore = nil
	styleGuideStore = nil
	syncService = nil
	searchService = nil
	styleService = nil
}
