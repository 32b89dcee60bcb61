// Package embedding provides factory functions for the embedding backends.
package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/embedding/ollama"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/embedding/openai"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// Settings selects and configures an embedding backend.
type Settings struct {
	// Provider is "ollama" or "openai".
	Provider string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// Model overrides the provider's default model.
	Model string

	// APIKey authenticates hosted providers. Required for openai.
	APIKey string

	// Dimensions overrides the model's default vector size.
	Dimensions int
}

// New creates the configured embedding service.
func New(cfg Settings) (driven.EmbeddingService, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
		}), nil

	case "openai":
		svc, err := openai.NewEmbeddingService(openai.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
		})
		if err != nil {
			return nil, fmt.Errorf("configuring openai embeddings: %w", err)
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("unknown embedding provider %q (want ollama or openai)", cfg.Provider)
	}
}

// NewValidated creates the embedding service and verifies the backend
// is reachable before returning it.
func NewValidated(cfg Settings) (driven.EmbeddingService, error) {
	svc, err := New(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("embedding backend %s unreachable: %w", cfg.Provider, err)
	}

	return svc, nil
}
