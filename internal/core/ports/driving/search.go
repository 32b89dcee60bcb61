package driving

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// SimilaritySearcher retrieves stored emails semantically similar to a
// drafting context.
type SimilaritySearcher interface {
	// FindSimilar returns up to nResults stored emails nearest to the
	// query text, best match first. An empty corpus yields an empty
	// slice without touching the backend.
	//
	// recipientFilter, when non-empty, keeps only hits whose stored
	// recipient contains the filter as a case-insensitive substring.
	FindSimilar(ctx context.Context, query string, nResults int, recipientFilter string) ([]domain.SimilarityHit, error)

	// Stats reports the current corpus size and configuration.
	Stats(ctx context.Context) (domain.CorpusStats, error)
}
