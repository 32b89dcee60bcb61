package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SimilaritySearcher = (*SearchService)(nil)

// filterOverfetch is the minimum query size used when a recipient
// filter is active, so post-filtering still has enough candidates.
const filterOverfetch = 50

// SearchService retrieves stored emails similar to a drafting context.
type SearchService struct {
	corpus     driven.CorpusStore
	embedder   driven.EmbeddingService
	collection string
}

// NewSearchService creates a new similarity searcher. The collection
// name is reported in Stats.
func NewSearchService(corpus driven.CorpusStore, embedder driven.EmbeddingService, collection string) *SearchService {
	return &SearchService{
		corpus:     corpus,
		embedder:   embedder,
		collection: collection,
	}
}

// FindSimilar returns up to nResults stored emails nearest to the query
// text, best match first.
//
// recipientFilter matches as a case-insensitive substring of the stored
// recipient metadata. The corpus backend exposes no substring operator,
// so the store is over-queried and filtered here.
func (s *SearchService) FindSimilar(
	ctx context.Context, query string, nResults int, recipientFilter string,
) ([]domain.SimilarityHit, error) {
	if nResults < 1 {
		return nil, fmt.Errorf("%w: n results must be at least 1", domain.ErrInvalidInput)
	}

	logger.Section("Similarity Search")
	logger.Debug("Query: %q, n: %d, recipient filter: %q", query, nResults, recipientFilter)

	count, err := s.corpus.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count corpus: %w", err)
	}
	if count == 0 {
		logger.Debug("Corpus is empty, skipping query")
		return []domain.SimilarityHit{}, nil
	}

	limit := nResults
	if recipientFilter != "" {
		limit = nResults * 10
		if limit < filterOverfetch {
			limit = filterOverfetch
		}
		if limit > count {
			limit = count
		}
	}

	raw, err := s.corpus.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	logger.Debug("Backend returned %d hits", len(raw))

	hits := make([]domain.SimilarityHit, 0, nResults)
	for _, hit := range raw {
		if recipientFilter != "" && !containsFold(hit.Metadata.To, recipientFilter) {
			continue
		}
		hits = append(hits, toSimilarityHit(hit))
		if len(hits) == nResults {
			break
		}
	}

	return hits, nil
}

// Stats reports the corpus size and configuration.
func (s *SearchService) Stats(ctx context.Context) (domain.CorpusStats, error) {
	count, err := s.corpus.Count(ctx)
	if err != nil {
		return domain.CorpusStats{}, fmt.Errorf("count corpus: %w", err)
	}

	return domain.CorpusStats{
		TotalEmails: count,
		Collection:  s.collection,
		Model:       s.embedder.ModelName(),
	}, nil
}

// toSimilarityHit maps a raw backend hit to the exposed result shape.
// Similarity is 1 - distance; a distance of exactly 0 maps to 1, and a
// missing distance leaves Similarity nil.
func toSimilarityHit(hit driven.QueryHit) domain.SimilarityHit {
	to := hit.Metadata.To
	if to == "" {
		to = "Unknown"
	}

	var similarity *float64
	if hit.Distance != nil {
		sim := 1 - *hit.Distance
		similarity = &sim
	}

	return domain.SimilarityHit{
		Content:    hit.Content,
		To:         to,
		Subject:    hit.Metadata.Subject,
		Date:       hit.Metadata.Date,
		Similarity: similarity,
	}
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
