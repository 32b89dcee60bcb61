package driven

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// QueryHit is a raw nearest-neighbour result from the corpus store.
type QueryHit struct {
	// ID is the stored document ID.
	ID string

	// Content is the stored document text.
	Content string

	// Metadata holds the stored header fields.
	Metadata domain.DocumentMetadata

	// Distance is the backend's dissimilarity metric for this hit, nil
	// when the backend reports none.
	Distance *float64
}

// CorpusStore is the persistent collection of embedded sent emails.
//
// Upserts are keyed by document ID, so re-storing an ID leaves the
// final state correct even if two syncs race; the core still avoids
// re-embedding by checking AllIDs first.
type CorpusStore interface {
	// Upsert writes documents with their embeddings in one call.
	Upsert(ctx context.Context, docs []domain.Document) error

	// AllIDs returns the set of stored document IDs.
	AllIDs(ctx context.Context) (map[string]struct{}, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Query embeds the query text and returns the nResults nearest
	// stored documents, best match first, with optional distances.
	Query(ctx context.Context, text string, nResults int) ([]QueryHit, error)

	// Sample returns up to limit stored documents in the backend's
	// default order. This is a structural sample, not a ranking.
	Sample(ctx context.Context, limit int) ([]domain.Document, error)

	// Close releases resources.
	Close() error
}
