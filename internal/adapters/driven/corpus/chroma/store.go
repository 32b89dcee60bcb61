package chroma

import (
	"context"
	"fmt"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "http://localhost:8000"
	DefaultCollection = "sent_emails"
)

// idPageSize is the page size used when listing all stored IDs.
const idPageSize = 1000

// includeDistances asks the server for query distances. chroma-go
// defines no constant for it, but the v2 API accepts the value.
const includeDistances = chroma.Include("distances")

// Metadata keys stored with each document.
const (
	metaTo       = "to"
	metaSubject  = "subject"
	metaDate     = "date"
	metaThreadID = "thread_id"
)

// Config holds configuration for the Chroma corpus store.
type Config struct {
	// BaseURL is the Chroma server URL (default: http://localhost:8000).
	BaseURL string

	// Collection is the collection name (default: sent_emails).
	Collection string
}

// Store is a corpus store backed by a single Chroma collection.
type Store struct {
	client     chroma.Client
	collection chroma.Collection
	embedder   driven.EmbeddingService
}

// NewStore connects to the Chroma server and opens or creates the
// configured collection. The embedder computes query vectors; stored
// documents carry their own embeddings.
func NewStore(ctx context.Context, cfg Config, embedder driven.EmbeddingService) (*Store, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := chroma.NewHTTPClient(chroma.WithBaseURL(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("create chroma client: %w", err)
	}

	collection, err := client.GetOrCreateCollection(ctx, cfg.Collection)
	if err != nil {
		return nil, fmt.Errorf("open collection %q: %w", cfg.Collection, err)
	}
	logger.Debug("Opened chroma collection %q at %s", cfg.Collection, cfg.BaseURL)

	return &Store{
		client:     client,
		collection: collection,
		embedder:   embedder,
	}, nil
}

// Upsert writes documents with their precomputed embeddings in a single
// call. Re-writing an existing ID overwrites it in place.
func (s *Store) Upsert(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	ids := make([]chroma.DocumentID, len(docs))
	texts := make([]string, len(docs))
	vectors := make([]embeddings.Embedding, len(docs))
	metadatas := make([]chroma.DocumentMetadata, len(docs))

	for i, doc := range docs {
		ids[i] = chroma.DocumentID(doc.ID)
		texts[i] = doc.Text
		vectors[i] = embeddings.NewEmbeddingFromFloat32(doc.Embedding)

		metadata, err := chroma.NewDocumentMetadataFromMap(map[string]interface{}{
			metaTo:       doc.Metadata.To,
			metaSubject:  doc.Metadata.Subject,
			metaDate:     doc.Metadata.Date,
			metaThreadID: doc.Metadata.ThreadID,
		})
		if err != nil {
			return fmt.Errorf("build metadata for %s: %w", doc.ID, err)
		}
		metadatas[i] = metadata
	}

	err := s.collection.Upsert(
		ctx,
		chroma.WithIDs(ids...),
		chroma.WithTexts(texts...),
		chroma.WithEmbeddings(vectors...),
		chroma.WithMetadatas(metadatas...),
	)
	if err != nil {
		return fmt.Errorf("upsert %d documents: %w", len(docs), err)
	}
	return nil
}

// AllIDs pages through the collection and returns the full set of
// stored document IDs.
func (s *Store) AllIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	for offset := 0; ; offset += idPageSize {
		result, err := s.collection.Get(
			ctx,
			chroma.WithLimitGet(idPageSize),
			chroma.WithOffsetGet(offset),
		)
		if err != nil {
			return nil, fmt.Errorf("list ids at offset %d: %w", offset, err)
		}

		page := result.GetIDs()
		if len(page) == 0 {
			break
		}
		for _, id := range page {
			ids[string(id)] = struct{}{}
		}
		if len(page) < idPageSize {
			break
		}
	}

	return ids, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	count, err := s.collection.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count collection: %w", err)
	}
	return count, nil
}

// Query embeds the text locally and runs a vector query, returning the
// nResults nearest documents best match first.
func (s *Store) Query(ctx context.Context, text string, nResults int) ([]driven.QueryHit, error) {
	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	result, err := s.collection.Query(
		ctx,
		chroma.WithQueryEmbeddings(embeddings.NewEmbeddingFromFloat32(vector)),
		chroma.WithNResults(nResults),
		chroma.WithIncludeQuery(chroma.IncludeDocuments, chroma.IncludeMetadatas, includeDistances),
	)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}
	if result == nil || result.CountGroups() == 0 {
		return []driven.QueryHit{}, nil
	}

	// One query vector means one result group.
	idGroups := result.GetIDGroups()
	if len(idGroups) == 0 {
		return []driven.QueryHit{}, nil
	}
	ids := idGroups[0]

	var documents []chroma.Document
	if groups := result.GetDocumentsGroups(); len(groups) > 0 {
		documents = groups[0]
	}
	var metadatas []chroma.DocumentMetadata
	if groups := result.GetMetadatasGroups(); len(groups) > 0 {
		metadatas = groups[0]
	}
	var distances []embeddings.Distance
	if groups := result.GetDistancesGroups(); len(groups) > 0 {
		distances = groups[0]
	}

	hits := make([]driven.QueryHit, 0, len(ids))
	for i, id := range ids {
		hit := driven.QueryHit{ID: string(id)}
		if i < len(documents) && documents[i] != nil {
			hit.Content = documents[i].ContentString()
		}
		if i < len(metadatas) && metadatas[i] != nil {
			hit.Metadata = toDomainMetadata(metadatas[i])
		}
		if i < len(distances) {
			distance := float64(distances[i])
			hit.Distance = &distance
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

// Sample returns up to limit stored documents in the backend's default
// order. Embeddings are not fetched.
func (s *Store) Sample(ctx context.Context, limit int) ([]domain.Document, error) {
	result, err := s.collection.Get(
		ctx,
		chroma.WithLimitGet(limit),
		chroma.WithIncludeGet(chroma.IncludeDocuments, chroma.IncludeMetadatas),
	)
	if err != nil {
		return nil, fmt.Errorf("sample collection: %w", err)
	}

	ids := result.GetIDs()
	documents := result.GetDocuments()
	metadatas := result.GetMetadatas()

	docs := make([]domain.Document, 0, len(ids))
	for i, id := range ids {
		doc := domain.Document{ID: string(id)}
		if i < len(documents) && documents[i] != nil {
			doc.Text = documents[i].ContentString()
		}
		if i < len(metadatas) && metadatas[i] != nil {
			doc.Metadata = toDomainMetadata(metadatas[i])
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Close releases the HTTP client.
func (s *Store) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("close chroma client: %w", err)
	}
	return nil
}

// toDomainMetadata maps stored Chroma metadata back to the domain
// shape. Missing keys map to empty strings.
func toDomainMetadata(metadata chroma.DocumentMetadata) domain.DocumentMetadata {
	out := domain.DocumentMetadata{}
	if v, ok := metadata.GetString(metaTo); ok {
		out.To = v
	}
	if v, ok := metadata.GetString(metaSubject); ok {
		out.Subject = v
	}
	if v, ok := metadata.GetString(metaDate); ok {
		out.Date = v
	}
	if v, ok := metadata.GetString(metaThreadID); ok {
		out.ThreadID = v
	}
	return out
}
