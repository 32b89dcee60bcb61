package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.SyncOrchestrator = (*SyncService)(nil)

// SyncService ingests sent emails into the corpus.
//
// One sync is expected to run at a time against a given corpus.
// Concurrent syncs may race on the dedup check and waste embedding
// work, but upsert-by-ID keeps the stored state correct.
type SyncService struct {
	source   driven.MailSource
	embedder driven.EmbeddingService
	corpus   driven.CorpusStore
	history  driven.SyncHistoryStore
}

// NewSyncService creates a new sync orchestrator.
// The history store is optional - when nil, runs are not recorded.
func NewSyncService(
	source driven.MailSource,
	embedder driven.EmbeddingService,
	corpus driven.CorpusStore,
	history driven.SyncHistoryStore,
) *SyncService {
	return &SyncService{
		source:   source,
		embedder: embedder,
		corpus:   corpus,
		history:  history,
	}
}

// Sync downloads up to maxEmails sent emails, deduplicates against the
// stored ID set, builds documents, embeds the surviving batch in one
// call and upserts it in one call.
func (s *SyncService) Sync(
	ctx context.Context, maxEmails int, progress chan<- driving.Progress,
) (domain.SyncStats, error) {
	if maxEmails <= 0 {
		return domain.SyncStats{}, fmt.Errorf("%w: max emails must be positive", domain.ErrInvalidInput)
	}

	started := time.Now()
	logger.Section("Sync")
	logger.Info("Syncing up to %d sent emails", maxEmails)

	all, err := s.fetchAll(ctx, maxEmails, progress)
	if err != nil {
		return domain.SyncStats{}, err
	}

	if len(all) == 0 {
		logger.Info("Mail source returned no emails")
		stats := domain.SyncStats{}
		s.record(ctx, started, stats)
		return stats, nil
	}

	stats := domain.SyncStats{Downloaded: len(all)}

	// Dedup against every ID the corpus currently holds. Listing the
	// full set is O(corpus size) but sync is an infrequent batch call.
	existing, err := s.corpus.AllIDs(ctx)
	if err != nil {
		return domain.SyncStats{}, fmt.Errorf("list stored ids: %w", err)
	}

	fresh := FilterNew(all, existing)
	stats.SkippedExisting = len(all) - len(fresh)
	logger.Debug("Downloaded %d, %d already stored", len(all), stats.SkippedExisting)

	docs := make([]domain.Document, 0, len(fresh))
	for _, rec := range fresh {
		doc, ok := BuildDocument(rec)
		if !ok {
			stats.SkippedEmpty++
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) > 0 {
		if err := s.embedAndStore(ctx, docs); err != nil {
			return domain.SyncStats{}, err
		}
		stats.Embedded = len(docs)
	}

	logger.Info("Sync complete: %d downloaded, %d embedded, %d skipped (%d existing, %d empty)",
		stats.Downloaded, stats.Embedded, stats.Skipped(), stats.SkippedExisting, stats.SkippedEmpty)
	s.record(ctx, started, stats)
	return stats, nil
}

// fetchAll paginates through the mail source until the cap is reached,
// a page comes back empty, or no next-page token is returned.
func (s *SyncService) fetchAll(
	ctx context.Context, maxEmails int, progress chan<- driving.Progress,
) ([]domain.EmailRecord, error) {
	var all []domain.EmailRecord
	pageToken := ""

	for len(all) < maxEmails {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageSize := maxEmails - len(all)
		if pageSize > driven.MailSourcePageCap {
			pageSize = driven.MailSourcePageCap
		}

		records, next, err := s.source.FetchSentPage(ctx, int64(pageSize), pageToken)
		if err != nil {
			return nil, fmt.Errorf("fetch sent page: %w", err)
		}
		if len(records) == 0 {
			break
		}

		all = append(all, records...)
		logger.Debug("Fetched page of %d (total %d)", len(records), len(all))
		emitProgress(progress, driving.Progress{Accumulated: len(all), Max: maxEmails})

		if next == "" {
			break
		}
		pageToken = next
	}

	return all, nil
}

// embedAndStore embeds the batch in a single backend call and upserts
// the resulting documents in a single store call.
func (s *SyncService) embedAndStore(ctx context.Context, docs []domain.Document) error {
	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("embed batch: got %d embeddings for %d documents", len(embeddings), len(docs))
	}
	for i := range docs {
		docs[i].Embedding = embeddings[i]
	}

	if err := s.corpus.Upsert(ctx, docs); err != nil {
		return fmt.Errorf("store documents: %w", err)
	}
	return nil
}

// record writes the run to the history store. History is best effort
// and never fails the sync.
func (s *SyncService) record(ctx context.Context, started time.Time, stats domain.SyncStats) {
	if s.history == nil {
		return
	}

	run := domain.SyncRun{
		ID:         uuid.New().String(),
		StartedAt:  started.Unix(),
		FinishedAt: time.Now().Unix(),
		Stats:      stats,
	}
	if err := s.history.Record(ctx, run); err != nil {
		logger.Warn("Failed to record sync run: %v", err)
	}
}

// emitProgress sends a progress event without ever blocking the sync
// loop. A consumer that lags simply misses intermediate events.
func emitProgress(ch chan<- driving.Progress, p driving.Progress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
	}
}
