package driving

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// Progress is one event on a sync progress stream, emitted after each
// fetched page.
type Progress struct {
	// Accumulated is the number of emails fetched so far.
	Accumulated int

	// Max is the requested email cap for this sync.
	Max int
}

// SyncOrchestrator drives ingestion of sent emails into the corpus.
type SyncOrchestrator interface {
	// Sync downloads up to maxEmails sent emails, filters out those
	// already stored or with empty bodies, embeds the remainder in one
	// batch and upserts them into the corpus.
	//
	// progress may be nil. When set, a Progress event is sent after
	// each page; sends never block - events are dropped if the
	// consumer lags. Cancel a long sync through ctx.
	//
	// Failures from the mail source, embedding backend or corpus store
	// propagate as-is; no retry is performed.
	Sync(ctx context.Context, maxEmails int, progress chan<- Progress) (domain.SyncStats, error)
}
