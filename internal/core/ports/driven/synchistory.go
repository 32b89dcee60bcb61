package driven

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// SyncHistoryStore persists per-run ingestion statistics.
//
// The external sync contract merges the two skip causes into one
// counter; the history store keeps them apart so data-quality issues
// (a mail source returning many empty bodies) stay visible.
type SyncHistoryStore interface {
	// Record stores one completed sync run.
	Record(ctx context.Context, run domain.SyncRun) error

	// List returns recorded runs, most recent first, up to limit.
	List(ctx context.Context, limit int) ([]domain.SyncRun, error)
}
