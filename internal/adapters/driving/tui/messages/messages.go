// Package messages defines the messages passed between TUI models.
package messages

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// SearchCompleted carries similarity results back to the model.
type SearchCompleted struct {
	Query string
	Hits  []domain.SimilarityHit
	Err   error
}

// SyncProgressed reports how far a running sync has got.
type SyncProgressed struct {
	Accumulated int
	Max         int
}

// SyncFinished signals that a sync run has ended.
type SyncFinished struct {
	Stats domain.SyncStats
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
