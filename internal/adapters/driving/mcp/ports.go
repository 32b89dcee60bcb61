package mcp

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ports aggregates the interfaces the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sync ingests sent mail into the corpus.
	Sync driving.SyncOrchestrator

	// Search answers nearest-neighbour queries over the corpus.
	Search driving.SimilaritySearcher

	// Style mines the corpus for writing patterns.
	Style driving.StyleAnalyzer

	// StyleGuide serves the user-authored style guide, if one exists.
	StyleGuide driven.StyleGuideStore

	// History records past sync runs. Optional.
	History driven.SyncHistoryStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Sync == nil {
		return ErrMissingSyncService
	}
	if p.Search == nil {
		return ErrMissingSearcher
	}
	if p.Style == nil {
		return ErrMissingStyleAnalyzer
	}
	// StyleGuide and History are optional; their tools and resources
	// degrade gracefully when absent.
	return nil
}
