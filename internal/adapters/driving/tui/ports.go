package tui

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Search answers nearest-neighbour queries over the corpus.
	Search driving.SimilaritySearcher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearcher
	}
	return nil
}
