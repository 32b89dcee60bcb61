package driving

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// StyleAnalyzer mines structural writing patterns from stored emails.
type StyleAnalyzer interface {
	// Analyze draws min(sampleSize, corpus size) stored emails and
	// returns the mined style report. Returns domain.ErrEmptyCorpus
	// when the corpus holds no documents, the sample comes back empty,
	// or no sampled document contains a body.
	Analyze(ctx context.Context, sampleSize int) (*domain.StyleReport, error)
}
