package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// mockSyncOrchestrator is a mock implementation of driving.SyncOrchestrator.
type mockSyncOrchestrator struct {
	stats   domain.SyncStats
	err     error
	lastMax int
}

func (m *mockSyncOrchestrator) Sync(
	_ context.Context,
	maxEmails int,
	progress chan<- driving.Progress,
) (domain.SyncStats, error) {
	m.lastMax = maxEmails
	if progress != nil {
		progress <- driving.Progress{Accumulated: m.stats.Downloaded, Max: maxEmails}
	}
	return m.stats, m.err
}

// mockSearcher is a mock implementation of driving.SimilaritySearcher.
type mockSearcher struct {
	hits     []domain.SimilarityHit
	stats    domain.CorpusStats
	err      error
	statsErr error

	lastQuery     string
	lastNResults  int
	lastRecipient string
}

func (m *mockSearcher) FindSimilar(
	_ context.Context,
	query string,
	nResults int,
	recipientFilter string,
) ([]domain.SimilarityHit, error) {
	m.lastQuery = query
	m.lastNResults = nResults
	m.lastRecipient = recipientFilter
	return m.hits, m.err
}

func (m *mockSearcher) Stats(_ context.Context) (domain.CorpusStats, error) {
	return m.stats, m.statsErr
}

// mockStyleAnalyzer is a mock implementation of driving.StyleAnalyzer.
type mockStyleAnalyzer struct {
	report         *domain.StyleReport
	err            error
	lastSampleSize int
}

func (m *mockStyleAnalyzer) Analyze(_ context.Context, sampleSize int) (*domain.StyleReport, error) {
	m.lastSampleSize = sampleSize
	return m.report, m.err
}

// execute runs the root command with the given args and returns the
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetServices()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
