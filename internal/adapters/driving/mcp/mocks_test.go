package mcp

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// mockSyncService is a mock implementation of driving.SyncOrchestrator.
type mockSyncService struct {
	stats   domain.SyncStats
	err     error
	lastMax int
}

func (m *mockSyncService) Sync(
	_ context.Context,
	maxEmails int,
	_ chan<- driving.Progress,
) (domain.SyncStats, error) {
	m.lastMax = maxEmails
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

// mockStyleGuide is a mock implementation of driven.StyleGuideStore.
type mockStyleGuide struct {
	content string
	path    string
	err     error
}

func (m *mockStyleGuide) Get(_ context.Context) (string, error) {
	return m.content, m.err
}

func (m *mockStyleGuide) Path() string {
	return m.path
}

func (m *mockStyleGuide) Close() error {
	return nil
}

// mockHistory is a mock implementation of driven.SyncHistoryStore.
type mockHistory struct {
	runs      []domain.SyncRun
	err       error
	lastLimit int
}

func (m *mockHistory) Record(_ context.Context, _ domain.SyncRun) error {
	return m.err
}

func (m *mockHistory) List(_ context.Context, limit int) ([]domain.SyncRun, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

// testPorts returns a Ports with all required mocks wired.
func testPorts() *Ports {
	return &Ports{
		Sync:   &mockSyncService{},
		Search: &mockSearcher{},
		Style:  &mockStyleAnalyzer{},
	}
}
