package services

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// --- Shared mock implementations for service tests ---

// mockMailSource implements driven.MailSource, serving fixed pages in
// order and recording the page sizes requested.
type mockMailSource struct {
	pages     [][]domain.EmailRecord
	requested []int64
	calls     int
	err       error
}

func (m *mockMailSource) FetchSentPage(
	_ context.Context, maxResults int64, _ string,
) ([]domain.EmailRecord, string, error) {
	m.requested = append(m.requested, maxResults)
	if m.err != nil {
		return nil, "", m.err
	}
	if m.calls >= len(m.pages) {
		return nil, "", nil
	}

	page := m.pages[m.calls]
	if int64(len(page)) > maxResults {
		page = page[:maxResults]
	}
	m.calls++

	next := ""
	if m.calls < len(m.pages) {
		next = "page-token"
	}
	return page, next, nil
}

// reset rewinds the source so the same pages can be served again.
func (m *mockMailSource) reset() {
	m.calls = 0
	m.requested = nil
}

// mockEmbedder implements driven.EmbeddingService with deterministic
// two-dimensional vectors.
type mockEmbedder struct {
	batches    [][]string
	embedCalls int
	err        error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedCalls++
	if m.err != nil {
		return nil, m.err
	}
	return []float32{float32(len(text)), 1}, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batches = append(m.batches, texts)
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = []float32{float32(len(text)), 1}
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int              { return 2 }
func (m *mockEmbedder) ModelName() string            { return "test-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// mockCorpus implements driven.CorpusStore in memory, preserving
// insertion order for Sample.
type mockCorpus struct {
	docs  map[string]domain.Document
	order []string

	queryHits   []driven.QueryHit
	queryCalls  int
	queryLimits []int

	upsertCalls int

	allIDsErr error
	countErr  error
	queryErr  error
	upsertErr error
	sampleErr error
}

func newMockCorpus() *mockCorpus {
	return &mockCorpus{docs: make(map[string]domain.Document)}
}

func (m *mockCorpus) Upsert(_ context.Context, docs []domain.Document) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, doc := range docs {
		if _, ok := m.docs[doc.ID]; !ok {
			m.order = append(m.order, doc.ID)
		}
		m.docs[doc.ID] = doc
	}
	return nil
}

func (m *mockCorpus) AllIDs(_ context.Context) (map[string]struct{}, error) {
	if m.allIDsErr != nil {
		return nil, m.allIDsErr
	}
	ids := make(map[string]struct{}, len(m.docs))
	for id := range m.docs {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (m *mockCorpus) Count(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.order), nil
}

func (m *mockCorpus) Query(_ context.Context, _ string, nResults int) ([]driven.QueryHit, error) {
	m.queryCalls++
	m.queryLimits = append(m.queryLimits, nResults)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	hits := m.queryHits
	if len(hits) > nResults {
		hits = hits[:nResults]
	}
	return hits, nil
}

func (m *mockCorpus) Sample(_ context.Context, limit int) ([]domain.Document, error) {
	if m.sampleErr != nil {
		return nil, m.sampleErr
	}
	docs := make([]domain.Document, 0, limit)
	for _, id := range m.order {
		if len(docs) == limit {
			break
		}
		docs = append(docs, m.docs[id])
	}
	return docs, nil
}

func (m *mockCorpus) Close() error { return nil }

// addStored seeds the corpus with a document, bypassing sync.
func (m *mockCorpus) addStored(doc domain.Document) {
	if _, ok := m.docs[doc.ID]; !ok {
		m.order = append(m.order, doc.ID)
	}
	m.docs[doc.ID] = doc
}
