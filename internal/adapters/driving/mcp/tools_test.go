package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

func TestServer_handleSync(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sync stats", func(t *testing.T) {
		mockSync := &mockSyncService{
			stats: domain.SyncStats{
				Downloaded:      42,
				Embedded:        30,
				SkippedExisting: 10,
				SkippedEmpty:    2,
			},
		}

		ports := testPorts()
		ports.Sync = mockSync
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSync(ctx, nil, SyncInput{MaxEmails: 100})

		require.NoError(t, err)
		assert.Equal(t, 42, output.Downloaded)
		assert.Equal(t, 30, output.Embedded)
		assert.Equal(t, 10, output.SkippedExisting)
		assert.Equal(t, 2, output.SkippedEmpty)
		assert.Equal(t, 100, mockSync.lastMax)
	})

	t.Run("default max_emails is 500", func(t *testing.T) {
		mockSync := &mockSyncService{}
		ports := testPorts()
		ports.Sync = mockSync
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSync(ctx, nil, SyncInput{})

		require.NoError(t, err)
		assert.Equal(t, defaultSyncMax, mockSync.lastMax)
	})

	t.Run("returns error on sync failure", func(t *testing.T) {
		ports := testPorts()
		ports.Sync = &mockSyncService{err: errors.New("gmail unreachable")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSync(ctx, nil, SyncInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "gmail unreachable")
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns similar emails", func(t *testing.T) {
		sim := 0.87
		mockSearch := &mockSearcher{
			hits: []domain.SimilarityHit{
				{
					To:         "alice@example.com",
					Subject:    "Quarterly review",
					Date:       "2025-03-01",
					Content:    "To: alice@example.com\nSubject: Quarterly review\n\nHi Alice,",
					Similarity: &sim,
				},
			},
		}

		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "review email", NResults: 3, Recipient: "alice"}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "alice@example.com", output.Results[0].To)
		assert.Equal(t, "Quarterly review", output.Results[0].Subject)
		require.NotNil(t, output.Results[0].Similarity)
		assert.Equal(t, 0.87, *output.Results[0].Similarity)
		assert.Equal(t, "review email", mockSearch.lastQuery)
		assert.Equal(t, 3, mockSearch.lastNResults)
		assert.Equal(t, "alice", mockSearch.lastRecipient)
	})

	t.Run("default n_results is 5", func(t *testing.T) {
		mockSearch := &mockSearcher{}
		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, defaultSearchResults, mockSearch.lastNResults)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearcher{err: errors.New("chroma down")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chroma down")
	})
}

func TestServer_handleStyle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns style report", func(t *testing.T) {
		mockStyle := &mockStyleAnalyzer{
			report: &domain.StyleReport{
				EmailsAnalyzed:         80,
				Greetings:              []domain.PatternCount{{Pattern: "Hi Alice", Count: 12}},
				SignOffs:               []domain.PatternCount{{Pattern: "Best", Count: 40}},
				AvgSentenceLengthWords: 14.2,
				TotalSentencesAnalyzed: 512,
				CommonPhrases: domain.CommonPhrases{
					TwoWord:   []string{"follow up"},
					ThreeWord: []string{"let me know"},
				},
				SampleEmails: []domain.SampleEmail{
					{To: "bob@example.com", Subject: "Re: plans", Body: "Sounds good."},
				},
			},
		}

		ports := testPorts()
		ports.Style = mockStyle
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStyle(ctx, nil, StyleInput{SampleSize: 80})

		require.NoError(t, err)
		assert.Equal(t, 80, output.EmailsAnalyzed)
		require.Len(t, output.Greetings, 1)
		assert.Equal(t, "Hi Alice", output.Greetings[0].Pattern)
		assert.Equal(t, 12, output.Greetings[0].Count)
		assert.Equal(t, 14.2, output.AvgSentenceLengthWords)
		assert.Equal(t, []string{"follow up"}, output.CommonPhrases.TwoWord)
		assert.Equal(t, []string{"let me know"}, output.CommonPhrases.ThreeWord)
		require.Len(t, output.SampleEmails, 1)
		assert.Equal(t, "bob@example.com", output.SampleEmails[0].To)
		assert.Equal(t, 80, mockStyle.lastSampleSize)
	})

	t.Run("default sample size is 100", func(t *testing.T) {
		mockStyle := &mockStyleAnalyzer{report: &domain.StyleReport{}}
		ports := testPorts()
		ports.Style = mockStyle
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleStyle(ctx, nil, StyleInput{})

		require.NoError(t, err)
		assert.Equal(t, defaultSampleSize, mockStyle.lastSampleSize)
	})

	t.Run("returns error on empty corpus", func(t *testing.T) {
		ports := testPorts()
		ports.Style = &mockStyleAnalyzer{err: domain.ErrEmptyCorpus}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleStyle(ctx, nil, StyleInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
	})
}

func TestServer_handleStats(t *testing.T) {
	ctx := context.Background()

	t.Run("returns corpus stats", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearcher{
			stats: domain.CorpusStats{
				TotalEmails: 321,
				Collection:  "sent_emails",
				Model:       "nomic-embed-text",
			},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStats(ctx, nil, struct{}{})

		require.NoError(t, err)
		assert.Equal(t, 321, output.TotalEmails)
		assert.Equal(t, "sent_emails", output.Collection)
		assert.Equal(t, "nomic-embed-text", output.Model)
	})

	t.Run("returns error on stats failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearcher{statsErr: errors.New("count failed")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleStats(ctx, nil, struct{}{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "count failed")
	})
}

func TestServer_handleStyleGuide(t *testing.T) {
	ctx := context.Background()

	t.Run("returns style guide content", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{content: "# Style\n\nKeep it short."}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStyleGuide(ctx, nil, StyleGuideInput{})

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "# Style\n\nKeep it short.", output.Content)
	})

	t.Run("missing guide returns hint instead of error", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{
			path: "/home/u/.inkwell/style_guide.md",
			err:  fmt.Errorf("%w: no style guide", domain.ErrNotFound),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStyleGuide(ctx, nil, StyleGuideInput{})

		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Contains(t, output.Content, "/home/u/.inkwell/style_guide.md")
	})

	t.Run("nil store degrades gracefully", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		_, output, err := server.handleStyleGuide(ctx, nil, StyleGuideInput{})

		require.NoError(t, err)
		assert.False(t, output.Found)
	})

	t.Run("non-notfound errors propagate", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{err: errors.New("permission denied")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleStyleGuide(ctx, nil, StyleGuideInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})
}
