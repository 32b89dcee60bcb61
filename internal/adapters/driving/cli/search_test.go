package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

func TestSearchCmd_Text(t *testing.T) {
	sim := 0.91
	searcher := &mockSearcher{
		hits: []domain.SimilarityHit{
			{
				To:         "alice@example.com",
				Subject:    "Quarterly review",
				Date:       "2025-03-01",
				Similarity: &sim,
			},
		},
	}
	searchService = searcher

	out, err := execute(t, "search", "review email", "-n", "3", "--to", "alice")

	require.NoError(t, err)
	assert.Contains(t, out, "Quarterly review")
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "91%")
	assert.Equal(t, "review email", searcher.lastQuery)
	assert.Equal(t, 3, searcher.lastNResults)
	assert.Equal(t, "alice", searcher.lastRecipient)
}

func TestSearchCmd_JSON(t *testing.T) {
	searchService = &mockSearcher{
		hits: []domain.SimilarityHit{{Subject: "Hello", To: "bob@example.com"}},
	}

	out, err := execute(t, "search", "hello", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"Subject": "Hello"`)
}

func TestSearchCmd_NoResults(t *testing.T) {
	searchService = &mockSearcher{}

	out, err := execute(t, "search", "anything", "--json=false")

	require.NoError(t, err)
	assert.Contains(t, out, "No similar emails found.")
}

func TestSearchCmd_Error(t *testing.T) {
	searchService = &mockSearcher{err: errors.New("chroma down")}

	_, err := execute(t, "search", "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chroma down")
}
