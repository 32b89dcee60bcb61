package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleStyleGuideResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns guide content", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{content: "# My style\n\nAlways sign off with Best."}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://style-guide")
		result, err := server.handleStyleGuideResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Always sign off with Best.")
	})

	t.Run("nil store returns not found", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://style-guide")
		_, err = server.handleStyleGuideResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("missing guide returns not found", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{
			err: fmt.Errorf("%w: no style guide", domain.ErrNotFound),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://style-guide")
		_, err = server.handleStyleGuideResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		ports := testPorts()
		ports.StyleGuide = &mockStyleGuide{err: errors.New("disk error")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://style-guide")
		_, err = server.handleStyleGuideResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading style guide")
	})
}

func TestServer_handleStatsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stats as JSON", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearcher{
			stats: domain.CorpusStats{
				TotalEmails: 128,
				Collection:  "sent_emails",
				Model:       "nomic-embed-text",
			},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://corpus/stats")
		result, err := server.handleStatsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"total_emails": 128`)
		assert.Contains(t, result.Contents[0].Text, "sent_emails")
	})

	t.Run("returns error on stats failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearcher{statsErr: errors.New("count failed")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://corpus/stats")
		_, err = server.handleStatsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading corpus stats")
	})
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns recent runs", func(t *testing.T) {
		mockHist := &mockHistory{
			runs: []domain.SyncRun{
				{
					ID:         "run-2",
					StartedAt:  200,
					FinishedAt: 210,
					Stats:      domain.SyncStats{Downloaded: 5, Embedded: 5},
				},
				{
					ID:         "run-1",
					StartedAt:  100,
					FinishedAt: 140,
					Stats:      domain.SyncStats{Downloaded: 50, Embedded: 40, SkippedExisting: 10},
				},
			},
		}
		ports := testPorts()
		ports.History = mockHist
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://sync/history")
		result, err := server.handleHistoryResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "run-2")
		assert.Contains(t, result.Contents[0].Text, "run-1")
		assert.Contains(t, result.Contents[0].Text, `"skipped_existing": 10`)
		assert.Equal(t, historyResourceLimit, mockHist.lastLimit)
	})

	t.Run("nil history store returns not found", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://sync/history")
		_, err = server.handleHistoryResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		ports := testPorts()
		ports.History = &mockHistory{err: errors.New("db locked")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("inkwell://sync/history")
		_, err = server.handleHistoryResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing sync history")
	})
}
