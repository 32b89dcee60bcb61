package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Inkwell resources.
	uriScheme = "inkwell://"

	historyResourceLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "style-guide",
		Name:        "style-guide",
		Description: "The user-authored email writing style guide",
		MIMEType:    "text/markdown",
	}, s.handleStyleGuideResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus/stats",
		Name:        "corpus-stats",
		Description: "Size and backing configuration of the sent-mail corpus",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sync/history",
		Name:        "sync-history",
		Description: "Most recent sync runs, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleStyleGuideResource serves the style guide markdown.
func (s *Server) handleStyleGuideResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.StyleGuide == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.StyleGuide.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading style guide: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		}},
	}, nil
}

// handleStatsResource serves corpus stats as JSON.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Search.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading corpus stats: %w", err)
	}

	data, err := json.MarshalIndent(StatsOutput{
		TotalEmails: stats.TotalEmails,
		Collection:  stats.Collection,
		Model:       stats.Model,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource serves recent sync runs as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runs, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing sync history: %w", err)
	}

	type runInfo struct {
		ID              string `json:"id"`
		StartedAt       int64  `json:"started_at"`
		FinishedAt      int64  `json:"finished_at"`
		Downloaded      int    `json:"downloaded"`
		Embedded        int    `json:"embedded"`
		SkippedExisting int    `json:"skipped_existing"`
		SkippedEmpty    int    `json:"skipped_empty"`
	}

	infos := make([]runInfo, len(runs))
	for i, run := range runs {
		infos[i] = runInfo{
			ID:              run.ID,
			StartedAt:       run.StartedAt,
			FinishedAt:      run.FinishedAt,
			Downloaded:      run.Stats.Downloaded,
			Embedded:        run.Stats.Embedded,
			SkippedExisting: run.Stats.SkippedExisting,
			SkippedEmpty:    run.Stats.SkippedEmpty,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sync history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
