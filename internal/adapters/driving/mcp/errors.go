// Package mcp provides an MCP (Model Context Protocol) server adapter for Inkwell.
// It lets AI assistants query the sent-mail corpus, trigger syncs, and read the
// user's writing style without shelling out to the CLI.
package mcp

import "errors"

// ErrMissingSyncService is returned when the sync service is not provided.
var ErrMissingSyncService = errors.New("mcp: sync service is required")

// ErrMissingSearcher is returned when the similarity searcher is not provided.
var ErrMissingSearcher = errors.New("mcp: similarity searcher is required")

// ErrMissingStyleAnalyzer is returned when the style analyzer is not provided.
var ErrMissingStyleAnalyzer = errors.New("mcp: style analyzer is required")
