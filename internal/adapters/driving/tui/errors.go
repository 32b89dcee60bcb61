// Package tui provides the interactive terminal interface for Inkwell,
// built on Bubbletea following the Elm architecture.
package tui

import "errors"

// ErrMissingSearcher is returned when the similarity searcher is not provided.
var ErrMissingSearcher = errors.New("tui: similarity searcher is required")
