package driven

import "context"

// StyleGuideStore serves the user-maintained writing style guide.
//
// The guide is free-form markdown the user edits by hand; Inkwell only
// reads it. Implementations may cache and watch the backing file.
type StyleGuideStore interface {
	// Get returns the style guide content.
	// Returns domain.ErrNotFound when no guide exists yet.
	Get(ctx context.Context) (string, error)

	// Path returns the location of the backing file, for messages that
	// tell the user where to create one.
	Path() string

	// Close releases resources (e.g., file watchers).
	Close() error
}
