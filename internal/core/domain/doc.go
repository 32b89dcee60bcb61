// Package domain defines the core business entities for Inkwell.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - EmailRecord: A sent email as fetched from the mail source
//   - Document: An embedded email held by the corpus
//   - SyncStats: The result of one ingestion run
//   - SimilarityHit: A semantic retrieval result
//   - StyleReport: The mined structural summary of past writing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
