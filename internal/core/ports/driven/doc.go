// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MailSource: Paginated fetch of sent emails
//   - EmbeddingService: Generates vector embeddings
//   - CorpusStore: Embedded email persistence and nearest-neighbour query
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SyncHistoryStore: Per-run ingestion statistics
//   - StyleGuideStore: User-maintained writing style guide
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
