package domain

// MetadataFieldLimit caps the length of the recipient and subject fields
// stored alongside an embedded email.
const MetadataFieldLimit = 500

// EmailRecord represents a sent email as returned by the mail source.
// Records are immutable once fetched.
type EmailRecord struct {
	// ID is the provider-assigned message ID, unique per email.
	ID string

	// ThreadID links the email to its conversation thread.
	ThreadID string

	// To is the raw recipient header value.
	To string

	// Subject is the subject header value.
	Subject string

	// Body is the plain-text body.
	Body string

	// Date is the date header value, passed through unparsed.
	Date string
}

// DocumentMetadata is the bounded metadata stored with an embedded email.
type DocumentMetadata struct {
	// To is the recipient header, truncated to MetadataFieldLimit.
	To string

	// Subject is the subject header, truncated to MetadataFieldLimit.
	Subject string

	// Date is the date header, unmodified.
	Date string

	// ThreadID is the conversation thread ID, unmodified.
	ThreadID string
}

// Document is one embedded email held by the corpus.
// The document ID equals the EmailRecord ID; a stored document is never
// mutated or re-embedded once written.
type Document struct {
	// ID is the email ID, the corpus primary key.
	ID string

	// Text is the embedded blob: a To: line, a Subject: line, a blank
	// line, then the raw body.
	Text string

	// Embedding is the vector produced by the embedding backend.
	Embedding []float32

	// Metadata holds the bounded header fields.
	Metadata DocumentMetadata
}

// SyncStats summarises one ingestion run. It is a value result and is
// never persisted by the core.
//
// The contract with callers exposes three counters where
// Embedded + Skipped == Downloaded whenever Downloaded > 0. Internally
// the two causes of skipping are kept apart so a mail source returning
// many empty bodies is not masked behind "already indexed".
type SyncStats struct {
	// Downloaded is the number of emails fetched from the mail source.
	Downloaded int

	// Embedded is the number of documents embedded and stored.
	Embedded int

	// SkippedExisting counts emails whose ID was already in the corpus.
	SkippedExisting int

	// SkippedEmpty counts emails whose body was empty after trimming.
	SkippedEmpty int
}

// Skipped returns the merged skip counter exposed by the external
// contract.
func (s SyncStats) Skipped() int {
	return s.SkippedExisting + s.SkippedEmpty
}

// SyncRun records one completed sync for the history store.
type SyncRun struct {
	// ID is a generated run identifier.
	ID string

	// StartedAt and FinishedAt are Unix timestamps in seconds.
	StartedAt  int64
	FinishedAt int64

	// Stats is the result of the run.
	Stats SyncStats
}
