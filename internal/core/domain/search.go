package domain

// SimilarityHit is a single semantic retrieval result, ordered best
// match first by the corpus backend's native ranking.
type SimilarityHit struct {
	// Content is the stored document text (headers plus body).
	Content string

	// To is the stored recipient metadata, "Unknown" when absent.
	To string

	// Subject is the stored subject metadata.
	Subject string

	// Date is the stored date metadata.
	Date string

	// Similarity is 1 - distance when the backend reports a distance
	// for the hit, nil otherwise. A distance of exactly 0 yields 1.
	Similarity *float64
}

// CorpusStats describes the current state of the corpus.
type CorpusStats struct {
	// TotalEmails is the number of stored documents.
	TotalEmails int

	// Collection is the backing collection name.
	Collection string

	// Model is the embedding model name.
	Model string
}
