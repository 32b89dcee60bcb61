package domain

// Limits applied when assembling a StyleReport.
const (
	// StyleRankedListLimit caps the ranked greeting and sign-off lists.
	StyleRankedListLimit = 10

	// StyleSampleLimit caps the representative sample set.
	StyleSampleLimit = 5

	// StyleSampleHeaderLimit truncates sample To/Subject fields.
	StyleSampleHeaderLimit = 100

	// StyleSampleBodyLimit truncates sample bodies.
	StyleSampleBodyLimit = 1000
)

// PatternCount is a mined pattern with its occurrence count.
type PatternCount struct {
	// Pattern is the recorded text, e.g. "Hi Alice" or "Best regards".
	Pattern string

	// Count is how many sampled emails used the pattern.
	Count int
}

// CommonPhrases holds frequency-ranked word n-grams mined from bodies.
type CommonPhrases struct {
	// TwoWord is the ranked list of two-word phrases.
	TwoWord []string

	// ThreeWord is the ranked list of three-word phrases.
	ThreeWord []string
}

// SampleEmail is one representative email included in a StyleReport.
type SampleEmail struct {
	// To is the recipient, truncated to StyleSampleHeaderLimit.
	To string

	// Subject is the subject, truncated to StyleSampleHeaderLimit.
	Subject string

	// Body is the body text, truncated to StyleSampleBodyLimit.
	Body string
}

// StyleReport is the mined structural summary of a user's past writing.
// It is computed fresh from a sample drawn at call time and never
// persisted.
type StyleReport struct {
	// EmailsAnalyzed is the number of sampled emails with a body.
	EmailsAnalyzed int

	// Greetings are ranked greeting patterns, most frequent first.
	Greetings []PatternCount

	// SignOffs are ranked sign-off patterns, most frequent first.
	SignOffs []PatternCount

	// AvgSentenceLengthWords is the mean word count across all kept
	// sentences, 0 when no sentence qualified.
	AvgSentenceLengthWords float64

	// TotalSentencesAnalyzed is the number of kept sentences.
	TotalSentencesAnalyzed int

	// CommonPhrases holds the mined two- and three-word phrases.
	CommonPhrases CommonPhrases

	// SampleEmails is the representative sample set, at most
	// StyleSampleLimit entries.
	SampleEmails []SampleEmail
}
