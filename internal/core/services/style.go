package services

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure StyleService implements the interface.
var _ driving.StyleAnalyzer = (*StyleService)(nil)

// greetingPrefixes classify the first non-empty body line as a
// greeting. Entries ending in a space require a following word.
var greetingPrefixes = []string{
	"hi ", "hey ", "hello ", "dear ", "good ",
	"morning", "afternoon", "evening",
}

// signOffPhrases classify a closing line. A line matches when its
// lowercase form, trailing commas and periods stripped, starts with or
// equals a phrase.
var signOffPhrases = []string{
	"best", "thanks", "thank you", "regards", "cheers",
	"kind regards", "best regards", "many thanks", "sincerely",
	"yours", "warm regards", "take care",
}

// bigramStoplist drops semantically empty two-word combinations from
// the ranked phrase output.
var bigramStoplist = map[string]struct{}{
	"i am": {}, "it is": {}, "this is": {}, "that is": {},
	"we are": {}, "you are": {}, "i have": {}, "to the": {},
	"in the": {}, "of the": {}, "and the": {}, "for the": {},
}

// Phrase mining thresholds.
const (
	phraseRawScan     = 30 // raw-ranked candidates inspected
	phraseKeep        = 10 // ranked phrases kept after filtering
	phraseMinCount    = 3  // frequency must exceed 2
	minSentenceLength = 10 // trimmed fragments this short are noise
	signOffScanDepth  = 5  // closing lines inspected per email
)

// wordPattern extracts alphabetic-only word tokens.
var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// sentenceSplitter splits body text on runs of sentence terminators.
var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// StyleService mines structural writing patterns from stored emails.
type StyleService struct {
	corpus driven.CorpusStore
	rng    *rand.Rand
}

// NewStyleService creates a new style analyzer.
func NewStyleService(corpus driven.CorpusStore) *StyleService {
	return &StyleService{
		corpus: corpus,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the randomness source used for representative
// sample selection. Useful for deterministic tests.
func (s *StyleService) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// sampledEmail pairs an extracted body with its stored metadata.
type sampledEmail struct {
	to      string
	subject string
	body    string
}

// Analyze draws a bounded sample of stored emails and mines greeting,
// sign-off, sentence-length and phrase patterns from their bodies.
func (s *StyleService) Analyze(ctx context.Context, sampleSize int) (*domain.StyleReport, error) {
	if sampleSize < 1 {
		return nil, fmt.Errorf("%w: sample size must be at least 1", domain.ErrInvalidInput)
	}

	logger.Section("Style Analysis")

	count, err := s.corpus.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count corpus: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	limit := sampleSize
	if limit > count {
		limit = count
	}

	docs, err := s.corpus.Sample(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("sample corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	logger.Debug("Sampled %d of %d stored emails", len(docs), count)

	emails := make([]sampledEmail, 0, len(docs))
	for _, doc := range docs {
		body := extractBody(doc.Text)
		if strings.TrimSpace(body) == "" {
			continue
		}
		emails = append(emails, sampledEmail{
			to:      doc.Metadata.To,
			subject: doc.Metadata.Subject,
			body:    body,
		})
	}
	if len(emails) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	bodies := make([]string, len(emails))
	for i := range emails {
		bodies[i] = emails[i].body
	}

	avgLen, sentences := sentenceStats(bodies)
	twoWord, threeWord := minePhrases(bodies)

	report := &domain.StyleReport{
		EmailsAnalyzed:         len(emails),
		Greetings:              rankPatterns(countGreetings(bodies)),
		SignOffs:               rankPatterns(countSignOffs(bodies)),
		AvgSentenceLengthWords: avgLen,
		TotalSentencesAnalyzed: sentences,
		CommonPhrases: domain.CommonPhrases{
			TwoWord:   twoWord,
			ThreeWord: threeWord,
		},
		SampleEmails: s.pickSamples(emails),
	}

	logger.Info("Analyzed %d emails: %d greetings, %d sign-offs, %d sentences",
		report.EmailsAnalyzed, len(report.Greetings), len(report.SignOffs), sentences)
	return report, nil
}

// extractBody splits stored text on the first blank line and returns
// the part after it. Malformed documents without a blank line are
// treated as all body rather than discarded.
func extractBody(text string) string {
	if _, body, found := strings.Cut(text, "\n\n"); found {
		return body
	}
	return text
}

// countGreetings tallies greeting tokens across bodies. The recorded
// token is the first non-empty line up to the first comma, which
// approximates a salutation without the addressee name variability.
func countGreetings(bodies []string) map[string]int {
	counts := make(map[string]int)
	for _, body := range bodies {
		line := firstNonEmptyLine(body)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		for _, prefix := range greetingPrefixes {
			if strings.HasPrefix(lower, prefix) {
				token, _, _ := strings.Cut(line, ",")
				counts[strings.TrimSpace(token)]++
				break
			}
		}
	}
	return counts
}

// countSignOffs tallies sign-off lines. At most one sign-off counts per
// email: scanning the last signOffScanDepth non-empty lines in original
// order, the first match wins.
func countSignOffs(bodies []string) map[string]int {
	counts := make(map[string]int)
	for _, body := range bodies {
		lines := nonEmptyLines(body)
		if len(lines) > signOffScanDepth {
			lines = lines[len(lines)-signOffScanDepth:]
		}

		for _, line := range lines {
			if matchSignOff(line) {
				counts[strings.TrimRight(line, ",.")]++
				break
			}
		}
	}
	return counts
}

// matchSignOff reports whether the line opens with a known sign-off
// phrase, ignoring case and trailing commas or periods.
func matchSignOff(line string) bool {
	lower := strings.TrimRight(strings.ToLower(line), ",.")
	for _, phrase := range signOffPhrases {
		if lower == phrase || strings.HasPrefix(lower, phrase) {
			return true
		}
	}
	return false
}

// sentenceStats returns the mean word count across kept sentences and
// the number of sentences kept. Trimmed fragments no longer than
// minSentenceLength characters are excluded as noise.
func sentenceStats(bodies []string) (float64, int) {
	totalWords := 0
	totalSentences := 0

	for _, body := range bodies {
		for _, fragment := range sentenceSplitter.Split(body, -1) {
			fragment = strings.TrimSpace(fragment)
			if len(fragment) <= minSentenceLength {
				continue
			}
			totalWords += len(strings.Fields(fragment))
			totalSentences++
		}
	}

	if totalSentences == 0 {
		return 0, 0
	}
	return float64(totalWords) / float64(totalSentences), totalSentences
}

// minePhrases builds sliding-window word n-grams over the lowercased
// concatenation of all bodies and returns the ranked two- and
// three-word phrase lists.
func minePhrases(bodies []string) (twoWord, threeWord []string) {
	combined := strings.ToLower(strings.Join(bodies, " "))
	tokens := wordPattern.FindAllString(combined, -1)

	bigrams := make(map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		bigrams[tokens[i]+" "+tokens[i+1]]++
	}

	trigrams := make(map[string]int)
	for i := 0; i+2 < len(tokens); i++ {
		trigrams[tokens[i]+" "+tokens[i+1]+" "+tokens[i+2]]++
	}

	twoWord = topPhrases(bigrams, bigramStoplist)
	threeWord = topPhrases(trigrams, nil)
	return twoWord, threeWord
}

// topPhrases scans the phraseRawScan highest-frequency candidates,
// drops stoplisted entries and those at or below the frequency floor,
// and keeps the phraseKeep best.
func topPhrases(counts map[string]int, stoplist map[string]struct{}) []string {
	ranked := rankCounts(counts)
	if len(ranked) > phraseRawScan {
		ranked = ranked[:phraseRawScan]
	}

	kept := make([]string, 0, phraseKeep)
	for _, pc := range ranked {
		if pc.Count < phraseMinCount {
			continue
		}
		if stoplist != nil {
			if _, stopped := stoplist[pc.Pattern]; stopped {
				continue
			}
		}
		kept = append(kept, pc.Pattern)
		if len(kept) == phraseKeep {
			break
		}
	}
	return kept
}

// pickSamples selects representative emails: the shortest, median and
// longest bodies as fixed anchors plus up to two more drawn uniformly
// at random, capped at domain.StyleSampleLimit total.
func (s *StyleService) pickSamples(emails []sampledEmail) []domain.SampleEmail {
	order := make([]int, len(emails))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(emails[order[a]].body) < len(emails[order[b]].body)
	})

	selected := make(map[int]struct{})
	n := len(order)
	for _, anchor := range []int{0, n / 2, n - 1} {
		selected[anchor] = struct{}{}
	}

	remaining := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if _, ok := selected[i]; !ok {
			remaining = append(remaining, i)
		}
	}
	s.rng.Shuffle(len(remaining), func(a, b int) {
		remaining[a], remaining[b] = remaining[b], remaining[a]
	})
	for i := 0; i < len(remaining) && i < 2; i++ {
		selected[remaining[i]] = struct{}{}
	}

	positions := make([]int, 0, len(selected))
	for pos := range selected {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	if len(positions) > domain.StyleSampleLimit {
		positions = positions[:domain.StyleSampleLimit]
	}

	samples := make([]domain.SampleEmail, 0, len(positions))
	for _, pos := range positions {
		email := emails[order[pos]]
		samples = append(samples, domain.SampleEmail{
			To:      truncate(email.to, domain.StyleSampleHeaderLimit),
			Subject: truncate(email.subject, domain.StyleSampleHeaderLimit),
			Body:    truncate(email.body, domain.StyleSampleBodyLimit),
		})
	}
	return samples
}

// rankPatterns orders a tally by count descending (ties lexicographic)
// and caps the list at domain.StyleRankedListLimit.
func rankPatterns(counts map[string]int) []domain.PatternCount {
	ranked := rankCounts(counts)
	if len(ranked) > domain.StyleRankedListLimit {
		ranked = ranked[:domain.StyleRankedListLimit]
	}
	return ranked
}

// rankCounts converts a tally to a deterministic ranked slice.
func rankCounts(counts map[string]int) []domain.PatternCount {
	ranked := make([]domain.PatternCount, 0, len(counts))
	for pattern, count := range counts {
		ranked = append(ranked, domain.PatternCount{Pattern: pattern, Count: count})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Count != ranked[b].Count {
			return ranked[a].Count > ranked[b].Count
		}
		return ranked[a].Pattern < ranked[b].Pattern
	})
	return ranked
}

// firstNonEmptyLine returns the first line with non-whitespace content.
func firstNonEmptyLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// nonEmptyLines returns all trimmed lines with content, in order.
func nonEmptyLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
