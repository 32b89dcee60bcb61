package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

const (
	defaultSyncMax       = 500
	defaultSearchResults = 5
	defaultSampleSize    = 100
)

// SyncInput is the input schema for the sync_sent_emails tool.
type SyncInput struct {
	MaxEmails int `json:"max_emails,omitempty" jsonschema:"maximum number of sent emails to fetch (default 500)"`
}

// SyncOutput is the output schema for the sync_sent_emails tool.
type SyncOutput struct {
	Downloaded      int `json:"downloaded"`
	Embedded        int `json:"embedded"`
	SkippedExisting int `json:"skipped_existing"`
	SkippedEmpty    int `json:"skipped_empty"`
}

// SearchInput is the input schema for the find_similar_emails tool.
type SearchInput struct {
	Query     string `json:"query" jsonschema:"text describing the email you want to find precedents for"`
	NResults  int    `json:"n_results,omitempty" jsonschema:"maximum number of similar emails to return (default 5)"`
	Recipient string `json:"recipient,omitempty" jsonschema:"only return emails whose To header contains this substring"`
}

// SearchOutput is the output schema for the find_similar_emails tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single similar email.
type SearchResultOutput struct {
	To         string   `json:"to"`
	Subject    string   `json:"subject"`
	Date       string   `json:"date"`
	Content    string   `json:"content"`
	Similarity *float64 `json:"similarity,omitempty"`
}

// StyleInput is the input schema for the analyze_style tool.
type StyleInput struct {
	SampleSize int `json:"sample_size,omitempty" jsonschema:"number of emails to sample from the corpus (default 100)"`
}

// StyleOutput is the output schema for the analyze_style tool.
type StyleOutput struct {
	EmailsAnalyzed         int                 `json:"emails_analyzed"`
	Greetings              []PatternOutput     `json:"greetings"`
	SignOffs               []PatternOutput     `json:"sign_offs"`
	AvgSentenceLengthWords float64             `json:"avg_sentence_length_words"`
	TotalSentencesAnalyzed int                 `json:"total_sentences_analyzed"`
	CommonPhrases          CommonPhrasesOutput `json:"common_phrases"`
	SampleEmails           []SampleOutput      `json:"sample_emails"`
}

// PatternOutput is a mined pattern with its occurrence count.
type PatternOutput struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

// CommonPhrasesOutput holds ranked two and three word phrases. Phrase
// lists are ranked but carry no counts.
type CommonPhrasesOutput struct {
	TwoWord   []string `json:"two_word"`
	ThreeWord []string `json:"three_word"`
}

// SampleOutput is a representative email from the corpus.
type SampleOutput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// StatsOutput is the output schema for the corpus_stats tool.
type StatsOutput struct {
	TotalEmails int    `json:"total_emails"`
	Collection  string `json:"collection"`
	Model       string `json:"model"`
}

// StyleGuideInput is the input schema for the get_style_guide tool.
type StyleGuideInput struct{}

// StyleGuideOutput is the output schema for the get_style_guide tool.
type StyleGuideOutput struct {
	Found   bool   `json:"found"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sync_sent_emails",
		Description: "Download sent emails from Gmail, embed the new ones, and add them to the local corpus",
	}, s.handleSync)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_similar_emails",
		Description: "Find past sent emails most similar to a query. Use this to ground a draft in how the user has written before",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_style",
		Description: "Mine the sent-mail corpus for greetings, sign-offs, sentence length, and common phrases",
	}, s.handleStyle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_stats",
		Description: "Report how many emails are indexed, and which collection and embedding model back the corpus",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_style_guide",
		Description: "Get the user-authored email style guide. Read this before drafting to match preferred tone and sign-offs",
	}, s.handleStyleGuide)
}

// handleSync handles the sync_sent_emails tool invocation.
func (s *Server) handleSync(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SyncInput,
) (*mcp.CallToolResult, SyncOutput, error) {
	maxEmails := input.MaxEmails
	if maxEmails <= 0 {
		maxEmails = defaultSyncMax
	}

	stats, err := s.ports.Sync.Sync(ctx, maxEmails, nil)
	if err != nil {
		return nil, SyncOutput{}, err
	}

	return nil, SyncOutput{
		Downloaded:      stats.Downloaded,
		Embedded:        stats.Embedded,
		SkippedExisting: stats.SkippedExisting,
		SkippedEmpty:    stats.SkippedEmpty,
	}, nil
}

// handleSearch handles the find_similar_emails tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	nResults := input.NResults
	if nResults <= 0 {
		nResults = defaultSearchResults
	}

	hits, err := s.ports.Search.FindSimilar(ctx, input.Query, nResults, input.Recipient)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(hits)),
		Count:   len(hits),
	}
	for i := range hits {
		output.Results[i] = SearchResultOutput{
			To:         hits[i].To,
			Subject:    hits[i].Subject,
			Date:       hits[i].Date,
			Content:    hits[i].Content,
			Similarity: hits[i].Similarity,
		}
	}

	return nil, output, nil
}

// handleStyle handles the analyze_style tool invocation.
func (s *Server) handleStyle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StyleInput,
) (*mcp.CallToolResult, StyleOutput, error) {
	sampleSize := input.SampleSize
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	report, err := s.ports.Style.Analyze(ctx, sampleSize)
	if err != nil {
		return nil, StyleOutput{}, err
	}

	return nil, toStyleOutput(report), nil
}

// handleStats handles the corpus_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Search.Stats(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	return nil, StatsOutput{
		TotalEmails: stats.TotalEmails,
		Collection:  stats.Collection,
		Model:       stats.Model,
	}, nil
}

// handleStyleGuide handles the get_style_guide tool invocation.
func (s *Server) handleStyleGuide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StyleGuideInput,
) (*mcp.CallToolResult, StyleGuideOutput, error) {
	if s.ports.StyleGuide == nil {
		return nil, StyleGuideOutput{
			Found:   false,
			Content: "No style guide is configured.",
		}, nil
	}

	content, err := s.ports.StyleGuide.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, StyleGuideOutput{
			Found: false,
			Content: fmt.Sprintf(
				"No style guide found at %s\n\nCreate a markdown file with your email writing preferences, including tone, templates, and sign-off preferences.",
				s.ports.StyleGuide.Path(),
			),
		}, nil
	}
	if err != nil {
		return nil, StyleGuideOutput{}, err
	}

	return nil, StyleGuideOutput{Found: true, Content: content}, nil
}

func toStyleOutput(report *domain.StyleReport) StyleOutput {
	return StyleOutput{
		EmailsAnalyzed:         report.EmailsAnalyzed,
		Greetings:              toPatternOutputs(report.Greetings),
		SignOffs:               toPatternOutputs(report.SignOffs),
		AvgSentenceLengthWords: report.AvgSentenceLengthWords,
		TotalSentencesAnalyzed: report.TotalSentencesAnalyzed,
		CommonPhrases: CommonPhrasesOutput{
			TwoWord:   report.CommonPhrases.TwoWord,
			ThreeWord: report.CommonPhrases.ThreeWord,
		},
		SampleEmails: toSampleOutputs(report.SampleEmails),
	}
}

func toPatternOutputs(patterns []domain.PatternCount) []PatternOutput {
	out := make([]PatternOutput, len(patterns))
	for i, p := range patterns {
		out[i] = PatternOutput{Pattern: p.Pattern, Count: p.Count}
	}
	return out
}

func toSampleOutputs(samples []domain.SampleEmail) []SampleOutput {
	out := make([]SampleOutput, len(samples))
	for i, s := range samples {
		out[i] = SampleOutput{To: s.To, Subject: s.Subject, Body: s.Body}
	}
	return out
}
