package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var (
	styleSampleSize int
	styleJSON       bool
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Analyze your writing style from the corpus",
	Long: `Samples indexed emails and mines them for greetings, sign-offs,
sentence length, recurring phrases and representative examples.`,
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().IntVarP(&styleSampleSize, "sample", "s", 100, "number of emails to sample")
	styleCmd.Flags().BoolVar(&styleJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(styleCmd)
}

func runStyle(cmd *cobra.Command, _ []string) error {
	service, err := ensureStyleService(cmd.Context())
	if err != nil {
		return err
	}

	report, err := service.Analyze(cmd.Context(), styleSampleSize)
	if err != nil {
		return fmt.Errorf("style analysis failed: %w", err)
	}

	if styleJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputStyleText(cmd, report)
}

func outputStyleText(cmd *cobra.Command, report *domain.StyleReport) error {
	cmd.Printf("Analyzed %d emails\n\n", report.EmailsAnalyzed)

	printPatterns(cmd, "Greetings", report.Greetings)
	printPatterns(cmd, "Sign-offs", report.SignOffs)

	cmd.Printf("Sentences: %d analyzed, %.1f words on average\n\n",
		report.TotalSentencesAnalyzed, report.AvgSentenceLengthWords)

	printPhrases(cmd, "Common two-word phrases", report.CommonPhrases.TwoWord)
	printPhrases(cmd, "Common three-word phrases", report.CommonPhrases.ThreeWord)

	if len(report.SampleEmails) > 0 {
		cmd.Println("Representative emails:")
		for i, sample := range report.SampleEmails {
			cmd.Printf("  [%d] To: %s  Subject: %s\n", i+1, sample.To, sample.Subject)
		}
	}
	return nil
}

func printPatterns(cmd *cobra.Command, title string, patterns []domain.PatternCount) {
	if len(patterns) == 0 {
		return
	}
	cmd.Println(title + ":")
	for _, p := range patterns {
		cmd.Printf("  %4d  %s\n", p.Count, p.Pattern)
	}
	cmd.Println()
}

// printPhrases renders a ranked phrase list. Phrases carry no counts.
func printPhrases(cmd *cobra.Command, title string, phrases []string) {
	if len(phrases) == 0 {
		return
	}
	cmd.Println(title + ":")
	for _, p := range phrases {
		cmd.Printf("  %s\n", p)
	}
	cmd.Println()
}
