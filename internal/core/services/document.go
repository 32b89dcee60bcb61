package services

import (
	"fmt"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// BuildDocument turns a fetched email into the blob and metadata that
// will be embedded and stored. The text keeps the To: and Subject:
// headers above the body so the embedding captures who and what as well
// as content.
//
// Returns false when the body is empty after trimming; such emails are
// never embedded.
func BuildDocument(rec domain.EmailRecord) (domain.Document, bool) {
	if strings.TrimSpace(rec.Body) == "" {
		return domain.Document{}, false
	}

	return domain.Document{
		ID:   rec.ID,
		Text: fmt.Sprintf("To: %s\nSubject: %s\n\n%s", rec.To, rec.Subject, rec.Body),
		Metadata: domain.DocumentMetadata{
			To:       truncate(rec.To, domain.MetadataFieldLimit),
			Subject:  truncate(rec.Subject, domain.MetadataFieldLimit),
			Date:     rec.Date,
			ThreadID: rec.ThreadID,
		},
	}, true
}

// FilterNew returns the records whose ID is not in existing, preserving
// input order. Re-running sync with an unchanged mail source therefore
// never re-embeds a stored ID.
func FilterNew(records []domain.EmailRecord, existing map[string]struct{}) []domain.EmailRecord {
	fresh := make([]domain.EmailRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := existing[rec.ID]; !ok {
			fresh = append(fresh, rec)
		}
	}
	return fresh
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
