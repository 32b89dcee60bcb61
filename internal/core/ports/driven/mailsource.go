package driven

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// MailSourcePageCap is the largest page the mail source backend accepts
// per request. The sync orchestrator never asks for more.
const MailSourcePageCap = 500

// MailSource fetches a user's sent emails page by page.
//
// Authentication, pagination mechanics and wire format belong to the
// implementation. The core treats any returned error as fatal for the
// current sync call; no retry is performed here.
type MailSource interface {
	// FetchSentPage returns up to maxResults sent emails starting at
	// pageToken. An empty pageToken requests the first page. The
	// returned token is empty when no further page exists.
	FetchSentPage(ctx context.Context, maxResults int64, pageToken string) ([]domain.EmailRecord, string, error)
}
