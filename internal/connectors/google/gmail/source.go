package gmail

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"

	"github.com/inkwell-labs/inkwell-cli/internal/connectors/google"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.MailSource = (*Source)(nil)

// gmailUser is the special user ID meaning "the authenticated user".
const gmailUser = "me"

// sentLabel selects messages in the sent folder.
const sentLabel = "SENT"

// Source fetches sent emails through the Gmail API. Every API call
// passes the rate limiter first; a 429 from Google feeds its
// Retry-After hint back into the limiter.
type Source struct {
	service *gmail.Service
	limiter *google.RateLimiter
}

// NewSource creates a sent-mail source over an authenticated Gmail
// service.
func NewSource(service *gmail.Service) *Source {
	return &Source{
		service: service,
		limiter: google.NewRateLimiter(),
	}
}

// FetchSentPage lists one page of sent message IDs and fetches each
// message in full. Returns the records, the next page token (empty on
// the last page) and an error.
func (s *Source) FetchSentPage(
	ctx context.Context, maxResults int64, pageToken string,
) ([]domain.EmailRecord, string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	call := s.service.Users.Messages.List(gmailUser).
		LabelIds(sentLabel).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		s.recordIfRateLimited(err)
		return nil, "", fmt.Errorf("list sent messages: %w", google.WrapError(err))
	}
	logger.Debug("Listed %d sent message refs (next token %q)", len(resp.Messages), resp.NextPageToken)

	records := make([]domain.EmailRecord, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, "", err
		}

		msg, err := s.service.Users.Messages.Get(gmailUser, ref.Id).
			Format("full").
			Context(ctx).
			Do()
		if err != nil {
			s.recordIfRateLimited(err)
			return nil, "", fmt.Errorf("get message %s: %w", ref.Id, google.WrapError(err))
		}

		records = append(records, recordFromMessage(msg))
	}

	return records, resp.NextPageToken, nil
}

// recordIfRateLimited feeds 429 responses back into the limiter so the
// next call backs off.
func (s *Source) recordIfRateLimited(err error) {
	if google.IsRateLimited(err) {
		logger.Warn("Gmail rate limit hit, backing off")
		s.limiter.RecordRateLimitError(0)
	}
}
