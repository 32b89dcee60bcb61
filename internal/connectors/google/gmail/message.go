// Package gmail implements the sent-mail source on the Gmail API.
package gmail

import (
	"encoding/base64"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// recordFromMessage converts a fully fetched Gmail message to an
// EmailRecord. Header values pass through raw; absent headers map to
// empty strings.
func recordFromMessage(msg *gmail.Message) domain.EmailRecord {
	record := domain.EmailRecord{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
	}
	if msg.Payload == nil {
		return record
	}

	record.To = headerValue(msg.Payload.Headers, "To")
	record.Subject = headerValue(msg.Payload.Headers, "Subject")
	record.Date = headerValue(msg.Payload.Headers, "Date")
	record.Body = extractBody(msg.Payload)
	return record
}

// headerValue returns the first header with the given name,
// case-insensitively.
func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if strings.EqualFold(header.Name, name) {
			return header.Value
		}
	}
	return ""
}

// extractBody walks the MIME tree and returns the first plain-text
// part. Messages that only carry a text/html part fall back to the
// stripped HTML text, so HTML-only senders are not indexed as empty.
func extractBody(part *gmail.MessagePart) string {
	if body := findPart(part, "text/plain"); body != "" {
		return body
	}
	if body := findPart(part, "text/html"); body != "" {
		return htmlToText(body)
	}
	return ""
}

// findPart searches the MIME tree depth-first for a part of the given
// type and returns its decoded body. Single-part messages carry the
// body on the payload itself.
func findPart(part *gmail.MessagePart, mimeType string) string {
	if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}

	for _, child := range part.Parts {
		if body := findPart(child, mimeType); body != "" {
			return body
		}
	}

	return ""
}

// decodeBody decodes the base64url message data. Gmail omits padding,
// so trailing '=' is stripped before raw decoding.
func decodeBody(data string) string {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(decoded)
}
