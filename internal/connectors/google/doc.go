// Package google provides shared infrastructure for the Gmail
// connector:
//
//   - TokenSource adapter to bridge Inkwell's TokenProvider to
//     oauth2.TokenSource
//   - Service factory for creating the Gmail API client
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewGmailService(ctx, ts)
//
// # OAuth2 Scopes
//
// Reading the sent-mail corpus needs only:
//   - https://www.googleapis.com/auth/gmail.readonly (restricted)
//
// For user-created internal apps, restricted scopes don't require
// verification.
package google
