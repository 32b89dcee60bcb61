// Package auth manages Gmail OAuth credentials on disk.
//
// Two files live in the inkwell config directory:
//
//   - credentials.json: the OAuth client downloaded from Google Cloud
//     Console (Desktop app client ID)
//   - token.json: the user's access and refresh tokens, written after
//     the interactive consent flow
//
// Provider serves fresh access tokens from token.json, refreshing and
// re-persisting transparently. Flow runs the one-time interactive
// consent in the browser via a localhost callback.
package auth
