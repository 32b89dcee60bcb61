package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Authorize runs the one-time interactive consent flow: it opens the
// user's browser at the Google consent page, receives the redirect on a
// localhost callback, exchanges the code and writes token.json.
//
// The URL is also printed so the flow still works when the browser
// cannot be launched (e.g. over SSH).
func Authorize(ctx context.Context, credentialsPath, tokenPath string) error {
	config, err := loadClientConfig(credentialsPath)
	if err != nil {
		return err
	}

	state := uuid.New().String()
	server := newCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop() //nolint:errcheck

	config.RedirectURL = server.RedirectURI()

	verifier := oauth2.GenerateVerifier()
	authURL := config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	logger.Info("Opening browser for Gmail authorization...")
	logger.Info("If it does not open, visit:\n\n  %s\n", authURL)
	if err := openBrowser(authURL); err != nil {
		logger.Warn("Could not open browser: %v", err)
	}

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return fmt.Errorf("authorization: %w", err)
	}

	token, err := config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := SaveToken(tokenPath, token); err != nil {
		return err
	}

	logger.Info("Authorization complete, token saved to %s", tokenPath)
	return nil
}
