package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.TokenProvider = (*Provider)(nil)

// Scopes requested from Gmail. Reading sent mail is all the corpus
// needs.
var Scopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
}

// Provider serves valid access tokens from a stored token file,
// refreshing through the OAuth client config when expired. Refreshed
// tokens are persisted back so the refresh survives restarts.
type Provider struct {
	credentialsPath string
	tokenPath       string

	mu    sync.Mutex
	token *oauth2.Token
}

// NewProvider creates a token provider over the given credential and
// token file paths. Neither file is read until first use.
func NewProvider(credentialsPath, tokenPath string) *Provider {
	return &Provider{
		credentialsPath: credentialsPath,
		tokenPath:       tokenPath,
	}
}

// GetToken returns a valid access token, refreshing if needed.
func (p *Provider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token == nil {
		token, err := loadToken(p.tokenPath)
		if err != nil {
			return "", err
		}
		p.token = token
	}

	if p.token.Valid() {
		return p.token.AccessToken, nil
	}

	if p.token.RefreshToken == "" {
		return "", fmt.Errorf("%w: stored token expired and has no refresh token", domain.ErrAuthRequired)
	}

	config, err := loadClientConfig(p.credentialsPath)
	if err != nil {
		return "", err
	}

	refreshed, err := config.TokenSource(ctx, p.token).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}
	logger.Debug("Refreshed Gmail access token, expires %s", refreshed.Expiry)

	p.token = refreshed
	if err := SaveToken(p.tokenPath, refreshed); err != nil {
		// A failed write is not fatal for this call; the next run will
		// refresh again.
		logger.Warn("Failed to persist refreshed token: %v", err)
	}

	return refreshed.AccessToken, nil
}

// IsAuthenticated reports whether a stored token exists. The token may
// still need a refresh on first use.
func (p *Provider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != nil {
		return true
	}
	token, err := loadToken(p.tokenPath)
	if err != nil {
		return false
	}
	p.token = token
	return true
}

// loadToken reads an oauth2 token from disk.
func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no token at %s, run 'inkwell auth' first", domain.ErrAuthRequired, path)
		}
		return nil, fmt.Errorf("read token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}
	return &token, nil
}

// SaveToken writes an oauth2 token to disk with restricted permissions.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// loadClientConfig reads the OAuth client credentials downloaded from
// Google Cloud Console.
func loadClientConfig(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(
				"%w: OAuth client credentials not found at %s "+
					"(create a Desktop app OAuth client in Google Cloud Console and download its JSON)",
				domain.ErrAuthRequired, path)
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	config, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	return config, nil
}
