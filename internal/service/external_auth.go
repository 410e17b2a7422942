package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ProviderIdentity is the identity payload the session-exchange provider
// returns for a valid session id.
type ProviderIdentity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// providerClient calls the external session-exchange provider: a GET to a
// fixed URL carrying the caller-supplied session id in the X-Session-ID
// header. Any failure collapses into ErrExternalAuthFailure.
type providerClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewProviderClient creates a session exchanger with a bounded timeout
func NewProviderClient(url string, timeout time.Duration, logger *zap.Logger) SessionExchanger {
	return &providerClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (p *providerClient) Exchange(ctx context.Context, sessionID string) (*ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("Session exchange request failed", zap.Error(err))
		return nil, fmt.Errorf("provider request failed: %w", ErrExternalAuthFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Error("Session exchange returned non-2xx", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("provider returned status %d: %w", resp.StatusCode, ErrExternalAuthFailure)
	}

	var identity ProviderIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		p.logger.Error("Session exchange body malformed", zap.Error(err))
		return nil, fmt.Errorf("malformed provider response: %w", ErrExternalAuthFailure)
	}

	if identity.Email == "" || identity.SessionToken == "" {
		return nil, fmt.Errorf("provider response missing email or session token: %w", ErrExternalAuthFailure)
	}

	return &identity, nil
}
