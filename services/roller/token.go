package roller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// tokenRefreshMargin forces a refresh this long before the token's
// actual expiry so in-flight requests never carry a token about to die.
const tokenRefreshMargin = 5 * time.Minute

// defaultTokenTTL is assumed when the provider omits expires_in.
const defaultTokenTTL = 3600

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// ensureToken returns a valid bearer token, performing a
// client-credentials exchange when the cached token is absent or within
// the refresh margin of expiry. Refreshes are serialized under the
// client mutex, so concurrent callers cannot race a shorter-lived token
// over a longer-lived one.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {"api"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with Roller API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to authenticate with Roller API: token endpoint returned %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access_token")
	}
	if token.ExpiresIn <= 0 {
		token.ExpiresIn = defaultTokenTTL
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// authorizedRequest builds a request carrying a fresh bearer token.
func (c *Client) authorizedRequest(ctx context.Context, method, endpoint string, body *strings.Reader) (*http.Request, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}
	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
