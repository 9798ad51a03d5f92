// Package roller is the client for the Roller reservation provider. It
// owns the client-credentials token lifecycle and the availability and
// booking calls, with a deterministic fallback when the provider is
// unreachable and fallback mode is enabled.
package roller

import (
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Config carries the provider endpoints and credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	AuthURL      string
	// Timeout bounds every provider round-trip. A hung provider resolves
	// through the fallback path instead of stalling the chat turn.
	Timeout time.Duration
	// FallbackEnabled gates the mock responses returned on provider
	// outage. Disable in production so failures are never silently
	// masked as successful bookings.
	FallbackEnabled bool
}

// Client talks to the Roller API. Safe for concurrent use; the cached
// access token is the only shared state and is mutex-protected.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient builds a Roller client from the given config.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}
