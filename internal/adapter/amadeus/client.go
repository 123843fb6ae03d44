// Package amadeus implements the upstream collaborators against the Amadeus
// Self-Service REST API: OAuth2 token exchange, the inspirational
// flight-dates index, live flight-offers search and airline reference data.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
)

// API paths, relative to the configured base URL.
const (
	tokenPath        = "/v1/security/oauth2/token"
	flightDatesPath  = "/v1/shopping/flight-dates"
	flightOffersPath = "/v2/shopping/flight-offers"
	airlinesPath     = "/v1/reference-data/airlines"
)

// tokenExpirySlack is subtracted from the advertised token lifetime so a
// token is refreshed before it can expire mid-request.
const tokenExpirySlack = 30 * time.Second

// Config holds the settings needed to talk to the Amadeus API.
type Config struct {
	// BaseURL is the API host (e.g., https://test.api.amadeus.com)
	BaseURL string

	// ClientID and ClientSecret are the OAuth2 client credentials
	ClientID     string
	ClientSecret string

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
}

// Client is a single authenticated Amadeus API client. It implements
// domain.CandidateDateService, domain.LiveOfferService and
// domain.AirlineReferenceService.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          *logger.Logger

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewClient creates a Client. The token is acquired lazily on first use, or
// eagerly via Authenticate.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
	}
}

// Authenticate performs an eager client-credentials exchange. It exists so
// callers can fail fast before any search is attempted: no token means no
// search.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.bearer(ctx)
	return err
}

// bearer returns a valid access token, exchanging client credentials when no
// unexpired token is cached. Any exchange failure maps to ErrAuthFailed.
func (c *Client) bearer(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiry) {
		return c.token, nil
	}

	if c.clientID == "" || c.clientSecret == "" {
		return "", fmt.Errorf("%w: missing client credentials", domain.ErrAuthFailed)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: token endpoint returned %s", domain.ErrAuthFailed, resp.Status)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", domain.ErrAuthFailed, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned no access token", domain.ErrAuthFailed)
	}

	c.token = tok.AccessToken
	c.expiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySlack)

	c.log.Debug().Int("expires_in", tok.ExpiresIn).Msg("access token acquired")
	return c.token, nil
}

// getJSON performs an authenticated GET and decodes the JSON body into out.
// Non-2xx responses and transport failures come back as *domain.UpstreamError
// carrying the endpoint name; auth failures keep their ErrAuthFailed identity.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return domain.NewUpstreamError(endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewUpstreamStatusError(endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUpstreamError(endpoint, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// Compile-time checks that the client satisfies all three upstream ports.
var (
	_ domain.CandidateDateService    = (*Client)(nil)
	_ domain.LiveOfferService        = (*Client)(nil)
	_ domain.AirlineReferenceService = (*Client)(nil)
)
