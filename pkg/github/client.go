// Package github fetches a user's public profile, repositories, events and
// contribution calendar from the GitHub REST API and a third-party
// contributions endpoint.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/apicache"
)

const (
	defaultBaseURL          = "https://api.github.com"
	defaultContributionsURL = "https://github-contributions-api.jogruber.de/v4"
	defaultCacheTTL         = 5 * time.Minute

	perPage       = 100
	maxRepoPages  = 10
	maxEventPages = 3 // 100 events/page * 3 = 300, GitHub's platform cap
)

// Client talks to the GitHub REST API with a time-boxed response cache and
// rate-limit bookkeeping. Methods never retry: a failure comes back as a
// classified *Error and the caller decides what to do.
type Client struct {
	logger           *slog.Logger
	httpClient       *http.Client
	cache            *apicache.Cache
	now              func() time.Time
	baseURL          string
	contributionsURL string
	token            string
	cacheTTL         time.Duration
	rateRemaining    int
	rateReset        time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token used for GitHub requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURL points the client at a different API host (tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithContributionsBaseURL points the client at a different contributions
// host (tests).
func WithContributionsBaseURL(baseURL string) Option {
	return func(c *Client) { c.contributionsURL = strings.TrimSuffix(baseURL, "/") }
}

// WithClock injects the clock used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithCacheTTL overrides the 5 minute response-cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

// NewClient creates a client. The zero configuration talks to the public
// API anonymously with a 5 minute response cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		logger:           slog.Default(),
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		now:              time.Now,
		baseURL:          defaultBaseURL,
		contributionsURL: defaultContributionsURL,
		cacheTTL:         defaultCacheTTL,
		rateRemaining:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = apicache.New(c.cacheTTL, c.now, c.logger)
	return c
}

// SetToken replaces the bearer token. The whole response cache is dropped
// when the auth state changes, since the token is part of cache-key
// semantics.
func (c *Client) SetToken(token string) {
	token = strings.TrimSpace(token)
	if token == c.token {
		return
	}
	c.token = token
	c.cache.InvalidateAll()
}

// RateLimitRemaining returns the last rate-limit-remaining value seen on
// the wire, or -1 when no response carried one yet.
func (c *Client) RateLimitRemaining() int { return c.rateRemaining }

// RateLimitReset returns when the current rate-limit window resets.
func (c *Client) RateLimitReset() time.Time { return c.rateReset }

func (c *Client) authState() string {
	if c.token != "" {
		return "auth"
	}
	return "anon"
}

// request performs a GET against the GitHub API, or against an absolute
// URL as-is. Cache hits younger than the TTL return without a network
// call; non-2xx statuses come back as a classified *Error. Absolute URLs
// are treated as external hosts: no auth header, auth-independent cache
// key.
func (c *Client) request(ctx context.Context, endpoint string) ([]byte, error) {
	external := strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://")
	apiURL := endpoint
	if !external {
		apiURL = c.baseURL + endpoint
	}

	cacheKey := endpoint + "#" + c.authState()
	if external {
		cacheKey = endpoint + "#anon"
	}
	if data, ok := c.cache.Get(cacheKey); ok {
		c.logger.Debug("cache hit", "endpoint", endpoint)
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" && !external {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{
			Kind:               ErrKindNetwork,
			RateLimitRemaining: c.rateRemaining,
			Message:            fmt.Sprintf("request to %s failed: %v", endpoint, err),
		}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", "error", err)
		}
	}()

	c.recordRateLimit(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classify(resp.StatusCode, c.rateRemaining, apiMessage(body, resp.StatusCode))
	}

	c.cache.Set(cacheKey, body)
	return body, nil
}

func (c *Client) recordRateLimit(resp *http.Response) {
	if v := resp.Header.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.rateRemaining = n
		}
	}
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.rateReset = time.Unix(n, 0)
		}
	}
}

// apiMessage pulls the "message" field out of a GitHub error body, falling
// back to a generic status line.
func apiMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("GitHub API returned status %d", status)
}
