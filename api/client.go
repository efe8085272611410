package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second

	// DefaultBaseURL is the Merriam-Webster references endpoint.
	DefaultBaseURL = "https://www.dictionaryapi.com/api/v3/references"

	defaultRate  = rate.Limit(10)
	defaultBurst = 5
)

// Reference names a Merriam-Webster reference product.
type Reference string

const (
	Collegiate Reference = "collegiate"
	Thesaurus  Reference = "thesaurus"
)

// Client is the Merriam-Webster API client.
type Client struct {
	baseURL       string
	dictionaryKey string
	thesaurusKey  string
	httpClient    *http.Client
	limiter       *rate.Limiter
	cache         *ResponseCache
	logger        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithCache serves repeated lookups from cache.
func WithCache(cache *ResponseCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRateLimit limits outgoing requests to r per second with the given burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(r, burst) }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new Merriam-Webster API client. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL, dictionaryKey, thesaurusKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		dictionaryKey: dictionaryKey,
		thesaurusKey:  thesaurusKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// keyFor returns the API key for a reference.
func (c *Client) keyFor(ref Reference) string {
	if ref == Thesaurus {
		return c.thesaurusKey
	}
	return c.dictionaryKey
}

// Get fetches the raw JSON response for word from the given reference.
func (c *Client) Get(ctx context.Context, ref Reference, word string) ([]byte, error) {
	key := c.keyFor(ref)
	if key == "" {
		return nil, &MissingKeyError{Reference: ref}
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(ref, word); ok {
			c.logger.Debug().Str("reference", string(ref)).Str("word", word).Msg("cache hit")
			return body, nil
		}
	}

	body, err := c.do(ctx, ref, word, key)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(ref, word, body)
	}
	return body, nil
}

// do executes a GET request and returns the response body.
func (c *Client) do(ctx context.Context, ref Reference, word, key string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/json/%s?key=%s",
		c.baseURL, ref, url.PathEscape(word), url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("reference", string(ref)).
		Str("word", word).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	// Handle error responses. The API reports some failures, such as an
	// invalid key, as a 200 with a plain-text or HTML body.
	if resp.StatusCode >= 400 || !gjson.ValidBytes(respBody) {
		return nil, newAPIError(ref, resp.StatusCode, respBody)
	}

	return respBody, nil
}
