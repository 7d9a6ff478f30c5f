package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 2 << 20
)

// Client implements domain.MovieRepository against the OMDb HTTP API.
// Requests are never retried; callers decide on fallbacks.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option customises a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit limits outgoing requests to rps per second with the given burst.
// rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new OMDb API client
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  logger.With("component", "omdb"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET against the API root with the given parameters.
// Transport failures map to ErrUnavailable and non-2xx answers to ErrHTTPStatus.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	logged := query.Encode()
	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("omdb request", "query", logged)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Error("omdb request failed", "query", logged, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUnavailable, err)
	}

	c.logger.Debug("omdb response",
		"query", logged,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := statusMessage(resp.StatusCode, body)
		c.logger.Warn("omdb request error", "status", resp.StatusCode, "message", msg, "query", logged)
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAPIKey, msg)
		}
		return nil, fmt.Errorf("%w %d: %s", domain.ErrHTTPStatus, resp.StatusCode, msg)
	}

	return body, nil
}

// statusMessage extracts the Error field of an error body, if any
func statusMessage(code int, body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return http.StatusText(code)
}

// Search returns one page of titles matching q.Term
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return nil, errors.New("search term is required")
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("s", term)
	query.Set("page", strconv.Itoa(page))
	if q.Year > 0 {
		query.Set("y", strconv.Itoa(q.Year))
	}

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	result, err := parseSearch(body, page)
	if err != nil {
		c.logger.Debug("search rejected", "term", term, "page", page, "error", err)
		return nil, err
	}

	c.logger.Debug("search complete", "term", term, "page", page, "results", len(result.Movies), "total", result.TotalResults)
	return result, nil
}

// Lookup returns the full record for a title, including the full plot
func (c *Client) Lookup(ctx context.Context, id string) (*domain.MovieDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("title id is required")
	}

	query := url.Values{}
	query.Set("i", id)
	query.Set("plot", "full")

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	return parseDetail(body)
}

var _ domain.MovieRepository = (*Client)(nil)
