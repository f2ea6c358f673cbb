package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the Serper Google search endpoint.
const DefaultEndpoint = "https://google.serper.dev/search"

// DefaultMaxResults is how many organic results a summary includes.
const DefaultMaxResults = 3

// ErrMalformedResponse is returned when the response body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed search response")

// StatusError reports a non-200 reply from the search endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("serper http %d", e.Code)
}

// Result is one organic search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Config configures a Serper client.
type Config struct {
	APIKey     string
	Endpoint   string
	MaxResults int
	Timeout    time.Duration

	// RateLimit is requests per second; zero disables pacing.
	RateLimit float64
	Burst     int
}

// Option customizes a Serper client.
type Option func(*Serper)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Serper) { s.client = c }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Serper) {
		if l != nil {
			s.logger = l
		}
	}
}

// Serper queries the Serper Google search API.
type Serper struct {
	apiKey     string
	endpoint   string
	maxResults int
	client     *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewSerper constructs a Serper provider. Zero values in cfg fall back to
// the package defaults. A missing API key is not rejected here; the endpoint
// answers with an authentication status instead.
func NewSerper(cfg Config, opts ...Option) *Serper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := &Serper{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		maxResults: cfg.MaxResults,
		client:     &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}
	if s.endpoint == "" {
		s.endpoint = DefaultEndpoint
	}
	if s.maxResults <= 0 {
		s.maxResults = DefaultMaxResults
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search posts the query and returns at most MaxResults organic results.
// Non-200 replies yield a *StatusError; undecodable bodies wrap
// ErrMalformedResponse.
func (s *Serper) Search(ctx context.Context, query string) ([]Result, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("serper rate limit: %w", err)
		}
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("search request failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	s.logger.Debug("search response",
		zap.String("query", query),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var payload struct {
		Organic []Result `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	results := payload.Organic
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results, nil
}

// Summarize runs Search and renders the outcome as plain text. It never
// fails: errors are folded into the returned digest.
func (s *Serper) Summarize(ctx context.Context, query string) string {
	results, err := s.Search(ctx, query)
	if err != nil {
		return ErrorText(err)
	}
	return Format(results)
}

// Format renders results as "- title:\n  snippet" lines.
func Format(results []Result) string {
	if len(results) == 0 {
		return "No results found."
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, "- "+r.Title+":\n  "+r.Snippet)
	}
	return strings.Join(lines, "\n")
}

// ErrorText renders a search failure as the digest shown to the model.
func ErrorText(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Search error. Status code: %d", se.Code)
	}
	return "Search error. " + err.Error()
}
