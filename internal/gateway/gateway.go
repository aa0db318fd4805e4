// Package gateway is the single path from the dashboard to the REST backend.
// It injects the caller's bearer token and converts field names between the
// camelCase used by the dashboard and the snake_case used on the wire.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/metrics"
)

// Request one call to the backend. Path is relative to the base URL unless it is absolute.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   Payload
}

// Client sends requests to the backend
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenProvider
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics sets the Prometheus collectors
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the backend at baseURL
func New(baseURL string, tokens TokenProvider, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must be absolute", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("gateway: nil token provider")
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends an authenticated request and returns the raw response.
// A missing session aborts before anything is sent. The caller owns the
// response body and decides what a non-2xx status means.
func (c *Client) Do(ctx context.Context, req Request) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSession) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNoSession, err)
	}
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	return c.send(ctx, req, token)
}

// Public sends a request without a bearer token. Only sign-in uses it.
func (c *Client) Public(ctx context.Context, req Request) (*http.Response, error) {
	return c.send(ctx, req, "")
}

func (c *Client) send(ctx context.Context, req Request, token string) (*http.Response, error) {
	target, err := c.resolve(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	var body io.Reader
	if req.Body != nil {
		var contentType string
		body, contentType, err = req.Body.encode()
		if err != nil {
			return nil, err
		}
		// Replaces any caller-supplied type: a multipart body needs its own boundary.
		header.Set("Content-Type", contentType)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	httpReq.Header = header
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveUpstream(method, 0, elapsed)
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", httpReq.URL.Path),
			zap.Duration("latency", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	c.metrics.ObserveUpstream(method, resp.StatusCode, elapsed)
	c.logger.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", httpReq.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
	)
	return resp, nil
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	var u *url.URL
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("parse upstream url: %w", err)
		}
		u = parsed
	} else {
		u = c.baseURL.JoinPath(path)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
