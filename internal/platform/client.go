package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/refineryiq/riq/internal/log"
)

// TokenSource supplies the bearer token attached to authenticated calls.
// Implementations must never fail; an empty token means the call goes out
// unauthenticated and the backend decides whether to reject it.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token
type StaticToken string

// Token returns the token string
func (s StaticToken) Token() string { return string(s) }

// Client is the RefineryIQ backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource

	logger *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTokenSource sets the source of bearer tokens for authenticated calls
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.Tokens = ts }
}

// WithLogger sets the logger used for request-level debug logging
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new backend API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Tokens: StaticToken(""),
		logger: log.Global(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs an HTTP request with authentication
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return resp, nil
}

// decode parses the response body into the target struct. Non-2xx responses
// become an APIError; the body is decoded as-is on success with no schema
// validation beyond what the static types impose.
func decode(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// newAPIError builds an APIError from a failed response, preferring the
// backend's "detail" field over the bare status text
func newAPIError(resp *http.Response) *APIError {
	message := http.StatusText(resp.StatusCode)

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}

// getJSON issues a GET and decodes the response into target
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

// postJSON issues a POST with a JSON body and decodes the response into target
func (c *Client) postJSON(ctx context.Context, path string, body, target any) error {
	resp, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

// deleteJSON issues a DELETE and decodes the response into target
func (c *Client) deleteJSON(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decode(resp, target)
}
