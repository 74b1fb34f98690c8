package pixhaven

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pixhaven/pixctl/auth"
)

// DefaultTimeout is the per-request cancellation timer.
const DefaultTimeout = 30 * time.Second

const contentTypeJSON = "application/json"

// Client is a PixHaven API client.
type Client struct {
	baseURL    string
	store      auth.Store
	httpClient *http.Client
	logger     zerolog.Logger
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new PixHaven client. The credential store is read-only
// from the client's perspective; pass auth.StaticStore(nil) when no
// credential is available.
func NewClient(baseURL string, store auth.Store, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: server URL is required", ErrInvalidConfig)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: credential store is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      store,
		httpClient: &http.Client{},
		logger:     logger,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the configured server address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// execute performs a single request and returns the raw response body.
// Every failure comes back as an *APIError: the timeout timer, unreachable
// network, non-2xx statuses, and everything else are classified here so
// callers never see raw transport errors.
func (c *Client) execute(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	// Arm the cancellation timer. The deferred cancel releases it on every
	// exit path, success included.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)

	if token, ok := c.store.Get(auth.TokenKey); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := classify(err)
		c.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("url", requestURL).
			Str("kind", apiErr.Kind.String()).
			Msg("Request failed before a response was received")
		return nil, apiErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := httpStatusError(resp.StatusCode, respBody)
		c.logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("url", requestURL).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("Request failed with error status")
		return nil, apiErr
	}

	return respBody, nil
}

// executeJSON performs a request and decodes the 2xx response body into out.
// Pass a nil out to discard the body.
func (c *Client) executeJSON(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string, out any) error {
	respBody, err := c.execute(ctx, method, endpoint, query, body, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return decodeError(err)
	}
	return nil
}

// jsonBody encodes v as a JSON request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
