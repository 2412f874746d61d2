package api

// Package api is the outbound request path to the finance REST API. It
// attaches credentials, applies the configured timeout, and normalizes every
// failure into *Error. It never retries and never reacts to a rejected
// credential itself; that decision belongs to the caller.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	headerSubscriptionKey = "X-WSO2-ApiKey"
	headerRequestID       = "X-Request-ID"

	defaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of an error response is read for a message.
	maxErrorBody = 64 << 10
)

// TokenSource supplies the current bearer token; empty means logged out.
// The session store satisfies this, so every request observes the live
// session without the client holding its own copy.
type TokenSource interface {
	Token() string
}

// Options groups dependencies for Client.
type Options struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout is the fixed per-request timeout.
	Timeout time.Duration

	// SubscriptionKey, when set, is sent as X-WSO2-ApiKey on every request.
	SubscriptionKey string

	// Tokens supplies the bearer token. Optional; nil means unauthenticated.
	Tokens TokenSource

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client is the uniform outbound request path.
type Client struct {
	baseURL string
	subKey  string
	tokens  TokenSource
	http    *http.Client
	logger  *slog.Logger
}

// NewClient constructs a Client. Callers should pass a sanitized config.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		subKey:  opts.SubscriptionKey,
		tokens:  opts.Tokens,
		http:    hc,
		logger:  logger,
	}, nil
}

// Get issues a GET and decodes the JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// Download is a fetched binary response.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download fetches a binary endpoint, extracting the filename from the
// Content-Disposition header when the server provides one.
func (c *Client) Download(ctx context.Context, path string) (*Download, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read download: %v", err)}
	}

	d := &Download{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}
	if dispo := resp.Header.Get("Content-Disposition"); dispo != "" {
		if _, params, parseErr := mime.ParseMediaType(dispo); parseErr == nil {
			d.Filename = params["filename"]
		}
	}
	return d, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: fmt.Sprintf("read response: %v", err)}
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// do executes the request and returns the response on 2xx. Every other
// outcome is mapped to *Error.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if c.subKey != "" {
		req.Header.Set(headerSubscriptionKey, c.subKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(err)
	}

	c.logger.Debug("api",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp)
	}
	return resp, nil
}

// networkError maps a transport failure to the uniform failure result.
func networkError(err error) *Error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &Error{Code: "timeout", Message: "request timed out"}
	}
	return &Error{Code: "network_error", Message: "network error: " + err.Error()}
}

// serverErrorBody is the error envelope the backend uses; either field may
// carry the display message.
type serverErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func errorFromResponse(resp *http.Response) *Error {
	defer closeBody(resp)

	apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body serverErrorBody
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Code = body.Code
	}
	return apiErr
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
