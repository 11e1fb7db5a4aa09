// Package api is the typed client for the AI Risk Council REST API.
//
// One shared Client carries every request: it owns the base URL, a fixed
// request timeout, and the cookie jar that transports the server-set
// HttpOnly session cookie. Application code never reads cookie values; it
// only persists the jar between invocations so the session survives.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/log"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// defaultTimeout bounds every request; a timed-out request surfaces as the
// uniform network error.
const defaultTimeout = 15 * time.Second

// Client is the AI Risk Council API client.
type Client struct {
	baseURL    string
	base       *url.URL
	httpClient *http.Client
	logger     *log.Logger

	// onSessionInvalid is invoked when any non-auth request comes back 401.
	// The transport layer never decides what to do about an expired session;
	// the single registered listener owns that.
	onSessionInvalid func()
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithSessionInvalidHook registers the listener notified on session expiry.
func WithSessionInvalidHook(fn func()) Option {
	return func(c *Client) {
		c.onSessionInvalid = fn
	}
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeConfigInvalid, fmt.Sprintf("invalid API URL: %s", baseURL), err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to create cookie jar", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    base,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Jar:       jar,
			Transport: &stampingTransport{base: http.DefaultTransport},
		},
		logger: log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Cookies returns the session cookies currently held for the API host.
// Values are opaque; they are only ever persisted and restored verbatim.
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.base)
}

// SetCookies restores previously persisted session cookies.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.httpClient.Jar.SetCookies(c.base, cookies)
}

// ClearCookies drops every stored cookie, ending the local session.
func (c *Client) ClearCookies() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	c.httpClient.Jar = jar
}

// stampingTransport stamps every outgoing request with a client timestamp
// and a request id. Both are debugging aids; the server does not depend on
// either header.
type stampingTransport struct {
	base http.RoundTripper
}

func (t *stampingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Time", time.Now().UTC().Format(time.RFC3339Nano))
	clone.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(clone)
}

// envelope is the uniform response shape used by every endpoint.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

func (e *envelope) pagination() query.Pagination {
	return query.Pagination{
		Total:      e.Total,
		Page:       e.Page,
		Limit:      e.Limit,
		TotalPages: e.TotalPages,
	}
}

// authPath reports whether the path belongs to the auth endpoints. A 401
// from these is an expected outcome (anonymous visitor, bad credentials)
// and must not announce session expiry; this is the loop guard.
func authPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}

// do performs a request and returns the decoded envelope.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (*envelope, error) {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to create request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.Canceled {
			// Superseded or abandoned request; callers suppress this.
			return nil, cerrors.Wrap(cerrors.ErrCodeRequestCancelled, "request cancelled", err)
		}
		// No response reached the client: dial failure, timeout, reset.
		return nil, cerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerrors.NewNetworkError(err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-JSON bodies; the envelope stays zero and the
		// status code drives the outcome.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if authPath(path) {
			// Pass through so the login flow can inspect the message
			// (e.g. the pending-approval sub-case).
			return nil, &Error{Status: resp.StatusCode, Message: env.Message}
		}
		if c.onSessionInvalid != nil {
			c.onSessionInvalid()
		}
		return nil, cerrors.NewSessionExpiredError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 403/422/5xx pass through unchanged; calling code decides UI.
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, cerrors.New(cerrors.ErrCodeUnexpectedData, msg)
	}

	return &env, nil
}

// doJSON performs a JSON request and unmarshals the envelope data into out.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to marshal request body", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	env, err := c.do(ctx, method, path, q, body, contentType)
	if err != nil {
		return err
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeUnexpectedData, "failed to decode response data", err)
		}
	}
	return nil
}

// decodeData unmarshals envelope data into out.
func decodeData(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeUnexpectedData, "failed to decode response data", err)
	}
	return nil
}

// list fetches one page of a listed resource. Implemented once; every
// resource module delegates here with its own item type.
func list[T any](ctx context.Context, c *Client, path string, p query.Params) (query.Page[T], error) {
	env, err := c.do(ctx, http.MethodGet, path, p.Values(), nil, "")
	if err != nil {
		return query.Page[T]{}, err
	}

	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return query.Page[T]{}, cerrors.Wrap(cerrors.ErrCodeUnexpectedData, "failed to decode list data", err)
		}
	}

	return query.Page[T]{Items: items, Pagination: env.pagination()}, nil
}
