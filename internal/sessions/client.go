package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Repository supplies the full list of session records on demand.
// Implementations may be slow or fail; callers treat an error as
// "fetch failed" and keep whatever they loaded previously.
type Repository interface {
	FetchAll(ctx context.Context) ([]Record, error)
}

// Ensure Client and FileRepository implement Repository at compile time.
var (
	_ Repository = (*Client)(nil)
	_ Repository = (*FileRepository)(nil)
)

// ErrNilClient is returned when a method is called on a nil *Client.
var ErrNilClient = errors.New("client is nil")

// Client talks to the approvals HTTP API.
type Client struct {
	baseURL   *url.URL
	path      string
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL       = "127.0.0.1:8080"
	defaultSessionsPath = "/sessions"
	defaultUserAgent    = "approvals/0.1"
	defaultTimeout      = 10 * time.Second
)

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithSessionsPath overrides the endpoint path used by FetchAll.
func WithSessionsPath(path string) ClientOption {
	return func(c *Client) {
		if p := strings.TrimSpace(path); p != "" {
			c.path = p
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient builds a Client for the given base URL or host:port.
func NewClient(apiURL string, opts ...ClientOption) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		path:      defaultSessionsPath,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchAll retrieves every session record.
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, ErrNilClient
	}
	rel := &url.URL{Path: c.path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
