// Package fetch retrieves third-party HTML pages for metadata extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultUserAgent identifies the pipeline to the sites it scrapes.
const DefaultUserAgent = "tcshows/1.0 (+https://github.com/s0rta/tcshows)"

// Result holds the raw content of a fetched page.
type Result struct {
	URL        string
	HTML       string
	StatusCode int
}

// Error describes a failure fetching a single page.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures page fetching.
type Options struct {
	UserAgent string
	Headers   map[string]string
	// Client lets callers substitute a configured http.Client (tests, or a
	// client with a timeout). The default client applies no timeout and
	// follows redirects up to the net/http ten-hop limit.
	Client *http.Client
}

// DefaultOptions returns the options used by the build pipeline.
func DefaultOptions() *Options {
	return &Options{UserAgent: DefaultUserAgent}
}

// Client fetches pages one at a time.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient creates a page fetcher. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	httpClient := opts.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{opts: opts, http: httpClient}
}

// Page retrieves one URL. The Result is also returned alongside the error on
// non-200 responses so callers can inspect the status code.
func (c *Client) Page(ctx context.Context, urlStr string) (*Result, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:        urlStr,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return result, nil
}
