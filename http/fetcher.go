// Package http provides an HTTP-based implementation of readflow.Fetcher
// for retrieving content over the network.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"readflow"
)

// DefaultFetchTimeout is the default timeout for HTTP requests,
// matching readflow.DefaultHTTPClientTimeout.
const DefaultFetchTimeout = readflow.DefaultHTTPClientTimeout

// Ensure Fetcher implements readflow.Fetcher at compile time.
var _ readflow.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using plain HTTP requests. It
// does not execute JavaScript and is suitable for static content only
// (see the module's Non-goals).
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests. Defaults to
// DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves rawURL and reports its status, headers, body, and
// effective URL after any redirects. A non-2xx status is not a Go
// error: it is data for the caller (the Pipeline and MimeDispatcher)
// to act on.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*readflow.FetchedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, readflow.Errorf(readflow.EFETCH, "build request for %s: %v", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, readflow.Errorf(readflow.EFETCH, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, readflow.Errorf(readflow.EFETCH, "read body of %s: %v", rawURL, err)
	}

	headers := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		headers[key] = resp.Header.Get(key)
	}

	effectiveURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		effectiveURL = resp.Request.URL.String()
	}

	return &readflow.FetchedResponse{
		Status:       resp.StatusCode,
		Headers:      headers,
		Body:         body,
		EffectiveURL: effectiveURL,
	}, nil
}
