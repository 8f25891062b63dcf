// Package qt implements the daily devotional pipeline: fetching the upstream
// page, extracting its content, and segmenting the reply into chat bubbles.
package qt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Upstream defaults for the 매일성경 순 (youth edition) page.
const (
	DefaultBaseURL = "https://sum.su.or.kr:8888/bible/today"
	DefaultVariant = "QT6"
)

const (
	fetchTimeout = 10 * time.Second

	// The upstream site rejects requests without a browser User-Agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxBodySize = 5 * 1024 * 1024
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads the devotional page from the upstream site.
type Fetcher struct {
	client HTTPClient
	url    string
}

// NewFetcher creates a Fetcher for the given base URL and content variant.
// An empty variant omits the qt_ty query parameter.
func NewFetcher(client HTTPClient, baseURL, variant string) *Fetcher {
	u := baseURL
	if variant != "" {
		u = baseURL + "?qt_ty=" + url.QueryEscape(variant)
	}
	return &Fetcher{client: client, url: u}
}

// URL returns the full upstream URL the fetcher queries.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch performs a single time-bounded GET and returns the raw page body.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
