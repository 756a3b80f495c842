package dom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/macarona-salsa/wawa-news/internal/articles"
)

// DefaultFetchTimeout bounds a single /articles request.
const DefaultFetchTimeout = 10 * time.Second

// Fetcher retrieves the article document from a running server.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient replaces the underlying client. Its timeout wins over
// WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Articles issues one GET for baseURL/articles and decodes it in key order.
func (f *Fetcher) Articles(ctx context.Context, baseURL string) (*articles.Set, error) {
	url := strings.TrimSuffix(baseURL, "/") + "/articles"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	set := articles.NewSet()
	if err := json.NewDecoder(resp.Body).Decode(set); err != nil {
		return nil, fmt.Errorf("decoding articles from %s: %w", url, err)
	}
	return set, nil
}

// Load fetches the articles and populates p with them.
func (f *Fetcher) Load(ctx context.Context, p *Page, baseURL string) error {
	set, err := f.Articles(ctx, baseURL)
	if err != nil {
		return err
	}
	Populate(p, set)
	return nil
}
