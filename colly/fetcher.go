// Package colly provides a colly-based implementation of cinelist.Fetcher
// as an alternative fetch engine. It shares the plain HTTP fetcher's
// header and timeout contract.
package colly

import (
	"context"
	"time"

	"github.com/gocolly/colly"
	"github.com/mtoscano/cinelist"
	cinehttp "github.com/mtoscano/cinelist/http"
)

// Ensure Fetcher implements cinelist.Fetcher at compile time.
var _ cinelist.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a colly collector.
type Fetcher struct {
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new colly-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   cinehttp.DefaultFetchTimeout,
		userAgent: cinehttp.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the HTML content from the given URL. Each call uses a
// fresh collector so invocations share no state. The context deadline is
// not propagated into the collector; the fixed request timeout bounds the
// call instead.
func (f *Fetcher) Fetch(_ context.Context, url string) (string, error) {
	c := colly.NewCollector(colly.UserAgent(f.userAgent))
	c.SetRequestTimeout(f.timeout)

	var body string

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	if err := c.Visit(url); err != nil {
		return "", cinelist.Errorf(cinelist.EUNAVAILABLE, "no data could be retrieved from %s: %v", url, err)
	}

	return body, nil
}

// Close releases resources. Collectors are per-call, so this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
