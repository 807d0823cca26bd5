// Package scrape coordinates one extraction request: fetch a listing page,
// extract its records, fold them into a dataset, and optionally record the
// run. Each invocation is independent and synchronous; the only shared
// state is the extractor's immutable cascade configuration.
package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/mtoscano/cinelist"
)

// Scraper orchestrates listing page scrapes.
type Scraper struct {
	Fetcher   cinelist.Fetcher
	Extractor cinelist.ListExtractor

	// Runs, if set, records each scrape. A storage failure does not void
	// the scrape result; it is reported on the Result.
	Runs cinelist.RunService

	// Limiter, if set, is consulted before each fetch.
	Limiter cinelist.DomainLimiter
}

// Result holds the outcome of one scrape.
type Result struct {
	URL        string
	Dataset    *cinelist.Dataset
	ItemsFound int
	Skipped    int

	// RunID is the recorded run's ID when history is enabled.
	RunID string

	// HistoryErr reports a failed history write. The dataset itself is
	// still valid.
	HistoryErr error
}

// Recognized reports whether the page contained a recognizable listing.
func (r *Result) Recognized() bool {
	return r.ItemsFound > 0
}

// Scrape fetches the URL and extracts its dataset. A fetch failure aborts
// the whole operation with no partial results. An unrecognized page is a
// normal outcome: an empty dataset with ItemsFound zero.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, cinelist.Errorf(cinelist.EINVALID, "listing URL required")
	}

	if s.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, cinelist.Errorf(cinelist.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ext, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	res := &Result{
		URL:        rawURL,
		Dataset:    cinelist.NewDataset(ext.Records),
		ItemsFound: ext.ItemsFound,
		Skipped:    ext.Skipped,
	}

	if s.Runs != nil {
		run := &cinelist.Run{
			URL:        rawURL,
			ItemsFound: res.ItemsFound,
			Skipped:    res.Skipped,
			RowCount:   res.Dataset.Len(),
			Rows:       res.Dataset.Rows,
		}
		if err := s.Runs.CreateRun(ctx, run); err != nil {
			res.HistoryErr = err
		} else {
			res.RunID = run.ID
		}
	}

	return res, nil
}
