package mock

import "github.com/mtoscano/cinelist"

var _ cinelist.ListExtractor = (*ListExtractor)(nil)

// ListExtractor is a mock implementation of cinelist.ListExtractor.
type ListExtractor struct {
	ExtractFn func(html string) (*cinelist.Extraction, error)
}

func (e *ListExtractor) Extract(html string) (*cinelist.Extraction, error) {
	return e.ExtractFn(html)
}
