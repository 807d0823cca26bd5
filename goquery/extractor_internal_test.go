package goquery

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: swaps the package-level cascade for the duration of the
// test. A strategy panicking on one item must count that item as skipped
// while the rest of the batch still extracts.
func TestExtract_CountsPanickedItemsAsSkipped(t *testing.T) {
	orig := yearStrategies
	yearStrategies = append([]strategy[*int]{
		{"explode", func(item *goquery.Selection, _ string) (*int, bool) {
			if flattenText(item.Find("a").First()) == "Bad Apple" {
				panic("unexpected markup")
			}
			return nil, false
		}},
	}, orig...)
	defer func() { yearStrategies = orig }()

	ext, err := NewExtractor().Extract(`<html><body>
		<div class="list_item"><a href="/title/tt1/">Good Movie</a></div>
		<div class="list_item"><a href="/title/tt2/">Bad Apple</a></div>
		<div class="list_item"><a href="/title/tt3/">Another Movie</a></div>
	</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, 3, ext.ItemsFound)
	assert.Equal(t, 1, ext.Skipped)
	require.Len(t, ext.Records, 2)
	assert.Equal(t, "Good Movie", ext.Records[0].Title)
	assert.Equal(t, "Another Movie", ext.Records[1].Title)
}
