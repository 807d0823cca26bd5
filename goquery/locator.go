// Package goquery implements HTML listing extraction using CSS selector
// cascades. The locator identifies repeated item elements across known
// IMDb page layouts; the extractor resolves each output field through its
// own prioritized strategy list with regex fallbacks over flattened text.
package goquery

import (
	"encoding/binary"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
)

// containerSelectors lists known listing layouts, ranked from the classic
// chart table through legacy list pages to modern card markup. Every
// pattern that matches contributes all its matches; the pool is then
// de-duplicated structurally.
var containerSelectors = []string{
	"table.chart tbody tr",              // Top 250 table rows
	"div.lister-list div.lister-item",   // older list pages
	"div.list_item",                     // other list markup
	"li.ipc-metadata-list-summary-item", // modern lists
	"div.ipc-title-card",                // modern cards
	"div.ranking-list-item",             // ranking variants
	"div.section .list_item",            // sectioned list variants
	"div.titleOverview",                 // rare
}

// titleAnchorSelector matches links to a title detail page, used as the
// last-resort signal that a block of markup represents one entry.
const titleAnchorSelector = "a[href^='/title/tt']"

// ancestorSelector lists the container-like tags an anchor is promoted to
// during the fallback.
const ancestorSelector = "li, div, tr, article, section"

// locateItems returns the item elements of a listing document in
// best-effort document order. It never fails; an empty result means the
// page has no recognizable listing structure.
func locateItems(doc *goquery.Document) []*goquery.Selection {
	var items []*goquery.Selection
	seen := make(map[uint64]bool)

	add := func(sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		key := nodeKey(sel.Nodes[0])
		if seen[key] {
			return
		}
		seen[key] = true
		items = append(items, sel)
	}

	for _, selector := range containerSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			add(sel)
		})
	}

	if len(items) > 0 {
		return items
	}

	// Fallback: promote each title-detail anchor's nearest container-like
	// ancestor to an item boundary, or its parent if none is found.
	doc.Find(titleAnchorSelector).Each(func(_ int, anchor *goquery.Selection) {
		parent := anchor.Closest(ancestorSelector)
		if parent.Length() == 0 {
			parent = anchor.Parent()
		}
		add(parent)
	})

	return items
}

// nodeKey derives a stable structural identity for a node from its path of
// child indexes up to the document root. Two selections matching the same
// node under different patterns produce the same key.
func nodeKey(n *html.Node) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for ; n != nil && n.Parent != nil; n = n.Parent {
		idx := uint64(0)
		for sib := n.Parent.FirstChild; sib != nil && sib != n; sib = sib.NextSibling {
			idx++
		}
		binary.LittleEndian.PutUint64(buf[:], idx)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
