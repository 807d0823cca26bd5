package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtoscano/cinelist"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cinelist.ListExtractor at compile time.
var _ cinelist.ListExtractor = (*Extractor)(nil)

// Extractor extracts title records from listing page HTML. It is stateless;
// the cascade lists are immutable package-level configuration, so a single
// Extractor is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, locates item elements, and resolves each item's
// fields through the per-field strategy cascades. Items without a
// resolvable title are dropped; items whose extraction fails are skipped
// and counted, never aborting the batch.
func (e *Extractor) Extract(rawHTML string) (*cinelist.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, cinelist.Errorf(cinelist.EINVALID, "failed to parse HTML: %v", err)
	}

	items := locateItems(doc)
	ext := &cinelist.Extraction{ItemsFound: len(items)}

	for _, item := range items {
		rec, ok := extractItem(item)
		if !ok {
			ext.Skipped++
			continue
		}
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		ext.Records = append(ext.Records, rec)
	}

	return ext, nil
}

// extractItem resolves all six fields of one item element. A panic caused
// by unexpected markup abandons the item; ok is false so the caller counts
// the skip instead of aborting the batch.
func extractItem(item *goquery.Selection) (rec cinelist.Record, ok bool) {
	defer func() {
		if recover() != nil {
			rec, ok = cinelist.Record{}, false
		}
	}()

	text := flattenText(item)

	rec.Title = extractTitle(item, text)
	rec.Year, _ = firstHit(item, text, yearStrategies)
	rec.Duration, _ = firstHit(item, text, durationStrategies)
	rec.Age, _ = firstHit(item, text, ageStrategies)
	rec.Rating, _ = firstHit(item, text, ratingStrategies)
	rec.Votes, _ = firstHit(item, text, votesStrategies)

	return rec, true
}

// strategy resolves one candidate value for a field. ok is false when the
// strategy yields nothing and the cascade should try the next one.
type strategy[T any] struct {
	name string
	fn   func(item *goquery.Selection, text string) (T, bool)
}

// firstHit runs the strategies in order and returns the first hit.
func firstHit[T any](item *goquery.Selection, text string, strategies []strategy[T]) (T, bool) {
	for _, s := range strategies {
		if v, ok := s.fn(item, text); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

var (
	ordinalPrefixRe = regexp.MustCompile(`^\d+\.\s*`)
	parenYearRe     = regexp.MustCompile(`\(\d{4}\)`)
	certOrAgeRe     = regexp.MustCompile(`(?i)\b(?:PG-?\d{1,2}|G|PG|R|NC-17|TV-?MA|TV-?14)\b|\d{1,3}\+`)
	runtimeTextRe   = regexp.MustCompile(`(?i)\d+h\s*\d*min|\d+\s*min|\b\d{2,3}\b`)
	votesSuffixRe   = regexp.MustCompile(`(?i)^\s*votes`)
	outOfTenRe      = regexp.MustCompile(`(\d\.\d)\s*/\s*10`)
	basedOnRe       = regexp.MustCompile(`(?i)based on\s+([\d,\.]+)\s+user`)
	userCountRe     = regexp.MustCompile(`(?i)([\d,\.]+)\s+user`)
	votesTextRe     = regexp.MustCompile(`(?i)([\d,\.]{2,})\s*(?:votes|user ratings|ratings)`)
	groupedNumRe    = regexp.MustCompile(`\b\d{1,3}(?:[.,]\d{3})+\b`)
)

// Title cascade: detail-page link variants, header-wrapped links, then any
// title anchor. The first non-empty text wins.
var titleStrategies = []strategy[string]{
	{"title-column", selectorText("td.titleColumn a")},
	{"ipc-title-link", selectorText("a.ipc-title-link, a.ipc-title-link-wrapper")},
	{"lister-header", selectorText("h3.lister-item-header a")},
	{"header-link", selectorText("h3 a")},
	{"title-anchor", selectorText("a[href^='/title/']")},
}

func extractTitle(item *goquery.Selection, text string) string {
	t, ok := firstHit(item, text, titleStrategies)
	if !ok {
		return ""
	}
	return strings.TrimSpace(ordinalPrefixRe.ReplaceAllString(t, ""))
}

// Year cascade: known secondary-info spans, any text node with a
// parenthesized 4-digit year, then a scan of the flattened item text.
var yearStrategies = []strategy[*int]{
	{"secondary-info", selectorYear("span.secondaryInfo")},
	{"lister-year", selectorYear("span.lister-item-year")},
	{"year-class", selectorYear(".year")},
	{"paren-text", func(item *goquery.Selection, _ string) (*int, bool) {
		return parsed(cinelist.ParseYear(findTextNode(item, parenYearRe)))
	}},
	{"text-scan", func(_ *goquery.Selection, text string) (*int, bool) {
		return parsed(cinelist.ParseYear(text))
	}},
}

// Duration cascade: known runtime selectors through the runtime parser,
// then the same parser over a regex match in the flattened text.
var durationStrategies = []strategy[*int]{
	{"runtime-span", selectorRuntime("span.runtime")},
	{"runtime-class", selectorRuntime(".runtime")},
	{"runtime-li", selectorRuntime("li.runtime")},
	{"runtime-div", selectorRuntime("div.runtime")},
	{"text-scan", func(_ *goquery.Selection, text string) (*int, bool) {
		return parsed(durationFromText(text))
	}},
}

// durationFromText finds a runtime expression in flattened item text:
// "2h 22min", "142 min", or a bare 2-3 digit number. The alternation is
// scanned positionally, so the earliest expression in the text wins
// regardless of which form it takes. A bare number directly followed by
// "votes" is a vote count, not a runtime; RE2 has no lookahead, so the
// exclusion checks each match's suffix explicitly.
func durationFromText(text string) *int {
	for _, loc := range runtimeTextRe.FindAllStringIndex(text, -1) {
		m := text[loc[0]:loc[1]]
		if !strings.ContainsAny(m, "hmHM") && votesSuffixRe.MatchString(text[loc[1]:]) {
			continue
		}
		return cinelist.ParseRuntime(m)
	}
	return nil
}

// Age cascade: a text node carrying a certification or age-threshold
// token, then the flattened item text.
var ageStrategies = []strategy[string]{
	{"cert-node", func(item *goquery.Selection, _ string) (string, bool) {
		a := cinelist.ParseAge(findTextNode(item, certOrAgeRe))
		return a, a != ""
	}},
	{"text-scan", func(_ *goquery.Selection, text string) (string, bool) {
		a := cinelist.ParseAge(text)
		return a, a != ""
	}},
}

// ratingSelectors lists rating markup in priority order: table-cell
// rating, modern star-rating span, aggregate-rating span, itemprop-tagged
// value, then any bold text.
var ratingSelectors = []string{
	"td.ratingColumn.imdbRating strong",
	"span.ipc-rating-star--rating",
	"span.aggregate-rating",
	"span[class*='ratingValue']",
	"span[itemprop='ratingValue']",
	"strong",
}

var ratingStrategies = func() []strategy[*float64] {
	strategies := make([]strategy[*float64], 0, len(ratingSelectors)+1)
	for _, selector := range ratingSelectors {
		strategies = append(strategies, strategy[*float64]{selector, selectorFloat(selector)})
	}
	return append(strategies, strategy[*float64]{"text-scan", func(_ *goquery.Selection, text string) (*float64, bool) {
		m := outOfTenRe.FindStringSubmatch(text)
		if m == nil {
			return nil, false
		}
		return parsed(cinelist.ParseFloat(m[1]))
	}})
}()

// votesNodeSelectors lists vote-count markup in priority order.
var votesNodeSelectors = []string{
	"span[name='nv']",
	"span.ipc-rating-star--voteCount",
	".votes",
}

// Votes cascade: a vote-count node (machine-readable data-value attribute
// preferred over text), the rating cell's descriptive title attribute, a
// number followed by "votes"/"user ratings"/"ratings" in the text, and as
// a last resort the first grouped-thousands numeral anywhere. The final
// tier is an explicitly low-confidence heuristic.
var votesStrategies = []strategy[*int]{
	{"vote-node", votesFromNode},
	{"rating-title", votesFromRatingTitle},
	{"votes-text", func(_ *goquery.Selection, text string) (*int, bool) {
		m := votesTextRe.FindStringSubmatch(text)
		if m == nil {
			return nil, false
		}
		return parsed(cinelist.ParseInt(m[1]))
	}},
	{"grouped-number", func(_ *goquery.Selection, text string) (*int, bool) {
		m := groupedNumRe.FindString(text)
		if m == "" {
			return nil, false
		}
		return parsed(cinelist.ParseInt(m))
	}},
}

func votesFromNode(item *goquery.Selection, _ string) (*int, bool) {
	for _, selector := range votesNodeSelectors {
		node := item.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		if v, ok := node.Attr("data-value"); ok {
			return parsed(cinelist.ParseInt(v))
		}
		return parsed(cinelist.ParseInt(node.Text()))
	}
	return nil, false
}

func votesFromRatingTitle(item *goquery.Selection, _ string) (*int, bool) {
	// Classic chart tables store votes in the rating cell's title
	// attribute, e.g. "9.2 based on 1,600,000 user ratings".
	title, ok := item.Find("td.ratingColumn.imdbRating strong").First().Attr("title")
	if !ok {
		return nil, false
	}
	m := basedOnRe.FindStringSubmatch(title)
	if m == nil {
		m = userCountRe.FindStringSubmatch(title)
	}
	if m == nil {
		return nil, false
	}
	return parsed(cinelist.ParseInt(m[1]))
}

// selectorText returns a strategy function that takes the collapsed text
// of the first element matching the selector.
func selectorText(selector string) func(*goquery.Selection, string) (string, bool) {
	return func(item *goquery.Selection, _ string) (string, bool) {
		t := flattenText(item.Find(selector).First())
		if t == "" {
			return "", false
		}
		return t, true
	}
}

func selectorYear(selector string) func(*goquery.Selection, string) (*int, bool) {
	return func(item *goquery.Selection, _ string) (*int, bool) {
		return parsed(cinelist.ParseYear(flattenText(item.Find(selector).First())))
	}
}

func selectorRuntime(selector string) func(*goquery.Selection, string) (*int, bool) {
	return func(item *goquery.Selection, _ string) (*int, bool) {
		return parsed(cinelist.ParseRuntime(flattenText(item.Find(selector).First())))
	}
}

func selectorFloat(selector string) func(*goquery.Selection, string) (*float64, bool) {
	return func(item *goquery.Selection, _ string) (*float64, bool) {
		return parsed(cinelist.ParseFloat(flattenText(item.Find(selector).First())))
	}
}

// parsed adapts an optional parse result to the strategy return shape.
func parsed[T any](v *T) (*T, bool) {
	return v, v != nil
}

// flattenText joins the text nodes of a selection with single spaces,
// collapsing internal whitespace, so regex fallbacks see word boundaries
// between adjacent elements.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// findTextNode returns the first text node in the selection's subtree
// whose content matches the pattern.
func findTextNode(sel *goquery.Selection, re *regexp.Regexp) string {
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode {
			if re.MatchString(n.Data) {
				found = n.Data
				return true
			}
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range sel.Nodes {
		if walk(n) {
			break
		}
	}
	return found
}
