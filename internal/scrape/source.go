package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pricescout/pricescout/internal/catalog"
)

// defaultMaxItemsPerPage caps extraction cost per fetched page.
const defaultMaxItemsPerPage = 10

// Target pairs a page URL with the category its items belong to.
type Target struct {
	URL      string
	Category string
}

// Item is the per-item extraction result: exactly one of Candidate or
// SkipReason is meaningful. Keeping skips in-band makes fault containment
// visible to the runner instead of burying it in the extractor.
type Item struct {
	Candidate  catalog.Candidate
	SkipReason string
}

// Skipped reports whether the item was dropped during extraction.
func (it Item) Skipped() bool {
	return it.SkipReason != ""
}

func extracted(c catalog.Candidate) Item {
	return Item{Candidate: c}
}

func skipped(reason string) Item {
	return Item{SkipReason: reason}
}

// Source is one store's page structure. Each implementation knows which pages
// to visit and how to pull candidate records out of their content; adding a
// store means adding an implementation, nothing else changes.
type Source interface {
	// Kind identifies the source for logs and metrics.
	Kind() string
	// Store is the retailer name recorded on every candidate.
	Store() string
	// Targets lists the pages to fetch, in order.
	Targets() []Target
	// Extract parses one page into per-item results, document order,
	// truncated to the source's per-page bound.
	Extract(content, category string) []Item
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// parsePrice pulls a float out of scraped price text, tolerating currency
// symbols and thousands separators ("$1,299.99" -> 1299.99). The second
// return is false when no usable number remains; callers keep such items with
// a sentinel price of zero rather than dropping them.
func parsePrice(text string) (float64, bool) {
	cleaned := nonPriceChars.ReplaceAllString(strings.TrimSpace(text), "")
	if cleaned == "" {
		return 0, false
	}
	// A stray trailing dot ("999." from split price markup) still parses.
	v, err := strconv.ParseFloat(strings.TrimSuffix(cleaned, "."), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// resolveLink makes a scraped href absolute against the source's base URL.
func resolveLink(base, href string) string {
	if href == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
