package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pricescout/pricescout/internal/catalog"
)

// AmazonSource extracts candidates from Amazon search result pages.
//
// Amazon actively blocks scrapers; in production the Product Advertising API
// is the honest route. The selectors here match the public search markup and
// are exercised against recorded fixtures.
type AmazonSource struct {
	baseURL  string
	maxItems int
}

func NewAmazonSource(maxItems int) *AmazonSource {
	if maxItems <= 0 {
		maxItems = defaultMaxItemsPerPage
	}
	return &AmazonSource{baseURL: "https://www.amazon.com", maxItems: maxItems}
}

func (s *AmazonSource) Kind() string  { return "amazon" }
func (s *AmazonSource) Store() string { return "Amazon" }

func (s *AmazonSource) Targets() []Target {
	return []Target{
		{URL: s.baseURL + "/s?k=smartphone", Category: "Phones"},
		{URL: s.baseURL + "/s?k=laptop+computer", Category: "Laptops"},
		{URL: s.baseURL + "/s?k=tablet", Category: "Tablets"},
		{URL: s.baseURL + "/s?k=smartwatch", Category: "Smartwatches"},
	}
}

func (s *AmazonSource) Extract(content, category string) []Item {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return []Item{skipped(fmt.Sprintf("parse page: %v", err))}
	}

	var items []Item
	doc.Find(`div[data-component-type="s-search-result"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= s.maxItems {
			return false
		}
		items = append(items, s.extractItem(sel, category))
		return true
	})
	return items
}

func (s *AmazonSource) extractItem(sel *goquery.Selection, category string) Item {
	title := strings.TrimSpace(sel.Find("h2.s-size-mini").First().Text())
	priceText := strings.TrimSpace(sel.Find("span.a-price-whole").First().Text())
	href, _ := sel.Find("a.s-no-outline").First().Attr("href")

	if title == "" || priceText == "" || href == "" {
		return skipped("missing title, price or link")
	}

	// Unparseable price keeps the item with a sentinel of zero.
	price, _ := parsePrice(priceText)

	return extracted(catalog.Candidate{
		Name:     title,
		Price:    price,
		Store:    s.Store(),
		Link:     resolveLink(s.baseURL, href),
		Category: category,
	})
}
