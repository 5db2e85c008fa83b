package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pricescout/pricescout/internal/catalog"
)

// BestBuySource extracts candidates from BestBuy category listing pages.
type BestBuySource struct {
	baseURL  string
	maxItems int
}

func NewBestBuySource(maxItems int) *BestBuySource {
	if maxItems <= 0 {
		maxItems = defaultMaxItemsPerPage
	}
	return &BestBuySource{baseURL: "https://www.bestbuy.com", maxItems: maxItems}
}

func (s *BestBuySource) Kind() string  { return "bestbuy" }
func (s *BestBuySource) Store() string { return "BestBuy" }

func (s *BestBuySource) Targets() []Target {
	return []Target{
		{URL: s.baseURL + "/site/searchpage.jsp?st=phones", Category: "Phones"},
		{URL: s.baseURL + "/site/searchpage.jsp?st=laptops", Category: "Laptops"},
		{URL: s.baseURL + "/site/searchpage.jsp?st=tablets", Category: "Tablets"},
	}
}

func (s *BestBuySource) Extract(content, category string) []Item {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return []Item{skipped(fmt.Sprintf("parse page: %v", err))}
	}

	var items []Item
	doc.Find("div.sku-item").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= s.maxItems {
			return false
		}
		items = append(items, s.extractItem(sel, category))
		return true
	})
	return items
}

func (s *BestBuySource) extractItem(sel *goquery.Selection, category string) Item {
	titleSel := sel.Find("h4.sku-title").First()
	title := strings.TrimSpace(titleSel.Text())
	priceText := strings.TrimSpace(sel.Find("div.priceView").First().Text())
	href, _ := titleSel.Find("a").First().Attr("href")
	if href == "" {
		href, _ = sel.Find("a.sku-title").First().Attr("href")
	}

	if title == "" || priceText == "" || href == "" {
		return skipped("missing title, price or link")
	}

	price, _ := parsePrice(priceText)

	return extracted(catalog.Candidate{
		Name:     title,
		Price:    price,
		Store:    s.Store(),
		Link:     resolveLink(s.baseURL, href),
		Category: category,
	})
}
