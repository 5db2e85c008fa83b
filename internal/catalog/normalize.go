package catalog

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DiscountPercentage derives the discount from the two price points. It is
// zero unless the original price is strictly above the current one.
func DiscountPercentage(price, originalPrice float64) float64 {
	if originalPrice > 0 && originalPrice > price {
		return round2((originalPrice - price) / originalPrice * 100)
	}
	return 0
}

// normalize turns a candidate into an insertable row: text cleanup, defaults
// for absent category/availability, and the derived discount percentage.
func normalize(c Candidate) Product {
	p := Product{
		Name:          cleanText(c.Name),
		Description:   cleanText(c.Description),
		Category:      cleanText(c.Category),
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
		Store:         cleanText(c.Store),
		Link:          strings.TrimSpace(c.Link),
		Image:         strings.TrimSpace(c.Image),
		Rating:        c.Rating,
		Availability:  strings.TrimSpace(c.Availability),
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Availability == "" {
		p.Availability = AvailabilityInStock
	}
	p.DiscountPercentage = DiscountPercentage(p.Price, p.OriginalPrice)
	return p
}

// cleanText NFC-normalises scraped text and collapses runs of whitespace.
// Source pages mix non-breaking spaces and decomposed accents freely.
func cleanText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
