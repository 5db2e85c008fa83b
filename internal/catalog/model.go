package catalog

import (
	"time"
)

// Availability values stored on a product listing.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
	AvailabilityPreorder   = "preorder"
)

// DefaultCategory is applied to candidates that carry no category.
const DefaultCategory = "Electronics"

// Product is a canonical catalog row: one observed listing of a product at a
// store for a given price. The triple (name, store, price) is unique across
// the catalog; a price change at a store shows up as a separate row, which is
// how historical price points are retained.
type Product struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Price              float64   `json:"price"`
	OriginalPrice      float64   `json:"original_price,omitempty"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Store              string    `json:"store"`
	Link               string    `json:"link"`
	Image              string    `json:"image"`
	Rating             float64   `json:"rating"`
	Availability       string    `json:"availability"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Candidate is an unvalidated product observation produced by extraction.
// It is normalised and either inserted or rejected as a duplicate; it never
// leaves the ingestion path.
type Candidate struct {
	Name          string
	Description   string
	Category      string
	Price         float64
	OriginalPrice float64
	Store         string
	Link          string
	Image         string
	Rating        float64
	Availability  string
}

// Listing is one store's offer for a product, used by price comparison.
type Listing struct {
	Store string  `json:"store"`
	Price float64 `json:"price"`
	Link  string  `json:"link"`
}

// Statistics summarises the catalog.
type Statistics struct {
	TotalProducts   int     `json:"total_products"`
	TotalStores     int     `json:"total_stores"`
	TotalCategories int     `json:"total_categories"`
	AveragePrice    float64 `json:"average_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
}

// UpdateParams carries the admin-correctable fields. Nil pointers leave the
// column untouched; fields outside this allow-list cannot be mutated at all.
type UpdateParams struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Price              *float64 `json:"price"`
	OriginalPrice      *float64 `json:"original_price"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	Rating             *float64 `json:"rating"`
	Availability       *string  `json:"availability"`
	Image              *string  `json:"image"`
}

// Empty reports whether no field is set.
func (p UpdateParams) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.OriginalPrice == nil && p.DiscountPercentage == nil &&
		p.Rating == nil && p.Availability == nil && p.Image == nil
}

// Filters is the conjunctive predicate for product filtering. Nil or empty
// members impose no constraint.
type Filters struct {
	Category     string
	Store        string
	MinPrice     *float64
	MaxPrice     *float64
	MinRating    *float64
	Availability string
}
