package catalog

import (
	"github.com/pricescout/pricescout/internal/shared"
)

// CreateProductRequest is the admin create payload. Category is required on
// the admin path even though ingestion would default it.
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Store         string  `json:"store" validate:"required"`
	Link          string  `json:"link" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	Availability  string  `json:"availability"`
}

// Candidate converts the admin payload into the common ingestion shape.
func (r CreateProductRequest) Candidate() Candidate {
	return Candidate{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Store:         r.Store,
		Link:          r.Link,
		Image:         r.Image,
		Rating:        r.Rating,
		Availability:  r.Availability,
	}
}

type ListResponse struct {
	Data       []Product         `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}

type SearchResponse struct {
	Query   string    `json:"query"`
	Results []Product `json:"results"`
	Count   int       `json:"count"`
}

type FilterResponse struct {
	Filters FilterEcho `json:"filters"`
	Results []Product  `json:"results"`
	Count   int        `json:"count"`
}

// FilterEcho mirrors the applied criteria back to the caller.
type FilterEcho struct {
	Category     string     `json:"category,omitempty"`
	Store        string     `json:"store,omitempty"`
	PriceRange   []*float64 `json:"price_range"`
	MinRating    *float64   `json:"min_rating,omitempty"`
	Availability string     `json:"availability,omitempty"`
}

type StoreProductsResponse struct {
	Store      string            `json:"store"`
	Data       []Product         `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}

type CategoryProductsResponse struct {
	Category   string            `json:"category"`
	Data       []Product         `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}

type StoresResponse struct {
	Stores []string `json:"stores"`
	Count  int      `json:"count"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

type CreatedResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

type MessageResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id,omitempty"`
}
