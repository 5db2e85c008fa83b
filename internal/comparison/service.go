// Package comparison aggregates catalog listings into cross-store price
// comparisons. It only ever reads from the catalog.
package comparison

import (
	"context"
	"fmt"

	"github.com/pricescout/pricescout/internal/catalog"
)

// Bounds on the side-by-side comparison.
const (
	MinCompareIDs = 2
	MaxCompareIDs = 10
)

type Service struct {
	repo catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

// Compare returns every store listing whose product name contains the query,
// cheapest first. No match is an empty result, not an error; the transport
// layer decides whether that maps to a not-found response.
func (s *Service) Compare(ctx context.Context, productName string) ([]catalog.Listing, error) {
	return s.repo.PriceComparison(ctx, productName)
}

// CompareByIDs fetches full rows for a side-by-side display. Between 2 and 10
// ids are accepted; ids that do not exist are simply absent from the result.
func (s *Service) CompareByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	if len(ids) < MinCompareIDs {
		return nil, fmt.Errorf("at least %d products required for comparison: %w", MinCompareIDs, catalog.ErrValidation)
	}
	if len(ids) > MaxCompareIDs {
		return nil, fmt.Errorf("maximum %d products can be compared: %w", MaxCompareIDs, catalog.ErrValidation)
	}
	return s.repo.GetByIDs(ctx, ids)
}
