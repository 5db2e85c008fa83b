package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService wires the catalog service. The cache may be nil; every cached
// read falls through to the repository when it is.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Ingest normalises a candidate and attempts the atomic insert. A conflicting
// (name, store, price) key comes back as ErrDuplicate, which callers treat as
// a normal negative outcome rather than a failure.
func (s *Service) Ingest(ctx context.Context, c Candidate) (int64, error) {
	p := normalize(c)
	if p.Name == "" {
		return 0, fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if p.Store == "" {
		return 0, fmt.Errorf("store is required: %w", ErrValidation)
	}
	if p.Price < 0 {
		return 0, fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return 0, fmt.Errorf("rating must be within [0,5]: %w", ErrValidation)
	}
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("invalid product id: %w", ErrValidation)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Product, int, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	return s.repo.Search(ctx, query, limit)
}

func (s *Service) Filter(ctx context.Context, f Filters) ([]Product, error) {
	return s.repo.Filter(ctx, f)
}

func (s *Service) StoreProducts(ctx context.Context, store string) ([]Product, error) {
	return s.repo.ListByStore(ctx, store)
}

func (s *Service) CategoryProducts(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Stores(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if stores, ok := s.cache.GetStrings(ctx, cacheKeyStores); ok {
			return stores, nil
		}
	}
	stores, err := s.repo.Stores(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetStrings(ctx, cacheKeyStores, stores)
	}
	return stores, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if categories, ok := s.cache.GetStrings(ctx, cacheKeyCategories); ok {
			return categories, nil
		}
	}
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetStrings(ctx, cacheKeyCategories, categories)
	}
	return categories, nil
}

// Update mutates allow-listed fields on an existing row. It reports whether a
// row actually changed so the transport layer can distinguish a no-op.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("invalid product id: %w", ErrValidation)
	}
	if params.Empty() {
		return false, fmt.Errorf("no updatable fields supplied: %w", ErrValidation)
	}
	changed, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return false, err
	}
	if changed {
		s.invalidateCache(ctx)
	}
	return changed, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("invalid product id: %w", ErrValidation)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.invalidateCache(ctx)
	}
	return removed, nil
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	if s.cache != nil {
		if stats, ok := s.cache.GetStatistics(ctx); ok {
			return stats, nil
		}
	}
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return Statistics{}, err
	}
	if s.cache != nil {
		s.cache.SetStatistics(ctx, stats)
	}
	return stats, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil && s.logger != nil {
		s.logger.Warn("catalog cache invalidation failed", slog.Any("error", err))
	}
}
