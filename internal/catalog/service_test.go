package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// MOCK REPOSITORY
// ============================================================================

type mockRepository struct {
	products map[int64]*Product
	byKey    map[string]int64
	nextID   int64

	// Error injection
	insertError error
	listError   error
	statsError  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		products: make(map[int64]*Product),
		byKey:    make(map[string]int64),
		nextID:   1,
	}
}

func dedupKey(p Product) string {
	return fmt.Sprintf("%s|%s|%.2f", p.Name, p.Store, p.Price)
}

func (m *mockRepository) Insert(ctx context.Context, p Product) (int64, error) {
	if m.insertError != nil {
		return 0, m.insertError
	}
	key := dedupKey(p)
	if _, exists := m.byKey[key]; exists {
		return 0, fmt.Errorf("insert product: %w", ErrDuplicate)
	}
	id := m.nextID
	m.nextID++
	p.ID = id
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.products[id] = &p
	m.byKey[key] = id
	return id, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	p, ok := m.products[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return *p, nil
}

func (m *mockRepository) GetByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	result := []Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockRepository) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	needle := strings.ToLower(query)
	result := []Product{}
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rating != result[j].Rating {
			return result[i].Rating > result[j].Rating
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockRepository) Filter(ctx context.Context, f Filters) ([]Product, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	result := []Product{}
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Store != "" && p.Store != f.Store {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		if f.Availability != "" && p.Availability != f.Availability {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, nil
}

func (m *mockRepository) ListAll(ctx context.Context, limit, offset int) ([]Product, int, error) {
	if m.listError != nil {
		return nil, 0, m.listError
	}
	all := []Product{}
	for _, p := range m.products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset >= len(all) {
		return []Product{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockRepository) ListByStore(ctx context.Context, store string) ([]Product, error) {
	result := []Product{}
	for _, p := range m.products {
		if p.Store == store {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, nil
}

func (m *mockRepository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	result := []Product{}
	for _, p := range m.products {
		if p.Category == category {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	return result, nil
}

func (m *mockRepository) Stores(ctx context.Context) ([]string, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	seen := map[string]bool{}
	for _, p := range m.products {
		seen[p.Store] = true
	}
	stores := []string{}
	for s := range seen {
		stores = append(stores, s)
	}
	sort.Strings(stores)
	return stores, nil
}

func (m *mockRepository) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	for _, p := range m.products {
		seen[p.Category] = true
	}
	categories := []string{}
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *mockRepository) PriceComparison(ctx context.Context, name string) ([]Listing, error) {
	needle := strings.ToLower(name)
	result := []Listing{}
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result = append(result, Listing{Store: p.Store, Price: p.Price, Link: p.Link})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, params UpdateParams) (bool, error) {
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.OriginalPrice != nil {
		p.OriginalPrice = *params.OriginalPrice
	}
	if params.DiscountPercentage != nil {
		p.DiscountPercentage = *params.DiscountPercentage
	}
	if params.Rating != nil {
		p.Rating = *params.Rating
	}
	if params.Availability != nil {
		p.Availability = *params.Availability
	}
	if params.Image != nil {
		p.Image = *params.Image
	}
	p.UpdatedAt = time.Now()
	return true, nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	delete(m.byKey, dedupKey(*p))
	delete(m.products, id)
	return true, nil
}

func (m *mockRepository) Statistics(ctx context.Context) (Statistics, error) {
	if m.statsError != nil {
		return Statistics{}, m.statsError
	}
	stores, _ := m.Stores(ctx)
	categories, _ := m.Categories(ctx)
	stats := Statistics{
		TotalProducts:   len(m.products),
		TotalStores:     len(stores),
		TotalCategories: len(categories),
	}
	if len(m.products) == 0 {
		return stats, nil
	}
	var sum float64
	first := true
	for _, p := range m.products {
		sum += p.Price
		if first || p.Price < stats.MinPrice {
			stats.MinPrice = p.Price
		}
		if first || p.Price > stats.MaxPrice {
			stats.MaxPrice = p.Price
		}
		first = false
	}
	stats.AveragePrice = round2(sum / float64(len(m.products)))
	return stats, nil
}

// ============================================================================
// HELPERS
// ============================================================================

func newTestService() (*Service, *mockRepository) {
	repo := newMockRepository()
	return NewService(repo, nil, nil), repo
}

func ptr[T any](v T) *T { return &v }

func candidate(name, store string, price float64) Candidate {
	return Candidate{
		Name:          name,
		Store:         store,
		Price:         price,
		OriginalPrice: price,
		Category:      "Phones",
		Link:          "https://example.com/p",
	}
}

// ============================================================================
// INGESTION
// ============================================================================

func TestIngestAppliesDefaults(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.Ingest(ctx, Candidate{
		Name:  "Pixel 8 Pro",
		Store: "Google Store",
		Price: 999.00,
	})
	require.NoError(t, err)

	p := repo.products[id]
	require.NotNil(t, p)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, AvailabilityInStock, p.Availability)
	assert.Equal(t, 0.0, p.Rating)
	assert.Equal(t, 0.0, p.DiscountPercentage)
}

func TestIngestComputesDiscount(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	c := candidate("Galaxy S24 Ultra", "Samsung", 80.00)
	c.OriginalPrice = 100.00
	id, err := svc.Ingest(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, 20.0, repo.products[id].DiscountPercentage)
}

func TestIngestDuplicateKey(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.NoError(t, err)

	// Same name, store and price: the catalog must not grow.
	_, err = svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Len(t, repo.products, 1)
}

func TestIngestPriceChangeCreatesNewRow(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.NoError(t, err)

	// A different price at the same store is a distinct observation.
	_, err = svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 899.99))
	require.NoError(t, err)
	assert.Len(t, repo.products, 2)
}

func TestIngestNormalisesWhitespace(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.Ingest(ctx, candidate("  iPhone   15\tPro  ", "Amazon", 949.99))
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", repo.products[id].Name)
}

func TestIngestValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name      string
		candidate Candidate
	}{
		{"missing name", Candidate{Store: "Amazon", Price: 10}},
		{"missing store", Candidate{Name: "Widget", Price: 10}},
		{"negative price", Candidate{Name: "Widget", Store: "Amazon", Price: -1}},
		{"rating too high", Candidate{Name: "Widget", Store: "Amazon", Price: 10, Rating: 5.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Ingest(ctx, tc.candidate)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestIngestRepositoryError(t *testing.T) {
	svc, repo := newTestService()
	repo.insertError = errors.New("connection refused")

	_, err := svc.Ingest(context.Background(), candidate("Widget", "Amazon", 10))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicate))
}

// ============================================================================
// QUERIES
// ============================================================================

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetInvalidID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFilterConjunction(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	seed := []Candidate{
		candidate("iPhone 15 Pro", "Amazon", 949.99),
		candidate("iPhone 15 Pro", "Best Buy", 959.99),
		candidate("MacBook Pro 16", "Amazon", 3499.00),
		candidate("Galaxy S24 Ultra", "Amazon", 1299.99),
	}
	for _, c := range seed {
		_, err := svc.Ingest(ctx, c)
		require.NoError(t, err)
	}

	// Every clause must hold at once.
	got, err := svc.Filter(ctx, Filters{
		Store:    "Amazon",
		MinPrice: ptr(900.0),
		MaxPrice: ptr(1500.0),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Cheapest first.
	assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	assert.Equal(t, "Galaxy S24 Ultra", got[1].Name)
}

func TestFilterNoMatches(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.NoError(t, err)

	got, err := svc.Filter(ctx, Filters{Store: "Walmart"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchMatchesDescription(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c := candidate("XPS 15", "Dell", 1899.99)
	c.Description = "Premium laptop with OLED display"
	_, err := svc.Ingest(ctx, c)
	require.NoError(t, err)

	got, err := svc.Search(ctx, "laptop", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "XPS 15", got[0].Name)
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestUpdateAppliesFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.NoError(t, err)

	changed, err := svc.Update(ctx, id, UpdateParams{
		Price:        ptr(899.99),
		Availability: ptr(AvailabilityOutOfStock),
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 899.99, repo.products[id].Price)
	assert.Equal(t, AvailabilityOutOfStock, repo.products[id].Availability)
}

func TestUpdateEmptyParams(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 1, UpdateParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateMissingRow(t *testing.T) {
	svc, _ := newTestService()

	changed, err := svc.Update(context.Background(), 42, UpdateParams{Price: ptr(1.0)})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.Ingest(ctx, candidate("iPhone 15 Pro", "Amazon", 949.99))
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, repo.products)

	removed, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

// ============================================================================
// STATISTICS
// ============================================================================

func TestStatistics(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	seed := []Candidate{
		candidate("iPhone 15 Pro", "Amazon", 949.99),
		candidate("iPhone 15 Pro", "Best Buy", 959.99),
		candidate("MacBook Pro 16", "Amazon", 3499.00),
	}
	for _, c := range seed {
		_, err := svc.Ingest(ctx, c)
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalStores)
	assert.Equal(t, 1, stats.TotalCategories)
	assert.Equal(t, 1802.99, stats.AveragePrice)
	assert.Equal(t, 949.99, stats.MinPrice)
	assert.Equal(t, 3499.00, stats.MaxPrice)
}

func TestStatisticsEmptyCatalog(t *testing.T) {
	svc, _ := newTestService()

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 0.0, stats.AveragePrice)
	assert.Equal(t, 0.0, stats.MinPrice)
	assert.Equal(t, 0.0, stats.MaxPrice)
}
