package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code raised when an insert hits the
// UNIQUE(name, store, price) constraint.
const uniqueViolation = "23505"

type Repository interface {
	Insert(ctx context.Context, p Product) (int64, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Product, error)
	Search(ctx context.Context, query string, limit int) ([]Product, error)
	Filter(ctx context.Context, f Filters) ([]Product, error)
	ListAll(ctx context.Context, limit, offset int) ([]Product, int, error)
	ListByStore(ctx context.Context, store string) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Stores(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	PriceComparison(ctx context.Context, name string) ([]Listing, error)
	Update(ctx context.Context, id int64, params UpdateParams) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Statistics(ctx context.Context) (Statistics, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, category, price, original_price, discount_percentage, store, link, image, rating, availability, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.OriginalPrice, &p.DiscountPercentage, &p.Store, &p.Link, &p.Image, &p.Rating, &p.Availability, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()
	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Insert stores a canonical row. The UNIQUE(name, store, price) constraint is
// the sole dedup mechanism; a conflicting key surfaces as ErrDuplicate so
// concurrent inserts of the same candidate leave exactly one row behind.
func (r *repository) Insert(ctx context.Context, p Product) (int64, error) {
	query := `INSERT INTO products (name, description, category, price, original_price, discount_percentage, store, link, image, rating, availability, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.Category, p.Price, p.OriginalPrice, p.DiscountPercentage,
		p.Store, p.Link, p.Image, p.Rating, p.Availability, now, now,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("product %q at %q for %.2f: %w", p.Name, p.Store, p.Price, ErrDuplicate)
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, err
}

// GetByIDs returns the subset of requested rows that exist, in id order.
// Missing ids are not an error; the caller sees fewer rows than it asked for.
func (r *repository) GetByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *repository) Search(ctx context.Context, search string, limit int) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY rating DESC, created_at DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, "%"+search+"%", limit)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *repository) Filter(ctx context.Context, f Filters) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if f.Category != "" {
		argCount++
		query += ` AND category = $` + strconv.Itoa(argCount)
		args = append(args, f.Category)
	}
	if f.MinPrice != nil {
		argCount++
		query += ` AND price >= $` + strconv.Itoa(argCount)
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		argCount++
		query += ` AND price <= $` + strconv.Itoa(argCount)
		args = append(args, *f.MaxPrice)
	}
	if f.Store != "" {
		argCount++
		query += ` AND store = $` + strconv.Itoa(argCount)
		args = append(args, f.Store)
	}
	if f.MinRating != nil {
		argCount++
		query += ` AND rating >= $` + strconv.Itoa(argCount)
		args = append(args, *f.MinRating)
	}
	if f.Availability != "" {
		argCount++
		query += ` AND availability = $` + strconv.Itoa(argCount)
		args = append(args, f.Availability)
	}

	query += ` ORDER BY price ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *repository) ListAll(ctx context.Context, limit, offset int) ([]Product, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repository) ListByStore(ctx context.Context, store string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store = $1 ORDER BY price ASC`
	rows, err := r.db.Query(ctx, query, store)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *repository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY rating DESC`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *repository) Stores(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT store FROM products ORDER BY store`)
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
}

func (r *repository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *repository) PriceComparison(ctx context.Context, name string) ([]Listing, error) {
	query := `SELECT store, price, link FROM products WHERE name ILIKE $1 ORDER BY price ASC`
	rows, err := r.db.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var listings []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.Store, &l.Price, &l.Link); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Update mutates only the allow-listed columns and refreshes updated_at.
func (r *repository) Update(ctx context.Context, id int64, params UpdateParams) (bool, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 0

	add := func(column string, value interface{}) {
		argCount++
		sets = append(sets, column+" = $"+strconv.Itoa(argCount))
		args = append(args, value)
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.OriginalPrice != nil {
		add("original_price", *params.OriginalPrice)
	}
	if params.DiscountPercentage != nil {
		add("discount_percentage", *params.DiscountPercentage)
	}
	if params.Rating != nil {
		add("rating", *params.Rating)
	}
	if params.Availability != nil {
		add("availability", *params.Availability)
	}
	if params.Image != nil {
		add("image", *params.Image)
	}
	if len(sets) == 0 {
		return false, nil
	}
	add("updated_at", time.Now())

	argCount++
	query := `UPDATE products SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(argCount)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repository) Statistics(ctx context.Context) (Statistics, error) {
	query := `SELECT COUNT(*), COUNT(DISTINCT store), COUNT(DISTINCT category),
		COALESCE(AVG(price), 0), COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM products`
	var stats Statistics
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalProducts, &stats.TotalStores, &stats.TotalCategories,
		&stats.AveragePrice, &stats.MinPrice, &stats.MaxPrice,
	)
	if err != nil {
		return Statistics{}, err
	}
	stats.AveragePrice = round2(stats.AveragePrice)
	return stats, nil
}
