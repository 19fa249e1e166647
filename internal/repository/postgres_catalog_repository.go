package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newshelton/storefront-api/internal/domain"
)

// PostgresCatalogRepository implements CatalogRepository using PostgreSQL
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(pool *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{pool: pool}
}

const productColumns = `p.id, p.name, p.description, p.price, p.category_id, COALESCE(c.name, ''), p.image_url, p.is_featured, p.created_at`

// ListProducts retrieves products matching the filter
func (r *PostgresCatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE 1=1
	`
	args := []any{}

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		query += fmt.Sprintf(" AND c.slug = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}

	switch filter.Sort {
	case "price_asc":
		query += " ORDER BY p.price ASC"
	case "price_desc":
		query += " ORDER BY p.price DESC"
	case "newest":
		query += " ORDER BY p.created_at DESC"
	default:
		query += " ORDER BY p.is_featured DESC, p.created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p := &domain.Product{}
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.CategoryID,
			&p.CategoryName,
			&p.ImageURL,
			&p.IsFeatured,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProductByID retrieves a product by ID
func (r *PostgresCatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1
	`
	p := &domain.Product{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.CategoryName,
		&p.ImageURL,
		&p.IsFeatured,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ListCategories retrieves all categories
func (r *PostgresCatalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, slug FROM categories ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateReview inserts a product review
func (r *PostgresCatalogRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (product_id, user_name, user_email, rating, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		review.ProductID,
		review.UserName,
		review.UserEmail,
		review.Rating,
		review.Review,
		review.CreatedAt,
	).Scan(&review.ID)
}

// ListReviewsByProductID retrieves a product's reviews, newest first
func (r *PostgresCatalogRepository) ListReviewsByProductID(ctx context.Context, productID int64) ([]*domain.Review, error) {
	query := `
		SELECT id, product_id, user_name, user_email, rating, review, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv := &domain.Review{}
		if err := rows.Scan(
			&rv.ID,
			&rv.ProductID,
			&rv.UserName,
			&rv.UserEmail,
			&rv.Rating,
			&rv.Review,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// SubscribeNewsletter records a newsletter subscription, ignoring duplicates
func (r *PostgresCatalogRepository) SubscribeNewsletter(ctx context.Context, email string) error {
	query := `INSERT INTO newsletter (email) VALUES ($1) ON CONFLICT (email) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}
