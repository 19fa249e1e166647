package repository

import (
	"context"

	"github.com/newshelton/storefront-api/internal/domain"
)

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	// ListProducts retrieves products matching the filter
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	// GetProductByID retrieves a product by ID
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	// ListCategories retrieves all categories
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	// CreateReview inserts a product review
	CreateReview(ctx context.Context, review *domain.Review) error
	// ListReviewsByProductID retrieves a product's reviews, newest first
	ListReviewsByProductID(ctx context.Context, productID int64) ([]*domain.Review, error)
	// SubscribeNewsletter records a newsletter subscription, ignoring duplicates
	SubscribeNewsletter(ctx context.Context, email string) error
}
