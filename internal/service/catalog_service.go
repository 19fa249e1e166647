package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/repository"
	"github.com/newshelton/storefront-api/pkg/telemetry"
)

// CatalogService defines the interface for catalog operations
type CatalogService interface {
	// ListProducts retrieves products matching the filter
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// ListCategories retrieves all categories
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	// SubmitReview records a product review
	SubmitReview(ctx context.Context, req *dto.SubmitReviewRequest) error
	// ListReviews retrieves a product's reviews, newest first
	ListReviews(ctx context.Context, productID int64) ([]*domain.Review, error)
	// SubscribeNewsletter records a newsletter subscription
	SubscribeNewsletter(ctx context.Context, email string) error
}

// catalogService implements CatalogService
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListProducts retrieves products matching the filter
func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.list_products")
	defer span.End()

	products, err := s.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(products)))
	span.SetStatus(codes.Ok, "")
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.get_product")
	defer span.End()

	span.SetAttributes(attribute.Int64("product_id", id))

	product, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if product == nil {
		span.SetStatus(codes.Error, "product not found")
		return nil, domain.ErrProductNotFound
	}

	span.SetStatus(codes.Ok, "")
	return product, nil
}

// ListCategories retrieves all categories
func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.list_categories")
	defer span.End()

	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return categories, nil
}

// SubmitReview records a product review
func (s *catalogService) SubmitReview(ctx context.Context, req *dto.SubmitReviewRequest) error {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.submit_review")
	defer span.End()

	span.SetAttributes(attribute.Int64("product_id", req.ProductID))

	review := &domain.Review{
		ProductID: req.ProductID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Review:    req.Review,
		CreatedAt: time.Now(),
	}
	if err := s.catalogRepo.CreateReview(ctx, review); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// ListReviews retrieves a product's reviews, newest first
func (s *catalogService) ListReviews(ctx context.Context, productID int64) ([]*domain.Review, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.list_reviews")
	defer span.End()

	span.SetAttributes(attribute.Int64("product_id", productID))

	reviews, err := s.catalogRepo.ListReviewsByProductID(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return reviews, nil
}

// SubscribeNewsletter records a newsletter subscription. Resubscribing
// an existing email succeeds without error.
func (s *catalogService) SubscribeNewsletter(ctx context.Context, email string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.catalog.subscribe_newsletter")
	defer span.End()

	if err := s.catalogRepo.SubscribeNewsletter(ctx, email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
