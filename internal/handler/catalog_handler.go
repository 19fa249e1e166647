package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/service"
	"github.com/newshelton/storefront-api/pkg/logger"
	"github.com/newshelton/storefront-api/pkg/response"
)

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalogService service.CatalogService
	log            *logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		log:            log,
	}
}

// ListProducts lists catalog products with optional filtering
// GET /api/products?category=&search=&sort=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := domain.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		Sort:         c.Query("sort"),
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, "Could not fetch products.")
		return
	}

	response.OK(c, gin.H{"products": products})
}

// GetProduct fetches a single product
// GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Product not found.")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Fail(c, "Product not found.")
			return
		}
		response.Fail(c, "Server error.")
		return
	}

	response.OK(c, gin.H{"product": product})
}

// ListCategories lists all categories
// GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Fail(c, "Could not fetch categories.")
		return
	}

	response.OK(c, gin.H{"categories": categories})
}

// SubmitReview records a product review
// POST /api/reviews
func (h *CatalogHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Could not submit review.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}

	if err := h.catalogService.SubmitReview(c.Request.Context(), &req); err != nil {
		response.Fail(c, "Could not submit review.")
		return
	}

	response.Message(c, "Review submitted! Thank you.")
}

// ListReviews lists a product's reviews
// GET /api/reviews/:product_id
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		response.Fail(c, "Could not fetch reviews.")
		return
	}

	reviews, err := h.catalogService.ListReviews(c.Request.Context(), productID)
	if err != nil {
		response.Fail(c, "Could not fetch reviews.")
		return
	}

	response.OK(c, gin.H{"reviews": reviews})
}

// SubscribeNewsletter records a newsletter subscription
// POST /api/newsletter
func (h *CatalogHandler) SubscribeNewsletter(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Email is required.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}

	if err := h.catalogService.SubscribeNewsletter(c.Request.Context(), req.Email); err != nil {
		response.Fail(c, "Subscription failed.")
		return
	}

	response.Message(c, "Subscribed successfully!")
}

// Contact accepts a contact form submission. Nothing is persisted;
// the message is logged for the support inbox pipeline to pick up.
// POST /api/contact
func (h *CatalogHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Please fill all required fields.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}

	h.log.Info("Contact form received",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
	)

	response.Message(c, "Message received! We'll reply within 24 hours.")
}
