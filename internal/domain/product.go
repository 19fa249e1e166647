package domain

import "time"

// Product is a catalog item. CategoryName is denormalized from the
// joined category row when listing. Prices shown here are
// informational for the storefront; checkout trusts the submitted
// cart lines instead.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ImageURL     string    `json:"image_url"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductFilter narrows and orders a catalog listing. Zero values
// mean "no filter"; an unknown Sort falls back to featured-first.
type ProductFilter struct {
	CategorySlug string
	Search       string
	Sort         string
}

// Category groups products for storefront navigation.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Review is a customer product review.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}
